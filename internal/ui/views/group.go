package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GroupRenderer handles rendering of group headers
type GroupRenderer struct {
	styles *Styles
}

// NewGroupRenderer creates a new group renderer
func NewGroupRenderer(styles *Styles) *GroupRenderer {
	return &GroupRenderer{
		styles: styles,
	}
}

// RenderGroupHeader renders a group header such as "▼ 1931 (4)"
func (g *GroupRenderer) RenderGroupHeader(name string, count int, isSelected bool, width int) string {
	line := fmt.Sprintf("▼ %s (%d)", name, count)
	if !isSelected {
		return g.styles.Title.Render(line)
	}
	return g.styles.HighlightBg.Render(padTo(line, width))
}

// padTo pads line with spaces to width cells
func padTo(line string, width int) string {
	if width > 0 {
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
	}
	return line
}

// highlightMatch highlights the first case-insensitive match of query in text
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	if query == "" {
		return normalStyle.Render(text)
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}
	return strings.Join(result, "")
}
