package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"filmlog/internal/ui/services/query"
)

// ItemRenderer handles rendering of list items
type ItemRenderer struct {
	styles *Styles
}

// NewItemRenderer creates a new item renderer
func NewItemRenderer(styles *Styles) *ItemRenderer {
	return &ItemRenderer{
		styles: styles,
	}
}

// RenderItem renders one item line: badge, label and detail. Matches of
// highlight in the label are emphasised.
func (r *ItemRenderer) RenderItem(item query.Item, isSelected bool, indent int, highlight string, width int) string {
	bgColor := ""
	if isSelected {
		bgColor = "238"
	}
	base := lipgloss.NewStyle()
	if bgColor != "" {
		base = base.Background(lipgloss.Color(bgColor))
	}

	var parts []string
	if indent > 0 {
		parts = append(parts, base.Render(strings.Repeat("  ", indent)))
	}

	badge := item.Badge
	if badge == "" {
		badge = "  "
	}
	badgeStyle := base.Foreground(lipgloss.Color(GradeColor(item.Badge))).Bold(true).Width(3)
	parts = append(parts, badgeStyle.Render(badge))

	parts = append(parts, highlightMatch(item.Label, highlight, base.Foreground(lipgloss.Color("226")), base))

	if item.Detail != "" {
		parts = append(parts, base.Render("  "))
		parts = append(parts, base.Foreground(lipgloss.Color("245")).Render(item.Detail))
	}

	line := strings.Join(parts, "")
	if isSelected {
		line += base.Render(strings.Repeat(" ", max(width-lipgloss.Width(line), 0)))
	}
	return line
}

// RenderShowMore renders the show-more row
func (r *ItemRenderer) RenderShowMore(row query.Row, isSelected bool, width int) string {
	label := "  ↓ " + row.Item.Label
	if isSelected {
		return r.styles.HighlightBg.Render(padTo(label, width))
	}
	return r.styles.ShowMore.Render(label)
}
