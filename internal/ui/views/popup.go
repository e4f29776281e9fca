package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered on top of the greyed-out main
// content. Cells outside the popup's box keep the underlying text.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	return overlay(desaturateANSI(mainContent), styledPopup, height, width)
}

// Box is the screen area a popup covers
type Box struct {
	X, Y, W, H int
}

// Contains reports whether the cell at x, y lies inside the box
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// popupBox centers a rendered popup on a screen of the given size
func popupBox(popup string, height, width int) Box {
	lines := strings.Count(popup, "\n") + 1
	if lines > height-2 && height > 2 {
		lines = height - 2
	}
	w := lipgloss.Width(popup)
	if w > width-6 && width > 6 { // keep a small margin
		w = width - 6
	}
	return Box{
		X: max((width-w)/2, 0),
		Y: max((height-lines)/2, 0),
		W: w,
		H: lines,
	}
}

func overlay(base, popup string, height, width int) string {
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	box := popupBox(popup, height, width)
	popupLines := strings.Split(popup, "\n")[:box.H]
	x, y, modalW := box.X, box.Y, box.W

	for i, line := range popupLines {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		bg := baseLines[row]
		left := ansi.Cut(bg, 0, x)
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		line = ansi.Truncate(line, modalW, "")
		right := ""
		if end := x + ansi.StringWidth(line); end < ansi.StringWidth(bg) {
			right = ansi.Cut(bg, end, ansi.StringWidth(bg))
		}
		baseLines[row] = left + line + right
	}

	if height > 0 && len(baseLines) > height {
		baseLines = baseLines[:height]
	}
	return strings.Join(baseLines, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(s, "\n")
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		plain := ansiRE.ReplaceAllString(line, "")
		if plain == "" {
			continue
		}
		lines[i] = gray.Render(plain)
	}
	return strings.Join(lines, "\n")
}
