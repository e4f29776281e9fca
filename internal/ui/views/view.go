package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"filmlog/internal/ui/lists"
	"filmlog/internal/ui/services/filterform"
	"filmlog/internal/ui/services/query"
	"filmlog/internal/ui/services/search"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Tabs      []string
	ActiveTab int

	Rows           []query.Row
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	Highlight      string // active title or name filter, emphasised in labels
	Summary        string
	EmptyMessage   string
	FilterCount    int

	SortLabel   string
	SortMode    bool
	SortOptions []string
	SortIndex   int

	StatusMessage string
	StatusIsError bool

	Drawer *DrawerView
	Search *SearchView
	Detail string

	ShowHelp         bool
	HelpScrollOffset int
}

// DrawerView is the filter drawer as shown
type DrawerView struct {
	Title        string
	Form         *filterform.Form
	TextInput    string // rendered input of a focused text control
	PendingCount int
}

// SearchView is the search modal as shown
type SearchView struct {
	Input    string
	State    search.State
	Selected int
	PageSize int
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	itemRender  *ItemRenderer
	groupRender *GroupRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		itemRender:  NewItemRenderer(styles),
		groupRender: NewGroupRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	innerWidth := termWidth - 4 // main container padding

	content.WriteString(r.renderHeader(state, innerWidth))
	content.WriteString("\n\n")

	if state.SortMode {
		content.WriteString(r.renderSortOptions(state))
		content.WriteString("\n\n")
	}

	if len(state.Rows) == 0 {
		msg := state.EmptyMessage
		if msg == "" {
			msg = "No results."
		}
		content.WriteString(r.styles.Dim.Render(msg))
	} else {
		content.WriteString(r.renderList(state, innerWidth))
	}

	footer := r.renderFooter(state)

	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	footerLines := strings.Count(footer, "\n") + 1
	if padding := availableLines - currentLines - footerLines; padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	height := state.Height
	if height <= 0 {
		height = 24
	}

	switch {
	case state.ShowHelp:
		helpContent := r.renderHelpContent(height, state.HelpScrollOffset)
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, height, termWidth, r.styles.InfoBox)
	case state.Detail != "":
		return r.popupRender.RenderPopupOverlay(finalContent, state.Detail, height, termWidth, r.styles.InfoBox)
	case state.Search != nil:
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderSearch(*state.Search, height), height, termWidth, r.styles.SearchBox)
	case state.Drawer != nil:
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderDrawer(*state.Drawer), height, termWidth, r.styles.Drawer)
	}
	return finalContent
}

// DrawerBox returns where the drawer popup of state is drawn. Clicks outside
// it land on the backdrop.
func (r *Renderer) DrawerBox(state ViewState) Box {
	if state.Drawer == nil {
		return Box{}
	}
	width, height := state.Width, state.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	return popupBox(r.styles.Drawer.Render(r.renderDrawer(*state.Drawer)), height, width)
}

// renderHeader renders the logo and tabs with the sort and filter state
// right-aligned
func (r *Renderer) renderHeader(state ViewState, width int) string {
	parts := []string{r.styles.Title.Render("filmlog")}
	for i, tab := range state.Tabs {
		if i == state.ActiveTab {
			parts = append(parts, r.styles.ActiveTab.Render(tab))
		} else {
			parts = append(parts, r.styles.Tab.Render(tab))
		}
	}
	left := strings.Join(parts, " ")

	var right []string
	if state.SortLabel != "" {
		right = append(right, r.styles.Dim.Render("Sort: "+state.SortLabel))
	}
	if state.FilterCount > 0 {
		right = append(right, r.styles.Filter.Render(fmt.Sprintf("[Filters: %d]", state.FilterCount)))
	}
	if len(right) == 0 {
		return left
	}
	rightContent := strings.Join(right, "  ")

	paddingWidth := width - lipgloss.Width(left) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return left + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return left + "  " + rightContent
}

// renderList renders the rows inside the viewport with scroll indicators
func (r *Renderer) renderList(state ViewState, width int) string {
	var lines []string

	effectiveHeight := state.ViewportHeight
	if effectiveHeight <= 0 {
		effectiveHeight = len(state.Rows)
	}
	needsTopIndicator := state.ViewportOffset > 0
	needsBottomIndicator := len(state.Rows) > state.ViewportOffset+effectiveHeight

	if needsTopIndicator {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", state.ViewportOffset)))
	}

	end := min(state.ViewportOffset+effectiveHeight, len(state.Rows))
	for i := state.ViewportOffset; i < end; i++ {
		row := state.Rows[i]
		isSelected := i == state.Cursor
		switch row.Kind {
		case query.RowGroup:
			lines = append(lines, r.groupRender.RenderGroupHeader(row.Group, row.Count, isSelected, width))
		case query.RowShowMore:
			lines = append(lines, r.itemRender.RenderShowMore(row, isSelected, width))
		default:
			indent := 0
			if row.Group != "" {
				indent = 1
			}
			lines = append(lines, r.itemRender.RenderItem(row.Item, isSelected, indent, state.Highlight, width))
		}
	}

	if needsBottomIndicator {
		itemsBelow := max(len(state.Rows)-end, 0)
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", itemsBelow)))
	}

	return strings.Join(lines, "\n")
}

// renderFooter renders the summary, status message and help hint
func (r *Renderer) renderFooter(state ViewState) string {
	var lines []string
	if state.Summary != "" {
		lines = append(lines, r.styles.Status.Render(state.Summary))
	}
	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		lines = append(lines, style.Render(state.StatusMessage))
	}
	lines = append(lines, r.styles.Help.Render("Press ? for help"))
	return strings.Join(lines, "\n")
}

// renderSortOptions renders the sort selection line
func (r *Renderer) renderSortOptions(state ViewState) string {
	if state.SortIndex < 0 || state.SortIndex >= len(state.SortOptions) {
		return ""
	}
	sortLine := fmt.Sprintf("Sort by: %s", state.SortOptions[state.SortIndex])
	helpLine := r.styles.Dim.Render("↑/↓ or j/k to change • Enter to accept • Esc to cancel")
	return sortLine + "\n" + helpLine
}

// renderDrawer renders the filter controls, one line per focus stop
func (r *Renderer) renderDrawer(d DrawerView) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(d.Title))
	b.WriteString("\n\n")

	form := d.Form
	fields := form.Fields()
	for i, slot := range form.Slots() {
		focused := i == form.FocusIndex()
		field := fields[slot.Field]

		marker := "  "
		if focused {
			marker = r.styles.Highlight.Render("> ")
		}
		label := r.styles.DrawerLabel.Render(form.SlotLabel(slot))

		var value string
		switch {
		case focused && field.Kind == lists.ControlText && d.TextInput != "":
			value = d.TextInput
		case field.Kind == lists.ControlMultiSelect:
			value = r.renderOptions(field, focused, form.Cursor())
		default:
			value = form.SlotValue(slot)
			if value == "" {
				value = r.styles.Dim.Render("Any")
			} else if field.Kind != lists.ControlText {
				value = field.OptionLabel(value)
			}
			if focused && field.Kind != lists.ControlText {
				value = "‹ " + value + " ›"
			}
		}
		b.WriteString(marker + label + value + "\n")
	}

	b.WriteString("\n")
	b.WriteString(r.styles.Filter.Render(fmt.Sprintf("Enter: view %d results", d.PendingCount)))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("Tab/↑↓ move • ←/→ change • Space toggle • Ctrl+X clear • Esc close"))
	return b.String()
}

// renderOptions renders the options of a multi-select as checkboxes
func (r *Renderer) renderOptions(field filterform.Field, focused bool, cursor int) string {
	var parts []string
	for i, option := range field.Options {
		box := "[ ]"
		if field.IsSelected(option) {
			box = "[x]"
		}
		text := box + " " + field.OptionLabel(option)
		if focused && i == cursor {
			text = r.styles.Highlight.Render(text)
		}
		parts = append(parts, text)
	}
	if len(parts) == 0 {
		return r.styles.Dim.Render("None")
	}
	return strings.Join(parts, "  ")
}

// renderSearch renders the search modal
func (r *Renderer) renderSearch(s SearchView, height int) string {
	var b strings.Builder
	b.WriteString("Search: " + s.Input)
	b.WriteString("\n")

	st := s.State
	if summary := st.Summary(); summary != "" {
		style := r.styles.Status
		if st.Status == search.StatusError || st.Unavailable {
			style = r.styles.StatusError
		}
		b.WriteString(style.Render(summary))
		b.WriteString("\n")
	}

	if st.Status == search.StatusResults {
		b.WriteString("\n")
		if len(st.Results) == 0 {
			b.WriteString(r.styles.Dim.Render("No results."))
			b.WriteString("\n")
		}

		visible := max(height-12, 3)
		start := 0
		if s.Selected >= visible {
			start = s.Selected - visible + 1
		}
		for i := start; i < len(st.Results) && i < start+visible; i++ {
			doc := st.Results[i]
			line := fmt.Sprintf("%s  %s", doc.Title, r.styles.Dim.Render(doc.Kind))
			if i == s.Selected {
				line = r.styles.HighlightBg.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}

		if label := st.LoadMoreLabel(s.PageSize); label != "" {
			if st.IsLoadingMore {
				label = "Loading..."
			}
			b.WriteString(r.styles.ShowMore.Render("Ctrl+L: " + label))
			b.WriteString("\n")
		}
		if st.LoadMoreError != "" {
			b.WriteString(r.styles.StatusError.Render(st.LoadMoreError))
			b.WriteString("\n")
		}
	}

	if st.Announcement != "" {
		b.WriteString(r.styles.StatusLoading.Render(st.Announcement))
		b.WriteString("\n")
	}
	b.WriteString(r.styles.Dim.Render("↑/↓ select • Enter open • Esc close"))
	return b.String()
}

// renderHelpContent renders the help information
func (r *Renderer) renderHelpContent(height int, scrollOffset int) string {
	lines := strings.Split(r.HelpText(), "\n")
	totalLines := len(lines)

	visibleHeight := max(height-4, 5)
	if totalLines > visibleHeight {
		maxOffset := totalLines - visibleHeight
		scrollOffset = max(0, min(scrollOffset, maxOffset))

		endLine := min(scrollOffset+visibleHeight, totalLines)
		lines = lines[scrollOffset:endLine]

		if scrollOffset > 0 {
			lines[0] = r.styles.Scroll.Render("↑ (more above)")
		}
		if endLine < totalLines {
			lines[len(lines)-1] = r.styles.Scroll.Render("↓ (more below)")
		}
	}

	return strings.Join(lines, "\n")
}

// HelpText returns the full, unscrolled help, also shown in the pager
func (r *Renderer) HelpText() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	entry := func(key, desc string) {
		help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(key), descStyle.Render(desc)))
	}

	help.WriteString(titleStyle.Render("filmlog Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	entry("↑/↓, j/k", "Move up/down")
	entry("←/→, h/l", "Previous/next list")
	entry("PgUp/PgDn", "Page up/down")
	entry("gg/G", "Go to top/bottom")
	entry("{ / }", "Previous/next group")

	help.WriteString(sectionStyle.Render("Lists"))
	help.WriteString("\n")
	entry("Enter", "Show details, or show more")
	entry("m", "Show more")
	entry("s", "Sort options")

	help.WriteString(sectionStyle.Render("Filters"))
	help.WriteString("\n")
	entry("f", "Open the filter drawer")
	entry("Tab/↑↓", "Move between controls")
	entry("←/→", "Change a value")
	entry("Space", "Toggle an option")
	entry("Enter", "View results")
	entry("Ctrl+X", "Clear filters")
	entry("Esc", "Close without applying")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	entry("/", "Search the site")
	entry("↑/↓", "Select a result")
	entry("Ctrl+L", "Load more results")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	entry("?", "Toggle this help")
	entry("P", "Open help or details in the pager")
	help.WriteString(fmt.Sprintf("  %s%s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}
