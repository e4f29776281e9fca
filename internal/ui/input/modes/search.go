package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"filmlog/internal/ui/input/types"
)

// SearchMode drives the search modal. Typing updates the query; the results
// below the input are browsed without leaving the mode.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "enter":
		return []types.Action{types.OpenResultAction{}}, true
	case "up", "ctrl+p":
		return []types.Action{types.SearchSelectAction{Delta: -1}}, true
	case "down", "ctrl+n":
		return []types.Action{types.SearchSelectAction{Delta: 1}}, true
	case "ctrl+l":
		if ctx.SearchCanLoadMore() {
			return []types.Action{types.LoadMoreAction{}}, true
		}
		return nil, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
