package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmlog/internal/ui/input/types"
	"filmlog/internal/ui/services/navigation"
	"filmlog/internal/ui/services/query"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newContext(rows ...query.Row) *ModelContext {
	q := query.NewService(nil)
	q.SetRows("reviews", rows)
	nav := navigation.NewService(nil)
	nav.SetQueryFunctions(q.GetMaxIndex, q.GroupStarts)
	return &ModelContext{Rows: q, Navigator: nav}
}

func TestSearchModeTypesIntoInput(t *testing.T) {
	h := New()
	ctx := newContext()

	actions, _ := h.HandleKey(runes("/"), ctx)
	assert.Empty(t, actions)
	require.Equal(t, types.ModeSearch, h.CurrentMode())

	actions, _ = h.HandleKey(runes("d"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "d", Mode: types.ModeSearch}}, actions)
	actions, _ = h.HandleKey(runes("r"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "dr", Mode: types.ModeSearch}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, ctx)
	assert.Equal(t, []types.Action{types.SearchSelectAction{Delta: 1}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlL}, ctx)
	assert.Empty(t, actions, "load more is ignored while unavailable")
	ctx.CanLoadMore = true
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlL}, ctx)
	assert.Equal(t, []types.Action{types.LoadMoreAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.CancelTextAction{Mode: types.ModeSearch}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Empty(t, h.TextInput().Value())
}

func TestDrawerModeRoutesKeysByControl(t *testing.T) {
	h := New()
	ctx := newContext()

	actions, _ := h.HandleKey(runes("f"), ctx)
	assert.Equal(t, []types.Action{types.ToggleDrawerAction{}}, actions)
	require.Equal(t, types.ModeDrawer, h.CurrentMode())

	ctx.Control = types.ControlText
	actions, _ = h.HandleKey(runes("h"), ctx)
	assert.Equal(t, []types.Action{types.EditTextAction{Text: "h"}}, actions, "letters are typed into text controls")

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Equal(t, []types.Action{types.FocusControlAction{Delta: 1}}, actions)

	ctx.Control = types.ControlSelect
	actions, _ = h.HandleKey(runes("h"), ctx)
	assert.Equal(t, []types.Action{types.AdjustControlAction{Delta: -1}}, actions)
	actions, _ = h.HandleKey(runes(" "), ctx)
	assert.Equal(t, []types.Action{types.AdjustControlAction{Delta: 1}}, actions)

	ctx.Control = types.ControlMulti
	actions, _ = h.HandleKey(runes(" "), ctx)
	assert.Equal(t, []types.Action{types.ToggleOptionAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlX}, ctx)
	assert.Equal(t, []types.Action{types.ClearFiltersAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.ViewResultsAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestDrawerEscapeCloses(t *testing.T) {
	h := New()
	ctx := newContext()
	h.HandleKey(runes("f"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.CloseDrawerAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestSortModeStepsAndRestores(t *testing.T) {
	h := New()
	ctx := newContext()
	ctx.Sorts = []string{"title-asc", "title-desc", "grade-desc"}
	ctx.Sort = "title-desc"

	actions, _ := h.HandleKey(runes("s"), ctx)
	assert.Equal(t, []types.Action{types.UpdateSortIndexAction{Index: 1}}, actions)

	actions, _ = h.HandleKey(runes("j"), ctx)
	assert.Equal(t, []types.Action{
		types.UpdateSortIndexAction{Index: 2},
		types.SortByAction{Value: "grade-desc"},
	}, actions)

	actions, _ = h.HandleKey(runes("j"), ctx)
	assert.Equal(t, types.SortByAction{Value: "title-asc"}, actions[1], "wraps to the first option")

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.SortByAction{Value: "title-desc"}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestNormalModeEnter(t *testing.T) {
	h := New()
	ctx := newContext(
		query.Row{Kind: query.RowGroup, Group: "A", Count: 1},
		query.Row{Kind: query.RowItem, Group: "A"},
		query.Row{Kind: query.RowShowMore},
	)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Empty(t, actions, "enter on a group header does nothing")

	ctx.Navigator.MoveToIndex(1)
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.OpenItemAction{}}, actions)
	assert.Equal(t, "A", ctx.CurrentGroupName())

	ctx.Navigator.MoveToIndex(2)
	assert.True(t, ctx.IsOnShowMore())
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.ShowMoreAction{}}, actions)
}

func TestNormalModeDoubleG(t *testing.T) {
	h := New()
	ctx := newContext()

	actions, _ := h.HandleKey(runes("g"), ctx)
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(runes("g"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "home"}}, actions)

	actions, _ = h.HandleKey(runes("x"), ctx)
	assert.Empty(t, actions)
}
