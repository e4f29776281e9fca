package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"filmlog/internal/ui/input/types"
)

// SortSelectMode steps through the active list's sort options, applying
// each one immediately. Esc restores the sort in place when the mode began.
type SortSelectMode struct {
	values        []string
	sortIndex     int
	originalIndex int
}

func NewSortSelectMode() *SortSelectMode {
	return &SortSelectMode{}
}

func (m *SortSelectMode) Name() string {
	return "sort"
}

func (m *SortSelectMode) Enter(ctx types.Context) []types.Action {
	m.values = ctx.SortValues()
	m.sortIndex = 0
	m.originalIndex = 0

	current := ctx.CurrentSort()
	for i, v := range m.values {
		if v == current {
			m.sortIndex = i
			m.originalIndex = i
			break
		}
	}

	return []types.Action{types.UpdateSortIndexAction{Index: m.sortIndex}}
}

func (m *SortSelectMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// HandleKey processes key messages for sort selection
func (m *SortSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if len(m.values) == 0 {
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		return []types.Action{
			types.SortByAction{Value: m.values[m.originalIndex]},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "enter":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "up", "k":
		return m.step(-1), true

	case "down", "j", "s":
		return m.step(1), true
	}

	return nil, true
}

func (m *SortSelectMode) step(delta int) []types.Action {
	n := len(m.values)
	m.sortIndex = ((m.sortIndex+delta)%n + n) % n
	return []types.Action{
		types.UpdateSortIndexAction{Index: m.sortIndex},
		types.SortByAction{Value: m.values[m.sortIndex]},
	}
}

// GetCurrentIndex returns the current sort option index
func (m *SortSelectMode) GetCurrentIndex() int {
	return m.sortIndex
}
