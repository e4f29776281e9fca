package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"filmlog/internal/ui/input/types"
)

// DrawerMode edits the pending filters while the filter drawer is open.
// Keys a focused text control can use fall through to the text input.
type DrawerMode struct{}

func NewDrawerMode() *DrawerMode {
	return &DrawerMode{}
}

func (m *DrawerMode) Name() string {
	return "filters"
}

func (m *DrawerMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DrawerMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DrawerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	focused := ctx.FocusedControl()

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc":
		return []types.Action{
			types.CloseDrawerAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "ctrl+f":
		return []types.Action{
			types.ToggleDrawerAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "enter":
		return []types.Action{
			types.ViewResultsAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "ctrl+x":
		return []types.Action{types.ClearFiltersAction{}}, true

	case "up", "shift+tab":
		return []types.Action{types.FocusControlAction{Delta: -1}}, true

	case "down", "tab":
		return []types.Action{types.FocusControlAction{Delta: 1}}, true
	}

	if focused == types.ControlText {
		return nil, false
	}

	switch msg.String() {
	case "left", "h":
		return []types.Action{types.AdjustControlAction{Delta: -1}}, true
	case "right", "l":
		return []types.Action{types.AdjustControlAction{Delta: 1}}, true
	case "k":
		return []types.Action{types.FocusControlAction{Delta: -1}}, true
	case "j":
		return []types.Action{types.FocusControlAction{Delta: 1}}, true
	case " ", "x":
		if focused == types.ControlMulti {
			return []types.Action{types.ToggleOptionAction{}}, true
		}
		return []types.Action{types.AdjustControlAction{Delta: 1}}, true
	}

	return nil, true
}
