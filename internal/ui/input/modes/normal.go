package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"filmlog/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft, tea.KeyShiftTab:
		return []types.Action{types.SwitchListAction{Delta: -1}}, true

	case tea.KeyRight, tea.KeyTab:
		return []types.Action{types.SwitchListAction{Delta: 1}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		// Enter on the "show more" row reveals the next page; on an item it opens details
		if ctx.IsOnShowMore() {
			return []types.Action{types.ShowMoreAction{}}, true
		}
		if !ctx.IsOnGroup() && ctx.TotalItems() > 0 {
			return []types.Action{types.OpenItemAction{}}, true
		}
		return nil, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.SwitchListAction{Delta: -1}}, true

	case "l":
		return []types.Action{types.SwitchListAction{Delta: 1}}, true

	case "}":
		return []types.Action{types.NavigateAction{Direction: "nextgroup"}}, true

	case "{":
		return []types.Action{types.NavigateAction{Direction: "prevgroup"}}, true

	case "m":
		if ctx.HasMore() {
			return []types.Action{types.ShowMoreAction{}}, true
		}
		return nil, true

	case "f", "F":
		return []types.Action{
			types.ToggleDrawerAction{},
			types.ChangeModeAction{Mode: types.ModeDrawer},
		}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "s":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSort}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "esc":
		return nil, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}
