package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"filmlog/internal/ui/input/modes"
	"filmlog/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // shared by the search modal and drawer text controls
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = ""

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeSort] = modes.NewSortSelectMode()
	h.modes[types.ModeDrawer] = modes.NewDrawerMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed && !h.acceptsText(ctx) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}

		if h.modes[h.currentMode] != nil {
			allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
		}
		h.currentMode = changeMode.Mode
		if h.modes[h.currentMode] != nil {
			allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
		}

		if h.currentMode == types.ModeSearch {
			h.textInput.Focus()
			cmd = textinput.Blink
		} else {
			h.textInput.Blur()
		}
	}

	// Keys the mode did not consume go to the text input
	if !consumed {
		h.textInput.Focus()
		*h.textInput, cmd = h.textInput.Update(msg)
		if h.currentMode == types.ModeDrawer {
			allActions = append(allActions, types.EditTextAction{Text: h.textInput.Value()})
		} else {
			allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value(), Mode: h.currentMode})
		}
	}

	return allActions, cmd
}

// acceptsText reports whether unconsumed keys should be typed into the text input
func (h *Handler) acceptsText(ctx types.Context) bool {
	switch h.currentMode {
	case types.ModeSearch:
		return true
	case types.ModeDrawer:
		return ctx.FocusedControl() == types.ControlText
	default:
		return false
	}
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// Mode returns the handler registered for mode
func (h *Handler) Mode(mode types.Mode) types.ModeHandler {
	return h.modes[mode]
}

// TextInput returns the shared text input
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// SetText loads value into the text input, used when a drawer text control
// gains focus
func (h *Handler) SetText(value string) {
	h.textInput.SetValue(value)
	h.textInput.CursorEnd()
}

// ChangeMode switches mode without running the enter and exit hooks
func (h *Handler) ChangeMode(mode types.Mode) {
	h.currentMode = mode
	if mode == types.ModeSearch {
		h.textInput.Focus()
	} else {
		h.textInput.Blur()
	}
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeSearch {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}
