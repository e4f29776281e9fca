package drawer

import (
	"filmlog/internal/logging"
	"filmlog/internal/ui/services/events"
	"filmlog/internal/ui/state"
)

// Service drives the filter drawer of one listing. It is not safe for
// concurrent use; Document.AfterPaint must call back on the UI goroutine.
type Service struct {
	state    *State
	bus      events.EventBus
	doc      Document
	elements Elements
	dispatch func(state.Action)
}

// DetectLayout probes doc for one of the known drawer layouts
func DetectLayout(doc Document) Elements {
	if doc == nil {
		return Elements{Layout: LayoutNotFound}
	}
	toggle, drawer := doc.Find(IDToggle), doc.Find(IDDrawer)
	if toggle != nil && drawer != nil {
		return Elements{
			Layout:   LayoutDrawer,
			Toggle:   toggle,
			Drawer:   drawer,
			Backdrop: doc.Find(IDBackdrop),
		}
	}
	toggle, panel := doc.Find(IDLegacyToggle), doc.Find(IDLegacyPanel)
	if toggle != nil && panel != nil {
		return Elements{Layout: LayoutLegacy, Toggle: toggle, Drawer: panel}
	}
	return Elements{Layout: LayoutNotFound}
}

// NewService creates a drawer controller. The layout is detected once here.
func NewService(bus events.EventBus, doc Document, dispatch func(state.Action)) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	elements := DetectLayout(doc)
	log := logging.Logger()
	log.Debug().Str("layout", elements.Layout.String()).Msg("drawer: layout detected")

	return &Service{
		state:    &State{},
		bus:      bus,
		doc:      doc,
		elements: elements,
		dispatch: dispatch,
	}
}

// Layout returns the detected layout
func (s *Service) Layout() Layout {
	return s.elements.Layout
}

// IsOpen reports whether the drawer is open
func (s *Service) IsOpen() bool {
	return s.state.IsOpen
}

// IsOpening reports whether the open transition is still pending a paint
func (s *Service) IsOpening() bool {
	return s.state.IsOpening
}

// Toggle opens a closed drawer and closes an open one
func (s *Service) Toggle() {
	if s.elements.Layout == LayoutNotFound {
		return
	}
	if s.state.IsOpen {
		s.close(CloseToggle)
		return
	}
	s.open()
}

// HandleKey closes the drawer on escape. It reports whether the key was used.
func (s *Service) HandleKey(key string) bool {
	if key != "esc" && key != "escape" {
		return false
	}
	if !s.state.IsOpen {
		return false
	}
	s.close(CloseEscape)
	return true
}

// BackdropClick closes the drawer
func (s *Service) BackdropClick() {
	if s.elements.Backdrop == nil || !s.state.IsOpen {
		return
	}
	s.close(CloseBackdrop)
}

// OutsideClick closes a legacy panel when the user clicks elsewhere
func (s *Service) OutsideClick() {
	if s.elements.Layout != LayoutLegacy || !s.state.IsOpen {
		return
	}
	s.close(CloseOutside)
}

// ViewResults applies the pending filters and closes the drawer
func (s *Service) ViewResults() {
	if !s.state.IsOpen {
		s.send(state.ApplyPendingFiltersAction{})
		return
	}
	s.close(CloseViewResults)
}

// Clear empties the pending filters and leaves the drawer open
func (s *Service) Clear() {
	s.send(state.ClearPendingFiltersAction{})
	s.bus.Publish(FiltersClearedEvent{})
}

func (s *Service) open() {
	s.state.IsOpen = true
	s.state.IsOpening = true
	s.send(state.ResetPendingFiltersAction{})
	s.setScrollLock(true)
	s.bus.Publish(DrawerOpenedEvent{})

	if s.doc == nil {
		s.state.IsOpening = false
		return
	}
	s.doc.AfterPaint(func() {
		if !s.state.IsOpen {
			return
		}
		s.state.IsOpening = false
		if first := s.doc.FirstFocusable(s.elements.Drawer); first != nil {
			first.Focus()
		}
	})
}

func (s *Service) close(reason CloseReason) {
	if !s.state.IsOpen {
		return
	}
	applied := reason == CloseViewResults
	if applied {
		s.send(state.ApplyPendingFiltersAction{})
	} else {
		s.send(state.ResetPendingFiltersAction{})
	}

	s.state.IsOpen = false
	s.state.IsOpening = false
	s.setScrollLock(false)
	if s.elements.Toggle != nil {
		s.elements.Toggle.Focus()
	}

	log := logging.Logger()
	log.Debug().Str("reason", string(reason)).Bool("applied", applied).Msg("drawer: closed")
	s.bus.Publish(DrawerClosedEvent{Reason: reason, Applied: applied})
}

func (s *Service) send(action state.Action) {
	if s.dispatch == nil {
		return
	}
	s.dispatch(action)
}

func (s *Service) setScrollLock(on bool) {
	if s.doc == nil {
		return
	}
	s.doc.SetBodyFlag(BodyScrollLocked, on)
}
