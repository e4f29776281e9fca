package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"filmlog/internal/ui/services/drawer"
	"filmlog/internal/ui/services/filterform"
)

// frameInterval approximates one repaint of the terminal
const frameInterval = time.Second / 60

// paintedMsg is delivered once the frame after a drawer transition is drawn
type paintedMsg struct{}

// document exposes the browser screen to the drawer controller. Only the
// drawer layout is present; the legacy panel ids are never found.
type document struct {
	form         *filterform.Form
	focused      string
	scrollLocked bool
	afterPaint   []func()
}

type element struct {
	id  string
	doc *document
}

func (e element) Focus() {
	e.doc.focused = e.id
}

// firstControl is the id reported for the drawer's first control
const firstControl = drawer.IDDrawer + "/0"

func newDocument(form *filterform.Form) *document {
	return &document{form: form}
}

func (d *document) Find(id string) drawer.Element {
	switch id {
	case drawer.IDToggle, drawer.IDDrawer, drawer.IDBackdrop:
		return element{id: id, doc: d}
	}
	return nil
}

func (d *document) FirstFocusable(container drawer.Element) drawer.Element {
	if container == nil || len(d.form.Slots()) == 0 {
		return nil
	}
	d.form.Reset()
	return element{id: firstControl, doc: d}
}

func (d *document) SetBodyFlag(flag string, on bool) {
	if flag == drawer.BodyScrollLocked {
		d.scrollLocked = on
	}
}

func (d *document) AfterPaint(fn func()) {
	d.afterPaint = append(d.afterPaint, fn)
}

// paintCmd reports the next frame once callbacks are waiting
func (d *document) paintCmd() tea.Cmd {
	if len(d.afterPaint) == 0 {
		return nil
	}
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return paintedMsg{}
	})
}

// painted runs the callbacks queued before the last frame
func (d *document) painted() {
	fns := d.afterPaint
	d.afterPaint = nil
	for _, fn := range fns {
		fn()
	}
}
