// Package filterform turns drawer key presses into pending filter edits.
package filterform

import (
	"fmt"
	"slices"

	"filmlog/internal/ui/lists"
	"filmlog/internal/ui/logic"
	"filmlog/internal/ui/state"
)

// FieldsFor builds the drawer fields of a listing from its current state
func FieldsFor[T any](l lists.Listing[T], s state.List[T]) []Field {
	fields := make([]Field, 0, len(l.Controls))
	for _, c := range l.Controls {
		fields = append(fields, Field{
			Key:     c.Key,
			Label:   c.Label,
			Kind:    c.Kind,
			Options: c.Options(s.AllValues),
			Counts:  c.Counts(s.AllValues, s.PendingFilterValues, l.Definition.Dimensions),
			Value:   s.PendingFilterValues[c.Key],
		})
	}
	return fields
}

// Form tracks focus inside the drawer
type Form struct {
	fields []Field
	slots  []Slot
	focus  int
	cursor int // option cursor of a focused multi-select
}

// New creates an empty form
func New() *Form {
	return &Form{}
}

// SetFields replaces the fields, keeping focus where it was when possible
func (f *Form) SetFields(fields []Field) {
	f.fields = fields
	f.slots = f.slots[:0]
	for i, field := range fields {
		f.slots = append(f.slots, Slot{Field: i})
		if field.Kind == lists.ControlRange {
			f.slots = append(f.slots, Slot{Field: i, Bound: 1})
		}
	}
	f.focus = max(0, min(f.focus, len(f.slots)-1))
	if field, ok := f.Focused(); ok {
		f.cursor = max(0, min(f.cursor, len(field.Options)-1))
	}
}

// Fields returns the current fields
func (f *Form) Fields() []Field {
	return f.fields
}

// Slots returns the focus stops in order
func (f *Form) Slots() []Slot {
	return f.slots
}

// FocusIndex returns the focused slot
func (f *Form) FocusIndex() int {
	return f.focus
}

// Cursor returns the option cursor of a focused multi-select
func (f *Form) Cursor() int {
	return f.cursor
}

// Focused returns the field with focus
func (f *Form) Focused() (Field, bool) {
	if f.focus < 0 || f.focus >= len(f.slots) {
		return Field{}, false
	}
	return f.fields[f.slots[f.focus].Field], true
}

// FocusedSlot returns the slot with focus
func (f *Form) FocusedSlot() (Slot, bool) {
	if f.focus < 0 || f.focus >= len(f.slots) {
		return Slot{}, false
	}
	return f.slots[f.focus], true
}

// Reset moves focus back to the first control
func (f *Form) Reset() {
	f.focus = 0
	f.cursor = 0
}

// Move shifts focus by delta, wrapping at either end
func (f *Form) Move(delta int) {
	n := len(f.slots)
	if n == 0 {
		return
	}
	f.focus = ((f.focus+delta)%n + n) % n
	f.cursor = 0
}

// Adjust steps the focused control by delta. Select, choice and range
// controls change their value; multi-selects move their option cursor.
func (f *Form) Adjust(delta int) (state.PendingFilterChangedAction, bool) {
	slot, ok := f.FocusedSlot()
	if !ok {
		return state.PendingFilterChangedAction{}, false
	}
	field := f.fields[slot.Field]

	switch field.Kind {
	case lists.ControlSelect:
		current := ""
		if field.Value != nil {
			current = field.Value.String()
		}
		next := step(withAny(field.Options), current, delta)
		return change(field.Key, logic.Text(next)), true

	case lists.ControlChoice:
		current := ""
		if field.Value != nil {
			current = field.Value.String()
		}
		if len(field.Options) == 0 {
			return state.PendingFilterChangedAction{}, false
		}
		if current == "" {
			current = field.Options[0]
		}
		next := step(field.Options, current, delta)
		return change(field.Key, logic.Choice(next)), true

	case lists.ControlRange:
		r, _ := field.Value.(logic.Range)
		bound := &r.From
		if slot.Bound == 1 {
			bound = &r.To
		}
		*bound = step(withAny(field.Options), *bound, delta)
		return change(field.Key, r), true

	case lists.ControlMultiSelect:
		if n := len(field.Options); n > 0 {
			f.cursor = ((f.cursor+delta)%n + n) % n
		}
	}
	return state.PendingFilterChangedAction{}, false
}

// Toggle flips the option under the cursor of a focused multi-select
func (f *Form) Toggle() (state.PendingFilterChangedAction, bool) {
	field, ok := f.Focused()
	if !ok || field.Kind != lists.ControlMultiSelect || len(field.Options) == 0 {
		return state.PendingFilterChangedAction{}, false
	}
	option := field.Options[f.cursor]
	selected, _ := field.Value.(logic.Options)

	var next logic.Options
	if slices.Contains(selected, option) {
		for _, v := range selected {
			if v != option {
				next = append(next, v)
			}
		}
	} else {
		// keep selections in option order
		for _, v := range field.Options {
			if v == option || slices.Contains(selected, v) {
				next = append(next, v)
			}
		}
	}
	return change(field.Key, next), true
}

// Edit sets the value of a focused text control
func (f *Form) Edit(text string) (state.PendingFilterChangedAction, bool) {
	field, ok := f.Focused()
	if !ok || field.Kind != lists.ControlText {
		return state.PendingFilterChangedAction{}, false
	}
	return change(field.Key, logic.Text(text)), true
}

// SlotLabel returns the label of a focus stop, naming the bound of ranges
func (f *Form) SlotLabel(slot Slot) string {
	field := f.fields[slot.Field]
	if field.Kind != lists.ControlRange {
		return field.Label
	}
	return fmt.Sprintf("%s %s", field.Label, boundLabels[slot.Bound])
}

// SlotValue returns the display value of a focus stop
func (f *Form) SlotValue(slot Slot) string {
	field := f.fields[slot.Field]
	if field.Value == nil || field.Value.Empty() {
		if field.Kind == lists.ControlChoice && len(field.Options) > 0 {
			return field.Options[0]
		}
		return ""
	}
	if r, ok := field.Value.(logic.Range); ok {
		if slot.Bound == 1 {
			return r.To
		}
		return r.From
	}
	return field.Value.String()
}

// OptionLabel renders an option with its count, "Drama (12)"
func (field Field) OptionLabel(option string) string {
	if field.Counts == nil {
		return option
	}
	return fmt.Sprintf("%s (%d)", option, field.Counts[option])
}

// IsSelected reports whether a multi-select option is picked
func (field Field) IsSelected(option string) bool {
	selected, _ := field.Value.(logic.Options)
	return slices.Contains(selected, option)
}

// KindName names the control kind for input handling
func (field Field) KindName() string {
	switch field.Kind {
	case lists.ControlText:
		return "text"
	case lists.ControlSelect:
		return "select"
	case lists.ControlRange:
		return "range"
	case lists.ControlMultiSelect:
		return "multi"
	case lists.ControlChoice:
		return "choice"
	default:
		return ""
	}
}

func change(key logic.FilterKey, value logic.FilterValue) state.PendingFilterChangedAction {
	return state.PendingFilterChangedAction{Key: key, Value: value}
}

// withAny prepends the unset value
func withAny(options []string) []string {
	return append([]string{""}, options...)
}

// step moves from current by delta through values, wrapping
func step(values []string, current string, delta int) string {
	n := len(values)
	if n == 0 {
		return current
	}
	i := slices.Index(values, current)
	if i < 0 {
		i = 0
	}
	return values[((i+delta)%n+n)%n]
}
