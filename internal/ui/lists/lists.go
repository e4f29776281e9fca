// Package lists defines the sort, group and filter tables of each film
// listing, plus the drawer controls and sort options the UI offers for it.
package lists

import (
	"slices"

	"filmlog/internal/eventbus"
	"filmlog/internal/ui/logic"
	"filmlog/internal/ui/state"
)

// List names
const (
	NameCastAndCrew = "cast-and-crew"
	NameCollections = "collections"
	NameWatchlist   = "watchlist"
	NameReviews     = "reviews"
)

// ControlKind selects the widget used to edit a filter dimension
type ControlKind int

const (
	ControlText        ControlKind = iota // free text, logic.Text
	ControlSelect                         // one option, logic.Text
	ControlRange                          // from/to over options, logic.Range
	ControlMultiSelect                    // several options, logic.Options
	ControlChoice                         // fixed choices, logic.Choice
)

// SortOption is one entry of a list's sort selector
type SortOption struct {
	Value logic.SortValue
	Label string
}

// Control describes one filter control in the drawer
type Control[T any] struct {
	Key   logic.FilterKey
	Label string
	Kind  ControlKind

	// Field yields the option values an item carries; nil for text controls.
	Field func(T) []string

	// Choices replaces options derived from Field when set.
	Choices []string
}

// Options returns the selectable values for the control, derived from all
// items unless fixed choices are set.
func (c Control[T]) Options(all []T) []string {
	if len(c.Choices) > 0 {
		return c.Choices
	}
	if c.Field == nil {
		return nil
	}
	seen := make(map[string]bool)
	var options []string
	for _, item := range all {
		for _, v := range c.Field(item) {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			options = append(options, v)
		}
	}
	slices.SortFunc(options, logic.CompareStrings)
	return options
}

// Counts returns, per option, how many items would remain if the option were
// picked alongside every other pending filter.
func (c Control[T]) Counts(all []T, pending logic.FilterValues, dims logic.Dimensions[T]) map[string]int {
	if c.Field == nil || c.Kind == ControlRange || c.Kind == ControlText {
		return nil
	}
	return logic.CountOptions(all, pending, dims, c.Key, c.Field)
}

// Listing bundles a list definition with its UI metadata
type Listing[T any] struct {
	Definition  *state.Definition[T]
	DefaultSort logic.SortValue
	SortOptions []SortOption
	Controls    []Control[T]
}

// Control returns the control for key
func (l Listing[T]) Control(key logic.FilterKey) (Control[T], bool) {
	for _, c := range l.Controls {
		if c.Key == key {
			return c, true
		}
	}
	return Control[T]{}, false
}

// SortLabel returns the label of a sort value, or the value itself
func (l Listing[T]) SortLabel(value logic.SortValue) string {
	for _, o := range l.SortOptions {
		if o.Value == value {
			return o.Label
		}
	}
	return string(value)
}

// NewStore seeds a store for the listing with its default sort
func (l Listing[T]) NewStore(all []T, bus eventbus.EventBus) *state.Store[T] {
	return state.NewStore(l.Definition, all, l.DefaultSort, bus)
}

func one[T any](field func(T) string) func(T) []string {
	return func(item T) []string {
		return []string{field(item)}
	}
}
