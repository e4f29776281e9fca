package ui

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"filmlog/internal/domain"
	"filmlog/internal/eventbus"
	"filmlog/internal/logic"
	"filmlog/internal/ui/lists"
	uilogic "filmlog/internal/ui/logic"
	"filmlog/internal/ui/services/filterform"
	"filmlog/internal/ui/services/query"
	"filmlog/internal/ui/state"
)

// ListView is one list of the browser with its element type erased
type ListView interface {
	Name() string
	Title() string
	Rows() []query.Row
	Sort() uilogic.SortValue
	SortOptions() []lists.SortOption
	SortLabel() string
	Dispatch(action state.Action)
	Fields() []filterform.Field
	Detail(index int) string
	Summary() string
	HasMore() bool
	ActiveFilterCount() int
	PendingCount() int
	Highlight() string
	EmptyMessage() string
	ControlKind(key uilogic.FilterKey) (lists.ControlKind, bool)
	ShowAll()
}

var printer = message.NewPrinter(language.English)

type listTab[T any] struct {
	title   string
	noun    string
	listing lists.Listing[T]
	store   *state.Store[T]
	format  func(T) query.Item
	detail  func(T) string
}

func newListTab[T any](title, noun string, listing lists.Listing[T], all []T, bus eventbus.EventBus, pageSize int,
	format func(T) query.Item, detail func(T) string) *listTab[T] {
	if pageSize > 0 && listing.Definition.PageSize > 0 {
		listing.Definition.PageSize = pageSize
	}
	return &listTab[T]{
		title:   title,
		noun:    noun,
		listing: listing,
		store:   listing.NewStore(all, bus),
		format:  format,
		detail:  detail,
	}
}

func (t *listTab[T]) Name() string  { return t.listing.Definition.Name }
func (t *listTab[T]) Title() string { return t.title }

func (t *listTab[T]) Rows() []query.Row {
	return query.BuildRows(t.store.Current(), t.format)
}

func (t *listTab[T]) Sort() uilogic.SortValue {
	return t.store.Current().Sort
}

func (t *listTab[T]) SortOptions() []lists.SortOption {
	return t.listing.SortOptions
}

func (t *listTab[T]) SortLabel() string {
	return t.listing.SortLabel(t.Sort())
}

func (t *listTab[T]) Dispatch(action state.Action) {
	t.store.Dispatch(action)
}

func (t *listTab[T]) Fields() []filterform.Field {
	return filterform.FieldsFor(t.listing, t.store.Current())
}

// Detail describes the visible value at index
func (t *listTab[T]) Detail(index int) string {
	values := t.store.Current().VisibleValues()
	if index < 0 || index >= len(values) {
		return ""
	}
	return t.detail(values[index])
}

func (t *listTab[T]) Summary() string {
	s := t.store.Current()
	total, filtered := len(s.AllValues), len(s.FilteredValues)
	if filtered == total {
		return printer.Sprintf("Showing %d of %d %s", s.VisibleCount(), total, t.noun)
	}
	return printer.Sprintf("Showing %d of %d %s (filtered from %d)", s.VisibleCount(), filtered, t.noun, total)
}

func (t *listTab[T]) HasMore() bool {
	return t.store.Current().HasMore()
}

func (t *listTab[T]) ActiveFilterCount() int {
	return t.store.Current().ActiveFilterCount()
}

func (t *listTab[T]) PendingCount() int {
	return t.store.Current().PendingFilteredCount
}

// ControlKind returns the drawer control used for key
func (t *listTab[T]) ControlKind(key uilogic.FilterKey) (lists.ControlKind, bool) {
	c, ok := t.listing.Control(key)
	return c.Kind, ok
}

// ShowAll reveals every filtered value
func (t *listTab[T]) ShowAll() {
	t.store.Dispatch(state.ShowMoreAction{Increment: math.MaxInt32})
}

// Highlight returns the applied title or name filter
func (t *listTab[T]) Highlight() string {
	values := t.store.Current().ActiveFilterValues
	for _, key := range []uilogic.FilterKey{uilogic.FilterTitle, uilogic.FilterName} {
		if v, ok := values[key]; ok && v != nil && !v.Empty() {
			return v.String()
		}
	}
	return ""
}

func (t *listTab[T]) EmptyMessage() string {
	if len(t.store.Current().AllValues) == 0 {
		return fmt.Sprintf("No %s yet.", t.noun)
	}
	return fmt.Sprintf("No matching %s.", t.noun)
}

// NewLists builds the browser's lists from loaded content. A positive
// pageSize replaces the page size of paginated lists.
func NewLists(c *logic.Content, bus eventbus.EventBus, pageSize int) []ListView {
	return []ListView{
		newListTab("Reviews", "titles", lists.Reviews(), c.Titles, bus, pageSize, formatTitle, describeTitle),
		newListTab("Watchlist", "titles", lists.Watchlist(), c.Watchlist, bus, pageSize, formatWatchlistTitle, describeTitle),
		newListTab("Cast & Crew", "people", lists.CastAndCrew(), c.CastAndCrew, bus, pageSize, formatMember, describeMember),
		newListTab("Collections", "collections", lists.Collections(), c.Collections, bus, pageSize, formatCollection, describeCollection),
	}
}

func formatTitle(t domain.Title) query.Item {
	return query.Item{Label: t.Title, Detail: t.ReleaseYear, Badge: t.Grade}
}

func formatWatchlistTitle(t domain.Title) query.Item {
	detail := t.ReleaseYear
	if len(t.Directors) > 0 {
		detail += " · " + strings.Join(t.Directors, ", ")
	}
	return query.Item{Label: t.Title, Detail: detail}
}

func formatMember(m domain.CastAndCrewMember) query.Item {
	return query.Item{
		Label:  m.Name,
		Detail: printer.Sprintf("%s · %d reviews", strings.Join(m.CreditedAs, ", "), m.ReviewCount),
	}
}

func formatCollection(c domain.Collection) query.Item {
	return query.Item{
		Label:  c.Name,
		Detail: printer.Sprintf("%d reviews of %d titles", c.ReviewCount, c.TitleCount),
	}
}

func describeTitle(t domain.Title) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n\n", t.Title, t.ReleaseYear)
	if t.Reviewed() {
		fmt.Fprintf(&b, "Reviewed:    %s\n", t.ReviewDate)
		if t.Graded() {
			fmt.Fprintf(&b, "Grade:       %s\n", t.Grade)
		}
	} else {
		b.WriteString("Not reviewed\n")
	}
	if len(t.Genres) > 0 {
		fmt.Fprintf(&b, "Genres:      %s\n", strings.Join(t.Genres, ", "))
	}
	for _, credit := range []struct {
		label string
		names []string
	}{
		{"Directed by", t.Directors},
		{"Starring", t.Performers},
		{"Written by", t.Writers},
		{"Collections", t.Collections},
	} {
		if len(credit.names) > 0 {
			fmt.Fprintf(&b, "%-12s %s\n", credit.label+":", strings.Join(credit.names, ", "))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func describeMember(m domain.CastAndCrewMember) string {
	return printer.Sprintf("%s\n\nCredited as: %s\nReviewed:    %d of %d titles",
		m.Name, strings.Join(m.CreditedAs, ", "), m.ReviewCount, m.TotalCount)
}

func describeCollection(c domain.Collection) string {
	text := printer.Sprintf("%s\n\nReviewed:    %d of %d titles", c.Name, c.ReviewCount, c.TitleCount)
	if c.Description != "" {
		text += "\n\n" + c.Description
	}
	return text
}

func describeDocument(doc domain.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", doc.Title, doc.Kind)
	if doc.URL != "" {
		fmt.Fprintf(&b, "%s\n", doc.URL)
	}
	if doc.Excerpt != "" {
		fmt.Fprintf(&b, "\n%s\n", doc.Excerpt)
	}
	return strings.TrimRight(b.String(), "\n")
}
