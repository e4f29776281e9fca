package logic

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortValue identifies one comparator in a list's sort table
type SortValue string

// Sort values shared by the film lists
const (
	SortNameAsc         SortValue = "name-asc"
	SortNameDesc        SortValue = "name-desc"
	SortTitleAsc        SortValue = "title-asc"
	SortTitleDesc       SortValue = "title-desc"
	SortReleaseDateAsc  SortValue = "release-date-asc"
	SortReleaseDateDesc SortValue = "release-date-desc"
	SortReviewDateAsc   SortValue = "review-date-asc"
	SortReviewDateDesc  SortValue = "review-date-desc"
	SortGradeAsc        SortValue = "grade-asc"
	SortGradeDesc       SortValue = "grade-desc"
	SortReviewCountAsc  SortValue = "review-count-asc"
	SortReviewCountDesc SortValue = "review-count-desc"
)

// Comparator orders two items, returning <0, 0 or >0
type Comparator[T any] func(a, b T) int

// SortTable maps every sort value a list supports to its comparator
type SortTable[T any] map[SortValue]Comparator[T]

// Values returns the table's sort values in a stable order
func (t SortTable[T]) Values() []SortValue {
	values := make([]SortValue, 0, len(t))
	for v := range t {
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}

// Sort returns a sorted copy of items. Equal items keep their input order.
// Asking for a value the table does not define is a programming error.
func Sort[T any](items []T, table SortTable[T], value SortValue) []T {
	compare, ok := table[value]
	if !ok {
		panic(fmt.Sprintf("logic: no comparator for sort value %q", value))
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, compare)
	return sorted
}

// Grade sentinels for ungraded titles. Ascending uses a value above any real
// grade and descending one below, so ungraded titles land last either way.
const (
	MissingGradeAsc  = 50
	MissingGradeDesc = -1
)

var (
	collatorMu sync.Mutex
	collator   = collate.New(language.English, collate.Loose)
)

// CompareStrings orders strings by English collation, ignoring case and
// accents, so "Élan" sorts next to "Elan" rather than after "Zorro".
func CompareStrings(a, b string) int {
	// collate.Collator keeps an internal buffer and is not safe for concurrent use
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// Ascending builds a comparator from a string key using collation
func Ascending[T any](key func(T) string) Comparator[T] {
	return func(a, b T) int {
		return CompareStrings(key(a), key(b))
	}
}

// Descending reverses Ascending
func Descending[T any](key func(T) string) Comparator[T] {
	return func(a, b T) int {
		return CompareStrings(key(b), key(a))
	}
}

// SequenceAscending compares opaque sequence keys byte-wise. Sequence keys
// embed a unique id so no two items compare equal.
func SequenceAscending[T any](key func(T) string) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// SequenceDescending reverses SequenceAscending
func SequenceDescending[T any](key func(T) string) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	}
}

// NumberAscending compares an integer key
func NumberAscending[T any](key func(T) int) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// NumberDescending reverses NumberAscending
func NumberDescending[T any](key func(T) int) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	}
}

// ThenBy chains comparators, falling through on ties
func ThenBy[T any](comparators ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		for _, c := range comparators {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}
