package logic

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// FilterKey names one filter dimension
type FilterKey string

// Filter dimensions used by the film lists
const (
	FilterName        FilterKey = "name"
	FilterTitle       FilterKey = "title"
	FilterCreditedAs  FilterKey = "creditedAs"
	FilterReleaseYear FilterKey = "releaseYear"
	FilterReviewYear  FilterKey = "reviewYear"
	FilterGenres      FilterKey = "genres"
	FilterReviewed    FilterKey = "reviewed"
	FilterGrade       FilterKey = "grade"
	FilterCollection  FilterKey = "collection"
	FilterDirector    FilterKey = "director"
	FilterPerformer   FilterKey = "performer"
	FilterWriter      FilterKey = "writer"
)

// Reviewed status choices
const (
	ChoiceAll         Choice = "all"
	ChoiceReviewed    Choice = "reviewed"
	ChoiceNotReviewed Choice = "not-reviewed"
)

// FilterValue is the raw, user-facing value behind one dimension. It is one
// of Text, Range, Options or Choice.
type FilterValue interface {
	Empty() bool
	String() string
	filterValue()
}

// Text is free text or a single tag
type Text string

func (v Text) Empty() bool    { return strings.TrimSpace(string(v)) == "" }
func (v Text) String() string { return strings.TrimSpace(string(v)) }
func (Text) filterValue()     {}

// Range is an inclusive from/to pair; either end may be open
type Range struct {
	From string
	To   string
}

func (v Range) Empty() bool { return v.From == "" && v.To == "" }
func (v Range) String() string {
	return v.From + "-" + v.To
}
func (Range) filterValue() {}

// Options is a multi-select value
type Options []string

func (v Options) Empty() bool    { return len(v) == 0 }
func (v Options) String() string { return strings.Join(v, ", ") }
func (Options) filterValue()     {}

// Choice is a single-select value
type Choice string

func (v Choice) Empty() bool    { return v == "" || v == ChoiceAll }
func (v Choice) String() string { return string(v) }
func (Choice) filterValue()     {}

// FilterValues holds the raw values for every set dimension
type FilterValues map[FilterKey]FilterValue

// Clone returns an independent copy
func (v FilterValues) Clone() FilterValues {
	if v == nil {
		return FilterValues{}
	}
	return maps.Clone(v)
}

// With returns a copy with key set to value. Empty values remove the key.
func (v FilterValues) With(key FilterKey, value FilterValue) FilterValues {
	next := v.Clone()
	if value == nil || value.Empty() {
		delete(next, key)
		return next
	}
	next[key] = value
	return next
}

// Without returns a copy with key removed
func (v FilterValues) Without(key FilterKey) FilterValues {
	next := v.Clone()
	delete(next, key)
	return next
}

// Keys returns the set keys in sorted order
func (v FilterValues) Keys() []FilterKey {
	keys := slices.Collect(maps.Keys(v))
	slices.Sort(keys)
	return keys
}

// Predicate tests one item
type Predicate[T any] func(T) bool

// FilterSet is the AND of its predicates
type FilterSet[T any] map[FilterKey]Predicate[T]

// Match reports whether item passes every predicate
func (s FilterSet[T]) Match(item T) bool {
	for _, p := range s {
		if !p(item) {
			return false
		}
	}
	return true
}

// Filter returns the items passing set, in input order
func Filter[T any](items []T, set FilterSet[T]) []T {
	if len(set) == 0 {
		return slices.Clone(items)
	}
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if set.Match(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Count returns how many items pass set
func Count[T any](items []T, set FilterSet[T]) int {
	if len(set) == 0 {
		return len(items)
	}
	n := 0
	for _, item := range items {
		if set.Match(item) {
			n++
		}
	}
	return n
}

// Compiler turns a raw value into a predicate. ok is false when the value
// places no constraint, in which case no predicate exists at all.
type Compiler[T any] func(value FilterValue) (p Predicate[T], ok bool)

// Dimensions maps each filter key a list supports to its compiler
type Dimensions[T any] map[FilterKey]Compiler[T]

// Compile builds the filter set for values
func (d Dimensions[T]) Compile(values FilterValues) FilterSet[T] {
	set := FilterSet[T]{}
	for key, value := range values {
		if p, ok := d.compile(key, value); ok {
			set[key] = p
		}
	}
	return set
}

// Recompile returns a copy of set with key recompiled from value
func (d Dimensions[T]) Recompile(set FilterSet[T], key FilterKey, value FilterValue) FilterSet[T] {
	next := maps.Clone(set)
	if next == nil {
		next = FilterSet[T]{}
	}
	delete(next, key)
	if p, ok := d.compile(key, value); ok {
		next[key] = p
	}
	return next
}

func (d Dimensions[T]) compile(key FilterKey, value FilterValue) (Predicate[T], bool) {
	compiler, ok := d[key]
	if !ok {
		panic(fmt.Sprintf("logic: no filter dimension %q", key))
	}
	if value == nil || value.Empty() {
		return nil, false
	}
	return compiler(value)
}

// CountOptions counts, per option of a multi-valued field, the items that
// pass every active dimension except key itself.
func CountOptions[T any](items []T, values FilterValues, dims Dimensions[T], key FilterKey, options func(T) []string) map[string]int {
	set := dims.Compile(values.Without(key))
	counts := make(map[string]int)
	for _, item := range items {
		if !set.Match(item) {
			continue
		}
		seen := make(map[string]bool)
		for _, opt := range options(item) {
			if seen[opt] {
				continue
			}
			seen[opt] = true
			counts[opt]++
		}
	}
	return counts
}

// MatchText matches fields case-insensitively against the value as a literal
// substring. An item matches if any field does.
func MatchText[T any](fields ...func(T) string) Compiler[T] {
	return func(value FilterValue) (Predicate[T], bool) {
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(scalar(value)))
		return func(item T) bool {
			for _, field := range fields {
				if re.MatchString(field(item)) {
					return true
				}
			}
			return false
		}, true
	}
}

// MatchMember matches items whose multi-valued field contains the value
func MatchMember[T any](field func(T) []string) Compiler[T] {
	return func(value FilterValue) (Predicate[T], bool) {
		want := scalar(value)
		return func(item T) bool {
			return slices.Contains(field(item), want)
		}, true
	}
}

// MatchRange matches items whose field lies within the inclusive range.
// Bounds compare numerically when both sides parse as integers. Items with
// an empty field never match.
func MatchRange[T any](field func(T) string) Compiler[T] {
	return func(value FilterValue) (Predicate[T], bool) {
		r, ok := value.(Range)
		if !ok {
			panic(fmt.Sprintf("logic: range filter given %T", value))
		}
		return func(item T) bool {
			v := field(item)
			if v == "" {
				return false
			}
			if r.From != "" && compareBound(v, r.From) < 0 {
				return false
			}
			if r.To != "" && compareBound(v, r.To) > 0 {
				return false
			}
			return true
		}, true
	}
}

// MatchAll matches items whose field contains every selected option
func MatchAll[T any](field func(T) []string) Compiler[T] {
	return func(value FilterValue) (Predicate[T], bool) {
		selected, ok := value.(Options)
		if !ok {
			panic(fmt.Sprintf("logic: options filter given %T", value))
		}
		return func(item T) bool {
			have := field(item)
			for _, s := range selected {
				if !slices.Contains(have, s) {
					return false
				}
			}
			return true
		}, true
	}
}

// MatchReviewed matches on whether the item has a review slug
func MatchReviewed[T any](slug func(T) string) Compiler[T] {
	return func(value FilterValue) (Predicate[T], bool) {
		switch Choice(scalar(value)) {
		case ChoiceReviewed:
			return func(item T) bool { return slug(item) != "" }, true
		case ChoiceNotReviewed:
			return func(item T) bool { return slug(item) == "" }, true
		default:
			panic(fmt.Sprintf("logic: unknown reviewed choice %q", value))
		}
	}
}

func scalar(value FilterValue) string {
	switch v := value.(type) {
	case Text:
		return v.String()
	case Choice:
		return string(v)
	default:
		panic(fmt.Sprintf("logic: scalar filter given %T", value))
	}
}

func compareBound(v, bound string) int {
	a, errA := strconv.Atoi(v)
	b, errB := strconv.Atoi(bound)
	if errA == nil && errB == nil {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
	return strings.Compare(v, bound)
}
