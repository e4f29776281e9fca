package logic

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Group buckets used when a key cannot be derived
const (
	GroupNonAlpha = "#"
	GroupUnrated  = "Unrated"
	GroupUnknown  = "Unknown"
)

// GroupKeyFunc derives the bucket label for an item
type GroupKeyFunc[T any] func(T) string

// GroupTable maps every sort value to the key function matching its order
type GroupTable[T any] map[SortValue]GroupKeyFunc[T]

// KeyFor returns the key function for value. A missing entry is a
// programming error.
func (t GroupTable[T]) KeyFor(value SortValue) GroupKeyFunc[T] {
	key, ok := t[value]
	if !ok {
		panic(fmt.Sprintf("logic: no group key for sort value %q", value))
	}
	return key
}

// Groups is an ordered map from group key to items
type Groups[T any] struct {
	keys  []string
	items map[string][]T
}

// Keys returns the group keys in first-occurrence order
func (g *Groups[T]) Keys() []string {
	if g == nil {
		return nil
	}
	return g.keys
}

// Get returns the items under key
func (g *Groups[T]) Get(key string) []T {
	if g == nil {
		return nil
	}
	return g.items[key]
}

// Len returns the number of groups
func (g *Groups[T]) Len() int {
	if g == nil {
		return 0
	}
	return len(g.keys)
}

// Total returns the number of items across all groups
func (g *Groups[T]) Total() int {
	n := 0
	for _, k := range g.Keys() {
		n += len(g.items[k])
	}
	return n
}

// Flatten returns every item in group order
func (g *Groups[T]) Flatten() []T {
	flat := make([]T, 0, g.Total())
	for _, k := range g.Keys() {
		flat = append(flat, g.items[k]...)
	}
	return flat
}

// Group buckets items by key. Input order is preserved inside each group and
// groups appear in the order their first item does.
func Group[T any](items []T, key GroupKeyFunc[T]) *Groups[T] {
	g := &Groups[T]{items: make(map[string][]T)}
	for _, item := range items {
		k := key(item)
		if _, ok := g.items[k]; !ok {
			g.keys = append(g.keys, k)
		}
		g.items[k] = append(g.items[k], item)
	}
	return g
}

// LetterKey groups by the first letter of field with accents folded.
// Anything that is not a letter goes under "#".
func LetterKey[T any](field func(T) string) GroupKeyFunc[T] {
	return func(item T) string {
		return FirstLetter(field(item))
	}
}

// YearKey groups by a year-like field, or by the first four characters of a
// date or sequence string.
func YearKey[T any](field func(T) string) GroupKeyFunc[T] {
	return func(item T) string {
		v := field(item)
		if len(v) < 4 {
			return GroupUnknown
		}
		return v[:4]
	}
}

// GradeKey groups by grade letter. Ungraded items go under "Unrated".
func GradeKey[T any](grade func(T) string) GroupKeyFunc[T] {
	return func(item T) string {
		g := strings.TrimSpace(grade(item))
		if g == "" {
			return GroupUnrated
		}
		return strings.ToUpper(g[:1])
	}
}

// CountKey groups by an integer count
func CountKey[T any](count func(T) int) GroupKeyFunc[T] {
	return func(item T) string {
		return strconv.Itoa(count(item))
	}
}

var foldAccents = runes.Remove(runes.In(unicode.Mn))

// letters with no canonical decomposition to a base letter
var strokeLetters = map[rune]rune{
	'Ł': 'L', 'ł': 'l',
	'Ø': 'O', 'ø': 'o',
	'Đ': 'D', 'đ': 'd',
	'Ħ': 'H', 'ħ': 'h',
	'Æ': 'A', 'æ': 'a',
	'Œ': 'O', 'œ': 'o',
	'Þ': 'T', 'þ': 't',
	'ß': 's', 'ı': 'i',
}

var foldStrokes = runes.Map(func(r rune) rune {
	if base, ok := strokeLetters[r]; ok {
		return base
	}
	return r
})

// FirstLetter returns the upper-cased, accent-folded first letter of s, or
// "#" when s does not start with a Latin letter.
func FirstLetter(s string) string {
	s = strings.TrimSpace(s)
	folded, _, err := transform.String(transform.Chain(norm.NFD, foldAccents, foldStrokes, norm.NFC), s)
	if err == nil {
		s = folded
	}
	for _, r := range s {
		if unicode.Is(unicode.Latin, r) {
			return strings.ToUpper(string(r))
		}
		return GroupNonAlpha
	}
	return GroupNonAlpha
}
