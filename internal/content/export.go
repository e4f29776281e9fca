// Package content loads the site's content export and keeps it in a SQLite
// store the listings are seeded from.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/goccy/go-json"

	"filmlog/internal/domain"
	"filmlog/internal/ui/logic"
)

// Export file names inside a content directory
const (
	TitlesFile      = "titles.json"
	WatchlistFile   = "watchlist.json"
	CastAndCrewFile = "cast-and-crew.json"
	CollectionsFile = "collections.json"
)

// Export is one complete content export
type Export struct {
	Titles      []domain.Title
	Watchlist   []domain.Title
	CastAndCrew []domain.CastAndCrewMember
	Collections []domain.Collection
}

// LoadExport reads every export file in dir
func LoadExport(dir string) (*Export, error) {
	var e Export
	files := []struct {
		name string
		into any
	}{
		{TitlesFile, &e.Titles},
		{WatchlistFile, &e.Watchlist},
		{CastAndCrewFile, &e.CastAndCrew},
		{CollectionsFile, &e.Collections},
	}
	for _, f := range files {
		if err := readJSON(filepath.Join(dir, f.name), f.into); err != nil {
			return nil, err
		}
	}
	return &e, nil
}

func readJSON(path string, into any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// DistinctReleaseYears returns the release years present in titles
func DistinctReleaseYears(titles []domain.Title) []string {
	return distinct(titles, func(t domain.Title) []string { return []string{t.ReleaseYear} })
}

// DistinctReviewYears returns the review years present in titles
func DistinctReviewYears(titles []domain.Title) []string {
	return distinct(titles, func(t domain.Title) []string { return []string{t.ReviewYear} })
}

// DistinctGenres returns every genre carried by titles
func DistinctGenres(titles []domain.Title) []string {
	return distinct(titles, func(t domain.Title) []string { return t.Genres })
}

// DistinctCreditKinds returns the credit kinds carried by members
func DistinctCreditKinds(members []domain.CastAndCrewMember) []string {
	return distinct(members, func(m domain.CastAndCrewMember) []string { return m.CreditedAs })
}

func distinct[T any](items []T, values func(T) []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		for _, v := range values(item) {
			if v != "" && !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	slices.SortFunc(out, logic.CompareStrings)
	return out
}
