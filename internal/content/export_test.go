package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmlog/internal/domain"
)

func writeExport(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
	}
	return dir
}

func TestLoadExport(t *testing.T) {
	dir := writeExport(t, map[string]string{
		TitlesFile: `[{"imdbId":"tt1","title":"The Fly","sortTitle":"Fly","releaseYear":"1958",
			"releaseSequence":"1958-07-16tt1","grade":"B","gradeValue":10,"genres":["Horror"],"slug":"the-fly-1958"}]`,
		WatchlistFile:   `[{"imdbId":"tt2","title":"Them!","sortTitle":"Them!","releaseYear":"1954","genres":[],"directorNames":["Gordon Douglas"]}]`,
		CastAndCrewFile: `[{"name":"Vincent Price","slug":"vincent-price","creditedAs":["performer"],"reviewCount":40,"totalCount":90}]`,
		CollectionsFile: `[{"name":"Giant Bugs","slug":"giant-bugs","reviewCount":3,"titleCount":9}]`,
	})

	e, err := LoadExport(dir)

	require.NoError(t, err)
	require.Len(t, e.Titles, 1)
	assert.Equal(t, "Fly", e.Titles[0].SortTitle)
	assert.Equal(t, 10, e.Titles[0].GradeValue)
	assert.True(t, e.Titles[0].Reviewed())
	assert.Equal(t, []string{"Gordon Douglas"}, e.Watchlist[0].Directors)
	assert.Equal(t, 40, e.CastAndCrew[0].ReviewCount)
	assert.Equal(t, "giant-bugs", e.Collections[0].Slug)
}

func TestLoadExportErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		dir := writeExport(t, map[string]string{TitlesFile: `[]`})
		_, err := LoadExport(dir)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.ErrorContains(t, err, WatchlistFile)
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := writeExport(t, map[string]string{
			TitlesFile:      `[]`,
			WatchlistFile:   `{"not":"a list"}`,
			CastAndCrewFile: `[]`,
			CollectionsFile: `[]`,
		})
		_, err := LoadExport(dir)
		assert.ErrorContains(t, err, "failed to parse "+WatchlistFile)
	})
}

func TestDistinctValues(t *testing.T) {
	titles := []domain.Title{
		{ReleaseYear: "1958", ReviewYear: "2022", Genres: []string{"Horror", "Science Fiction"}},
		{ReleaseYear: "1954", Genres: []string{"Science Fiction", "Action"}},
		{ReleaseYear: "1958", ReviewYear: "2019", Genres: nil},
	}
	members := []domain.CastAndCrewMember{
		{CreditedAs: []string{"writer", "director"}},
		{CreditedAs: []string{"performer"}},
	}

	assert.Equal(t, []string{"1954", "1958"}, DistinctReleaseYears(titles))
	assert.Equal(t, []string{"2019", "2022"}, DistinctReviewYears(titles))
	assert.Equal(t, []string{"Action", "Horror", "Science Fiction"}, DistinctGenres(titles))
	assert.Equal(t, []string{"director", "performer", "writer"}, DistinctCreditKinds(members))
	assert.Nil(t, DistinctGenres(nil))
}
