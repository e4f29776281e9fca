package content

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmlog/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	s := New(db)
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func sampleExport() *Export {
	return &Export{
		Titles: []domain.Title{
			{
				ImdbID: "tt0051418", Title: "The Brain That Wouldn't Die", SortTitle: "Brain That Wouldn't Die",
				ReleaseYear: "1962", ReleaseSequence: "1962-05-03tt0051418", ReviewDate: "2021-10-12",
				ReviewYear: "2021", ReviewSequence: "2021-10-12-1", Grade: "C+", GradeValue: 7,
				Genres: []string{"Horror", "Science Fiction"}, Slug: "the-brain-that-wouldnt-die-1962",
			},
			{
				ImdbID: "tt0054880", Title: "Alakazam the Great", SortTitle: "Alakazam the Great",
				ReleaseYear: "1960", ReleaseSequence: "1960-08-14tt0054880", Genres: []string{"Animation"},
			},
		},
		Watchlist: []domain.Title{
			{
				ImdbID: "tt0045917", Title: "Robot Monster", SortTitle: "Robot Monster", ReleaseYear: "1953",
				ReleaseSequence: "1953-06-24tt0045917", Genres: []string{"Science Fiction"},
				Directors: []string{"Phil Tucker"}, Collections: []string{"Ape Suits, Etc."},
			},
		},
		CastAndCrew: []domain.CastAndCrewMember{
			{Name: "Virginia Leith", Slug: "virginia-leith", CreditedAs: []string{"performer"}, ReviewCount: 1, TotalCount: 3},
			{Name: "Joseph Green", Slug: "joseph-green", CreditedAs: []string{"director", "writer"}, ReviewCount: 1, TotalCount: 1},
		},
		Collections: []domain.Collection{
			{Name: "Hammer Films", Slug: "hammer-films", Description: "Gothic horror.", ReviewCount: 12, TitleCount: 40},
		},
	}
}

func TestImportAndList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	e := sampleExport()

	require.NoError(t, s.Import(ctx, e))

	titles, err := s.ListTitles(ctx)
	require.NoError(t, err)
	assert.Equal(t, e.Titles, titles)

	watchlist, err := s.ListWatchlist(ctx)
	require.NoError(t, err)
	assert.Equal(t, e.Watchlist, watchlist)
	assert.Equal(t, []string{"Ape Suits, Etc."}, watchlist[0].Collections)

	members, err := s.ListCastAndCrew(ctx)
	require.NoError(t, err)
	assert.Equal(t, e.CastAndCrew, members)

	collections, err := s.ListCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, e.Collections, collections)
}

func TestImportReplacesPreviousContent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Import(ctx, sampleExport()))

	next := &Export{
		Titles: []domain.Title{{ImdbID: "tt1", Title: "Only", SortTitle: "Only", Genres: []string{"Drama"}}},
	}
	require.NoError(t, s.Import(ctx, next))

	titles, err := s.ListTitles(ctx)
	require.NoError(t, err)
	assert.Equal(t, next.Titles, titles)

	watchlist, err := s.ListWatchlist(ctx)
	require.NoError(t, err)
	assert.Empty(t, watchlist)

	members, err := s.ListCastAndCrew(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestImportRollsBackOnCancel(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Import(context.Background(), sampleExport()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, s.Import(ctx, &Export{}))

	titles, err := s.ListTitles(context.Background())
	require.NoError(t, err)
	assert.Len(t, titles, 2)
}

func TestOpenFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "filmlog.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Import(ctx, sampleExport()))
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	collections, err := s.ListCollections(ctx)
	require.NoError(t, err)
	require.Len(t, collections, 1)
	assert.Equal(t, "Hammer Films", collections[0].Name)
}

func TestListColumns(t *testing.T) {
	assert.Equal(t, "", joinList(nil))
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a, b", "c"}, splitList(joinList([]string{"a, b", "c"})))
}
