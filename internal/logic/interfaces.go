package logic

import (
	"context"

	"filmlog/internal/domain"
)

// ContentSource provides the collections the listings are built from
type ContentSource interface {
	ListTitles(ctx context.Context) ([]domain.Title, error)
	ListWatchlist(ctx context.Context) ([]domain.Title, error)
	ListCastAndCrew(ctx context.Context) ([]domain.CastAndCrewMember, error)
	ListCollections(ctx context.Context) ([]domain.Collection, error)
}

// Content is every collection loaded at once
type Content struct {
	Titles      []domain.Title
	Watchlist   []domain.Title
	CastAndCrew []domain.CastAndCrewMember
	Collections []domain.Collection
}

// Event returns the ContentLoadedEvent describing c
func (c *Content) Event() domain.ContentLoadedEvent {
	return domain.ContentLoadedEvent{
		Titles:      len(c.Titles),
		Watchlist:   len(c.Watchlist),
		CastAndCrew: len(c.CastAndCrew),
		Collections: len(c.Collections),
	}
}
