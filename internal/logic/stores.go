package logic

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"filmlog/internal/domain"
)

// LoadContent reads every collection from src
func LoadContent(ctx context.Context, src ContentSource) (*Content, error) {
	var c Content
	var err error
	if c.Titles, err = src.ListTitles(ctx); err != nil {
		return nil, fmt.Errorf("failed to load titles: %w", err)
	}
	if c.Watchlist, err = src.ListWatchlist(ctx); err != nil {
		return nil, fmt.Errorf("failed to load watchlist: %w", err)
	}
	if c.CastAndCrew, err = src.ListCastAndCrew(ctx); err != nil {
		return nil, fmt.Errorf("failed to load cast and crew: %w", err)
	}
	if c.Collections, err = src.ListCollections(ctx); err != nil {
		return nil, fmt.Errorf("failed to load collections: %w", err)
	}
	return &c, nil
}

// MemoryContentStore is an in-memory implementation of ContentSource
type MemoryContentStore struct {
	mu      sync.RWMutex
	content Content
}

// NewMemoryContentStore creates a store serving c
func NewMemoryContentStore(c Content) *MemoryContentStore {
	return &MemoryContentStore{content: c}
}

// Replace swaps the served content
func (s *MemoryContentStore) Replace(c Content) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = c
}

func (s *MemoryContentStore) ListTitles(ctx context.Context) ([]domain.Title, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Return a copy to prevent external modification
	return slices.Clone(s.content.Titles), ctx.Err()
}

func (s *MemoryContentStore) ListWatchlist(ctx context.Context) ([]domain.Title, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.content.Watchlist), ctx.Err()
}

func (s *MemoryContentStore) ListCastAndCrew(ctx context.Context) ([]domain.CastAndCrewMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.content.CastAndCrew), ctx.Err()
}

func (s *MemoryContentStore) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.content.Collections), ctx.Err()
}

var _ ContentSource = (*MemoryContentStore)(nil)
