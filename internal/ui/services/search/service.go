package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"filmlog/internal/domain"
	"filmlog/internal/eventbus"
	"filmlog/internal/logging"
)

// ErrDestroyed is returned by operations on a destroyed service
var ErrDestroyed = errors.New("search service destroyed")

// maxConcurrentLoads bounds the per-result Data calls of one page
const maxConcurrentLoads = 8

// Service owns the search modal's state. Every mutation happens under mu;
// provider calls run without it. Only the search with the latest generation
// may write results.
type Service struct {
	mu       sync.Mutex
	state    State
	provider Provider
	bus      eventbus.EventBus
	opts     Options

	base   context.Context
	stop   context.CancelFunc
	cancel context.CancelFunc // cancels the current search
	reqCtx context.Context    // context of the current search

	generation   uint64
	handles      []ResultHandle
	debounce     *time.Timer
	debounceID   uint64
	announceID   uint64
	initialized  bool
	initErr      error
	destroyed    bool
	initializing chan struct{}
}

// NewService creates a search service over provider. bus may be nil. The
// provider is initialized lazily on the first search.
func NewService(provider Provider, bus eventbus.EventBus, opts Options) *Service {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.AnnouncementTTL <= 0 {
		opts.AnnouncementTTL = DefaultAnnouncementTTL
	}
	base, stop := context.WithCancel(context.Background())
	return &Service{
		provider: provider,
		bus:      bus,
		opts:     opts,
		base:     base,
		stop:     stop,
	}
}

// State returns a snapshot of the current state
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// PageSize returns the number of results fetched per page
func (s *Service) PageSize() int {
	return s.opts.PageSize
}

// Init loads the provider once. Later calls return the first call's result
// without touching the provider again.
func (s *Service) Init(ctx context.Context) error {
	s.mu.Lock()
	for {
		if s.destroyed {
			s.mu.Unlock()
			return ErrDestroyed
		}
		if s.initialized {
			err := s.initErr
			s.mu.Unlock()
			return err
		}
		if s.initializing == nil {
			break
		}
		wait := s.initializing
		s.mu.Unlock()
		select {
		case <-wait:
		case <-ctx.Done():
			return ctx.Err()
		}
		s.mu.Lock()
	}
	done := make(chan struct{})
	s.initializing = done
	s.mu.Unlock()

	err := s.provider.Init(ctx, s.opts.Bundle)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.initializing = nil
	close(done)
	if err != nil && IsAborted(err) {
		// a cancelled caller leaves the next caller free to retry
		return err
	}
	s.initialized = true
	if err != nil {
		s.initErr = fmt.Errorf("failed to initialize search: %w", err)
		log := logging.Logger()
		log.Error().Err(err).Str("bundle", s.opts.Bundle).Msg("search: provider unavailable")
		s.setLocked(MarkUnavailable(s.state))
		if s.bus != nil {
			s.bus.Publish(eventbus.SearchUnavailableEvent{Err: s.initErr})
		}
	}
	return s.initErr
}

// SetQuery records a keystroke. The search runs once input has been quiet
// for the debounce interval.
func (s *Service) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return
	}

	s.state.Query = query
	s.debounceID++
	id := s.debounceID
	if s.debounce != nil {
		s.debounce.Stop()
	}
	s.debounce = time.AfterFunc(s.opts.Debounce, func() {
		s.fire(id, query)
	})
}

func (s *Service) fire(id uint64, query string) {
	if err := s.search(s.base, query, &id); err != nil && !IsAborted(err) && !errors.Is(err, ErrDestroyed) {
		log := logging.Logger()
		log.Debug().Err(err).Msg("search: debounced search ended with error")
	}
}

// Search runs query now, superseding any search in flight, and returns once
// it settles. An empty query returns to idle without loading or calling the
// provider. Errors are also reflected in State; a search that is cleared or
// superseded, even while the index is still loading, returns nil.
func (s *Service) Search(ctx context.Context, query string) error {
	return s.search(ctx, query, nil)
}

// search is Search for a debounce tick when debounce is set; the tick is
// dropped if a later keystroke or Clear has moved debounceID on.
func (s *Service) search(ctx context.Context, query string, debounce *uint64) error {
	query = strings.TrimSpace(query)
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return ErrDestroyed
	}
	if debounce != nil && *debounce != s.debounceID {
		s.mu.Unlock()
		return nil
	}
	s.abortLocked()
	gen := s.generation
	if query == "" {
		s.handles = nil
		s.setLocked(Idle(s.state))
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	if err := s.Init(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return ErrDestroyed
	}
	if gen != s.generation {
		// cleared or superseded while the index loaded
		s.mu.Unlock()
		return nil
	}
	reqCtx, cancel := context.WithCancel(ctx)
	s.cancel, s.reqCtx = cancel, reqCtx
	s.setLocked(Started(s.state, query))
	s.mu.Unlock()

	log := logging.Logger()
	log.Debug().Str("query", query).Uint64("generation", gen).Msg("search: started")

	resp, err := s.provider.Search(reqCtx, query)
	if err != nil {
		return s.fail(gen, query, err)
	}
	first := resp.Results[:min(s.opts.PageSize, len(resp.Results))]
	docs, err := loadPage(reqCtx, first)
	if err != nil {
		return s.fail(gen, query, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return nil
	}
	s.handles = resp.Results
	// only results with a handle can ever be loaded
	total := len(resp.Results)
	if resp.TotalResultCount != total {
		log.Warn().Int("reported", resp.TotalResultCount).Int("handles", total).Msg("search: result count mismatch")
	}
	s.setLocked(Resolved(s.state, docs, total))
	log.Debug().Str("query", query).Int("total", total).Msg("search: resolved")
	return nil
}

func (s *Service) fail(gen uint64, query string, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// superseded; whatever happened belongs to an old query
		return nil
	}
	if IsAborted(err) {
		// the caller gave up on the current search
		s.setLocked(Idle(s.state))
		return err
	}
	log := logging.Logger()
	log.Error().Err(err).Str("query", query).Msg("search: failed")
	s.setLocked(Failed(s.state, ErrorMessage))
	return fmt.Errorf("search %q: %w", query, err)
}

// LoadMore fetches the next page of the current results. It does nothing
// when every result is already shown or a load is in flight.
func (s *Service) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return ErrDestroyed
	}
	if !s.state.CanLoadMore() || s.state.IsLoadingMore {
		s.mu.Unlock()
		return nil
	}
	gen := s.generation
	start := s.state.VisibleResults
	end := min(start+s.opts.PageSize, len(s.handles))
	page := s.handles[start:end]
	loadCtx, cancel := mergeContext(ctx, s.reqCtx)
	defer cancel()
	s.setLocked(LoadMoreStarted(s.state))
	s.mu.Unlock()

	docs, err := loadPage(loadCtx, page)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return nil
	}
	if err != nil && IsAborted(err) {
		next := s.state
		next.IsLoadingMore = false
		s.setLocked(next)
		return err
	}
	if err != nil {
		log := logging.Logger()
		log.Error().Err(err).Int("from", start).Msg("search: load more failed")
		s.setLocked(LoadMoreFailed(s.state))
		return fmt.Errorf("failed to load more results: %w", err)
	}
	s.setLocked(LoadedMore(s.state, docs))
	s.scheduleAnnouncementClearLocked()
	return nil
}

// Clear resets to idle, dropping the query, all results and any request in
// flight or pending debounce
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return
	}
	s.debounceID++
	if s.debounce != nil {
		s.debounce.Stop()
	}
	s.abortLocked()
	s.handles = nil
	s.setLocked(Cleared(s.state))
}

// Destroy aborts any request in flight and releases the provider. It is
// safe to call more than once.
func (s *Service) Destroy(ctx context.Context) error {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return nil
	}
	s.destroyed = true
	s.debounceID++
	s.announceID++
	if s.debounce != nil {
		s.debounce.Stop()
	}
	s.abortLocked()
	s.stop()
	initialized := s.initialized && s.initErr == nil
	s.mu.Unlock()

	if !initialized {
		return nil
	}
	if err := s.provider.Destroy(ctx); err != nil {
		return fmt.Errorf("failed to destroy search provider: %w", err)
	}
	return nil
}

// abortLocked cancels the current search and invalidates its generation
func (s *Service) abortLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.reqCtx = nil
	s.generation++
}

func (s *Service) setLocked(next State) {
	s.state = next
	if s.bus != nil {
		s.bus.Publish(eventbus.SearchStateChangedEvent{
			Generation: s.generation,
			State:      next.Clone(),
		})
	}
}

func (s *Service) scheduleAnnouncementClearLocked() {
	s.announceID++
	id := s.announceID
	time.AfterFunc(s.opts.AnnouncementTTL, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if id != s.announceID || s.destroyed {
			return
		}
		s.setLocked(AnnouncementCleared(s.state))
	})
}

// loadPage resolves handles concurrently, keeping their order. The first
// failure cancels the rest.
func loadPage(ctx context.Context, handles []ResultHandle) ([]domain.Document, error) {
	docs := make([]domain.Document, len(handles))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, h := range handles {
		g.Go(func() error {
			doc, err := h.Data(ctx)
			if err != nil {
				return fmt.Errorf("result %s: %w", h.ID(), err)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// mergeContext returns a context cancelled when either parent is. other may
// be nil.
func mergeContext(ctx, other context.Context) (context.Context, context.CancelFunc) {
	merged, cancel := context.WithCancel(ctx)
	if other == nil {
		return merged, cancel
	}
	stop := context.AfterFunc(other, cancel)
	return merged, func() {
		stop()
		cancel()
	}
}
