package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/futig/shortlist-web/internal/entity"
	"github.com/patrickmn/go-cache"
)

// UIStateRepository defines per-session storage of the submit page state
type UIStateRepository interface {
	Get(ctx context.Context, sessionID string) entity.UIState
	BeginSubmit(ctx context.Context, sessionID string, topN entity.TopN) error
	EndSubmit(ctx context.Context, sessionID string)
	SetResults(ctx context.Context, sessionID string, results []string)
}

var _ UIStateRepository = &UIStateCache{}

// UIStateCache keeps UI state in memory. Entries expire after ttl without
// activity, which resets the page to its defaults.
type UIStateCache struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewUIStateCache(ttl, cleanupInterval time.Duration) *UIStateCache {
	return &UIStateCache{
		cache: cache.New(ttl, cleanupInterval),
	}
}

// Get returns a copy of the session state, or the defaults for an unknown session.
func (r *UIStateCache) Get(_ context.Context, sessionID string) entity.UIState {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(sessionID)
}

// BeginSubmit marks the session as loading and records the submitted topN.
// It fails with entity.ErrSubmitInProgress when a submit is already running.
func (r *UIStateCache) BeginSubmit(_ context.Context, sessionID string, topN entity.TopN) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.load(sessionID)
	if state.Loading {
		return fmt.Errorf("session %s: %w", sessionID, entity.ErrSubmitInProgress)
	}

	state.Loading = true
	state.TopN = topN
	r.cache.SetDefault(sessionID, state)
	return nil
}

func (r *UIStateCache) EndSubmit(_ context.Context, sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.load(sessionID)
	state.Loading = false
	r.cache.SetDefault(sessionID, state)
}

func (r *UIStateCache) SetResults(_ context.Context, sessionID string, results []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.load(sessionID)
	state.Results = slices.Clone(results)
	if state.Results == nil {
		state.Results = []string{}
	}
	r.cache.SetDefault(sessionID, state)
}

func (r *UIStateCache) load(sessionID string) entity.UIState {
	if v, ok := r.cache.Get(sessionID); ok {
		state := v.(entity.UIState)
		state.Results = slices.Clone(state.Results)
		return state
	}
	return entity.NewUIState()
}
