package quota

import (
	"context"
	"sync"
	"time"

	"github.com/mycofad-vault/server/internal/engine/model"
)

// MemoryStore keeps quota state in process memory. It backs tests and the
// local-only mode used when no redis URL is configured; state does not
// survive a restart.
type MemoryStore struct {
	mu    sync.Mutex
	state model.QuotaState
	now   Clock
}

func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(time.Now)
}

func NewMemoryStoreWithClock(now Clock) *MemoryStore {
	return &MemoryStore{
		state: model.FreshQuota(model.QuotaDay(now())),
		now:   now,
	}
}

func (s *MemoryStore) Peek(ctx context.Context) model.QuotaState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state, _ = s.state.Rollover(model.QuotaDay(s.now()))
	return s.state
}

func (s *MemoryStore) Increment(ctx context.Context) model.QuotaState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state, _ = s.state.Rollover(model.QuotaDay(s.now()))
	s.state.Count++
	return s.state
}

func (s *MemoryStore) Reset(ctx context.Context) model.QuotaState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = model.FreshQuota(model.QuotaDay(s.now()))
	return s.state
}

var _ Store = (*MemoryStore)(nil)
