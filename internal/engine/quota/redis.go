package quota

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	errx "github.com/mycofad-vault/server/internal/core/error"
	"github.com/mycofad-vault/server/internal/engine/model"
	logx "github.com/mycofad-vault/server/pkg/logger"
)

const quotaKey = "voice:llm_quota"

// RedisStore persists quota state as a small JSON record under a fixed key.
type RedisStore struct {
	rdb redis.Cmdable
	now Clock
}

func NewRedisStore(rdb redis.Cmdable) *RedisStore {
	return &RedisStore{rdb: rdb, now: time.Now}
}

func NewRedisStoreWithClock(rdb redis.Cmdable, now Clock) *RedisStore {
	return &RedisStore{rdb: rdb, now: now}
}

// load reads the persisted state and applies the rollover. dirty reports
// whether the returned state differs from what is persisted (missing key,
// corrupt record, or a rollover) and should be written back.
func (s *RedisStore) load(ctx context.Context) (state model.QuotaState, dirty bool) {
	day := model.QuotaDay(s.now())

	raw, err := s.rdb.Get(ctx, quotaKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logx.Warn().Err(errx.WrapRedis(err)).Str("key", quotaKey).
				Msg("quota state unavailable; failing open with fresh state")
		}
		return model.FreshQuota(day), true
	}

	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		logx.Warn().Err(err).Str("key", quotaKey).
			Msg("quota state corrupt; failing open with fresh state")
		return model.FreshQuota(day), true
	}

	return state.Rollover(day)
}

// persist writes the state back, best effort.
func (s *RedisStore) persist(ctx context.Context, state model.QuotaState) {
	b, err := json.Marshal(state)
	if err != nil {
		logx.Warn().Err(err).Str("key", quotaKey).Msg("failed to marshal quota state")
		return
	}
	if err := s.rdb.Set(ctx, quotaKey, b, 0).Err(); err != nil {
		logx.Warn().Err(errx.WrapRedis(err)).Str("key", quotaKey).
			Msg("failed to persist quota state")
	}
}

func (s *RedisStore) Peek(ctx context.Context) model.QuotaState {
	state, dirty := s.load(ctx)
	if dirty {
		s.persist(ctx, state)
	}
	return state
}

func (s *RedisStore) Increment(ctx context.Context) model.QuotaState {
	state, _ := s.load(ctx)
	state.Count++
	s.persist(ctx, state)

	logx.Debug().Int("count", state.Count).Str("reset_date", state.ResetDate).
		Msg("quota incremented")
	return state
}

func (s *RedisStore) Reset(ctx context.Context) model.QuotaState {
	state := model.FreshQuota(model.QuotaDay(s.now()))
	s.persist(ctx, state)

	logx.Info().Str("reset_date", state.ResetDate).Msg("quota reset")
	return state
}

var _ Store = (*RedisStore)(nil)
