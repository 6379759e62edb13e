package quota

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// fakeCmdable stubs the two commands RedisStore issues. Embedding the
// interface keeps the fake small; unstubbed commands would panic, which a
// test would surface immediately.
type fakeCmdable struct {
	redis.Cmdable
	data   map[string]string
	getErr error
	setErr error
}

func newFakeCmdable() *fakeCmdable {
	return &fakeCmdable{data: map[string]string{}}
}

func (f *fakeCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	if f.getErr != nil {
		cmd.SetErr(f.getErr)
		return cmd
	}
	v, ok := f.data[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v)
	return cmd
}

func (f *fakeCmdable) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx, "set", key)
	if f.setErr != nil {
		cmd.SetErr(f.setErr)
		return cmd
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	cmd.SetVal("OK")
	return cmd
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

var testDay = time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

func TestRedisStoreFailsOpenOnCorruptState(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeCmdable()
	rdb.data[quotaKey] = "{definitely not json"
	s := NewRedisStoreWithClock(rdb, fixedClock(testDay))

	state := s.Peek(ctx)
	assert.Equal(t, 0, state.Count)
	assert.Equal(t, "2026-08-28", state.ResetDate)

	// the fresh state replaces the corrupt record
	assert.JSONEq(t, `{"count":0,"reset_date":"2026-08-28"}`, rdb.data[quotaKey])
}

func TestRedisStoreFailsOpenOnUnavailableStorage(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeCmdable()
	rdb.getErr = errors.New("connection refused")
	rdb.setErr = errors.New("connection refused")
	s := NewRedisStoreWithClock(rdb, fixedClock(testDay))

	// reads and writes both fail, yet the store never errors or panics
	assert.Equal(t, 0, s.Peek(ctx).Count)
	assert.Equal(t, 1, s.Increment(ctx).Count)
	assert.Equal(t, 0, s.Reset(ctx).Count)
}

func TestRedisStoreRollsOverStaleDay(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeCmdable()
	rdb.data[quotaKey] = `{"count":9,"reset_date":"2026-08-27"}`
	s := NewRedisStoreWithClock(rdb, fixedClock(testDay))

	state := s.Peek(ctx)
	assert.Equal(t, 0, state.Count)
	assert.Equal(t, "2026-08-28", state.ResetDate)

	assert.Equal(t, 1, s.Increment(ctx).Count)
	assert.JSONEq(t, `{"count":1,"reset_date":"2026-08-28"}`, rdb.data[quotaKey])
}

func TestRedisStoreInitialisesMissingKey(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeCmdable()
	s := NewRedisStoreWithClock(rdb, fixedClock(testDay))

	assert.Equal(t, 0, s.Peek(ctx).Count)
	assert.JSONEq(t, `{"count":0,"reset_date":"2026-08-28"}`, rdb.data[quotaKey])
}

func TestRedisStorePersistsIncrements(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeCmdable()
	s := NewRedisStoreWithClock(rdb, fixedClock(testDay))

	s.Increment(ctx)
	s.Increment(ctx)

	// a second store over the same backend observes the persisted counter
	s2 := NewRedisStoreWithClock(rdb, fixedClock(testDay))
	assert.Equal(t, 2, s2.Peek(ctx).Count)
}
