// Package quota tracks the daily counter bounding remote resolver calls.
// State rolls over lazily: every read compares the persisted calendar day
// against today and starts a fresh counter when the day changed. Storage
// failures fail open — the engine would rather over-spend one day of quota
// than refuse to resolve commands.
package quota

import (
	"context"
	"time"

	"github.com/mycofad-vault/server/internal/engine/model"
)

// Clock supplies the current time; injectable so rollover is testable.
type Clock func() time.Time

// Store is the process-wide quota state. The orchestrator is the only caller
// of Increment; Reset exists as an operator escape hatch. Implementations
// never return errors: unavailable or corrupt storage yields a fresh state
// for today and a warning log.
type Store interface {
	// Peek returns the current state after applying the daily rollover.
	Peek(ctx context.Context) model.QuotaState

	// Increment applies the rollover, adds one to the day's counter,
	// persists, and returns the new state.
	Increment(ctx context.Context) model.QuotaState

	// Reset forces the counter to zero for the current day.
	Reset(ctx context.Context) model.QuotaState
}
