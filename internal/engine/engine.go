// Package engine turns a spoken transcript into a structured vault command.
// Resolution is tiered: the free, offline keyword scorer always runs first;
// the rate-limited remote inference tier is strictly an upgrade path for
// transcripts the scorer could not accept. That ordering is the engine's only
// defense against unbounded external-service usage and must not change.
package engine

import (
	"context"
	"fmt"

	"github.com/mycofad-vault/server/internal/engine/lexicon"
	"github.com/mycofad-vault/server/internal/engine/model"
	"github.com/mycofad-vault/server/internal/engine/quota"
	"github.com/mycofad-vault/server/internal/engine/remote"
	logx "github.com/mycofad-vault/server/pkg/logger"
)

// DefaultQuotaMax is the daily remote-call ceiling when none is configured.
const DefaultQuotaMax = 20

// Config assembles an Engine. Remote may be nil: the remote tier is then
// disabled without being an error. Online lets deployments plug a
// connectivity probe; it defaults to assuming connectivity.
type Config struct {
	Quota    quota.Store
	Remote   remote.Resolver
	Online   func() bool
	QuotaMax int
}

// Engine is the resolution orchestrator.
type Engine struct {
	quota    quota.Store
	remote   remote.Resolver
	online   func() bool
	quotaMax int
}

func New(cfg Config) (*Engine, error) {
	if cfg.Quota == nil {
		return nil, fmt.Errorf("quota store is nil")
	}
	online := cfg.Online
	if online == nil {
		online = func() bool { return true }
	}
	quotaMax := cfg.QuotaMax
	if quotaMax <= 0 {
		quotaMax = DefaultQuotaMax
	}
	return &Engine{
		quota:    cfg.Quota,
		remote:   cfg.Remote,
		online:   online,
		quotaMax: quotaMax,
	}, nil
}

// Resolve runs the tiered policy for one transcript. The returned error is
// non-nil only when ctx was cancelled during the remote call; every other
// failure is folded into a typed Unresolved outcome. The quota increment for
// an attempted remote call happens only after the call settled, so an
// abandoned resolution commits nothing.
func (e *Engine) Resolve(ctx context.Context, text string, lang model.Language) (model.ResolvedCommand, error) {
	local := lexicon.Score(text)
	if local.Understood {
		logx.Debug().
			Str("action", string(local.Action)).
			Str("doc_type", string(local.DocType)).
			Int("confidence", local.Confidence).
			Msg("resolved locally")
		return model.Understood(local.Action, local.DocType, false), nil
	}

	// remote gating: snapshot quota, require a configured resolver and
	// connectivity. Quota exhaustion takes precedence in the reported reason
	// so the UI can suppress retry prompts.
	snapshot := e.quota.Peek(ctx)

	if snapshot.Count >= e.quotaMax {
		logx.Debug().
			Int("count", snapshot.Count).
			Int("max", e.quotaMax).
			Msg("remote tier gated by quota")
		return model.Unresolved(model.ReasonQuotaExceeded, model.QuotaExceededMessage(lang), false), nil
	}

	if e.remote == nil || !e.online() {
		logx.Debug().
			Bool("configured", e.remote != nil).
			Msg("remote tier unavailable")
		return model.Unresolved(model.ReasonRemoteUnavailable, model.NotUnderstoodMessage(lang), false), nil
	}

	res, err := e.remote.Resolve(ctx, text, lang)
	if err != nil {
		// cancelled mid-flight; no quota commit for an abandoned call
		return model.ResolvedCommand{}, err
	}

	// an attempted remote call counts against quota regardless of outcome
	state := e.quota.Increment(ctx)
	logx.Debug().
		Int("count", state.Count).
		Int("max", e.quotaMax).
		Bool("understood", res.Understood).
		Msg("remote tier consulted")

	if res.Understood {
		return model.Understood(res.Action, res.DocType, true), nil
	}

	message := res.Message
	if message == "" {
		message = model.NotUnderstoodMessage(lang)
	}
	return model.Unresolved(model.ReasonNotUnderstood, message, true), nil
}
