package model

// ================ Config ================

// EngineConfig bounds the orchestrator's remote tier.
type EngineConfig struct {
	// QuotaMax is the daily ceiling on remote resolver calls.
	QuotaMax int `envconfig:"VOICE_QUOTA_MAX" default:"20"`
}

// RemoteModelConfig configures the Gemini model behind the remote fallback
// resolver. Low temperature keeps the JSON answer deterministic.
type RemoteModelConfig struct {
	Model       string  `envconfig:"REMOTE_MODEL" default:"gemini-2.5-flash-lite"`
	MaxTokens   int     `envconfig:"REMOTE_MAX_TOKENS" default:"256"`
	Temperature float32 `envconfig:"REMOTE_TEMPERATURE" default:"0.3"`
}
