package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/mycofad-vault/server/internal/core"
	"github.com/mycofad-vault/server/internal/engine"
	"github.com/mycofad-vault/server/internal/engine/model"
	"github.com/mycofad-vault/server/internal/engine/quota"
	"github.com/mycofad-vault/server/internal/engine/remote"
	"github.com/mycofad-vault/server/internal/vault"
	logx "github.com/mycofad-vault/server/pkg/logger"
	pkgredis "github.com/mycofad-vault/server/pkg/redis"
)

// AppConfig defines all configurable parameters for the engine demo,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Core core.Config

	// Infrastructure
	Redis pkgredis.Config

	// LLM provider; absence of the key disables the remote tier
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Engine configs
	Engine model.EngineConfig
	Remote model.RemoteModelConfig
}

func main() {
	fmt.Println("Testing Voice Command Interpretation Engine...")
	ctx := context.Background()

	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load structured config from env
	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: envCfg.Core.Env()})

	// Quota state: redis when configured, in-memory otherwise
	var store quota.Store
	if envCfg.Redis.Configured() {
		rdb, err := envCfg.Redis.New()
		if err != nil {
			log.Fatalf("Failed to initialise Redis client: %v", err)
		}
		defer rdb.Close()
		store = quota.NewRedisStore(rdb)
		fmt.Println("Connected to Redis successfully")
	} else {
		logx.Warn().Msg("REDIS_URL not set; quota state will not survive restarts")
		store = quota.NewMemoryStore()
	}

	// Remote tier is optional
	var resolver remote.Resolver
	if envCfg.APIKey != "" {
		r, err := remote.NewGeminiResolver(ctx, remote.GeminiConfig{
			APIKey:  envCfg.APIKey,
			BaseURL: envCfg.BaseURL,
			Model:   envCfg.Remote,
		})
		if err != nil {
			log.Fatalf("Failed to initialise remote resolver: %v", err)
		}
		resolver = r
	} else {
		logx.Info().Msg(model.RemoteUnconfiguredMessage(model.LangFR))
	}

	eng, err := engine.New(engine.Config{
		Quota:    store,
		Remote:   resolver,
		QuotaMax: envCfg.Engine.QuotaMax,
	})
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}

	testTranscripts := []struct {
		description string
		text        string
		lang        model.Language
	}{
		{
			description: "French display command, resolved locally",
			text:        "Affiche mon CV",
			lang:        model.LangFR,
		},
		{
			description: "Portuguese display command, resolved locally",
			text:        "Mostrar meu currículo",
			lang:        model.LangPT,
		},
		{
			description: "French download command",
			text:        "Télécharge ma lettre de motivation",
			lang:        model.LangFR,
		},
		{
			description: "Single ambiguous keyword, falls through to the remote tier",
			text:        "formation",
			lang:        model.LangFR,
		},
		{
			description: "Free-form phrasing the keyword tables do not cover",
			text:        "j'aimerais jeter un oeil à mon attestation s'il te plaît",
			lang:        model.LangFR,
		},
	}

	for i, test := range testTranscripts {
		fmt.Printf("\nTest %d: %s\n", i+1, test.description)
		fmt.Printf("Transcript: %q\n", test.text)

		cmd, err := eng.Resolve(ctx, test.text, test.lang)
		if err != nil {
			log.Fatalf("Failed to resolve transcript %d: %v", i+1, err)
		}

		if cmd.Understood {
			docID, _ := vault.DocumentIDFor(cmd.DocType)
			fmt.Printf("Resolved: %s %s → document %s (remote=%v)\n",
				cmd.Action, cmd.DocType, docID, cmd.UsedRemote)
		} else {
			fmt.Printf("Unresolved (%s): %s (remote=%v)\n",
				cmd.Reason, cmd.Message, cmd.UsedRemote)
		}
	}

	state := store.Peek(ctx)
	fmt.Printf("\nQuota used today: %d/%d\n", state.Count, envCfg.Engine.QuotaMax)
}
