// Package remote implements the fallback tier: classifying a transcript with
// an external natural-language inference service when the local keyword
// scorer is not confident enough.
package remote

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/mycofad-vault/server/internal/engine/model"
	logx "github.com/mycofad-vault/server/pkg/logger"
)

// Resolver classifies a transcript remotely. Implementations settle every
// call: transport failures, bad status, and malformed replies surface as
// Understood=false with a locale-appropriate message, not as an error. The
// returned error is non-nil only when ctx was cancelled or its deadline
// expired, so the caller can abandon without treating the call as attempted.
type Resolver interface {
	Resolve(ctx context.Context, text string, lang model.Language) (model.RemoteResolution, error)
}

// GeminiConfig holds what is needed to build the Gemini-backed resolver.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   model.RemoteModelConfig
}

// GeminiResolver asks a Gemini model to interpret the transcript, with the
// system prompt constraining the answer to the closed command vocabulary.
type GeminiResolver struct {
	chatModel *gemini.ChatModel
	modelName string
}

// NewGeminiResolver builds the genai client and chat model.
func NewGeminiResolver(ctx context.Context, cfg GeminiConfig) (*GeminiResolver, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.Model.Model,
		Temperature: &cfg.Model.Temperature,
		MaxTokens:   &cfg.Model.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating command model")
		return nil, fmt.Errorf("error creating command model: %w", err)
	}

	return &GeminiResolver{chatModel: chatModel, modelName: cfg.Model.Model}, nil
}

// Resolve performs one classification exchange. It does not retry and does
// not touch quota state; both belong to the orchestrator.
func (r *GeminiResolver) Resolve(ctx context.Context, text string, lang model.Language) (model.RemoteResolution, error) {
	systemPrompt, err := RenderCommandSystem(ctx)
	if err != nil {
		logx.Error().Err(err).Msg("failed to render command system prompt")
		return notUnderstood(model.RemoteErrorMessage(lang)), nil
	}

	messages := []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(fmt.Sprintf("[Langue: %s] %s", lang, text)),
	}

	out, err := r.chatModel.Generate(ctx, messages)
	if err != nil {
		if ctx.Err() != nil {
			// abandoned by the caller; not a service verdict
			return model.RemoteResolution{}, ctx.Err()
		}
		logx.Error().Err(err).Str("model", r.modelName).Msg("remote inference call failed")
		return notUnderstood(model.RemoteErrorMessage(lang)), nil
	}
	if out == nil {
		logx.Error().Str("model", r.modelName).Msg("remote inference returned no message")
		return notUnderstood(model.RemoteErrorMessage(lang)), nil
	}

	r.logUsage(out)

	return ParseCommandResponse(out.Content, lang), nil
}

// logUsage records token usage and USD cost for the exchange.
func (r *GeminiResolver) logUsage(out *schema.Message) {
	if out.ResponseMeta == nil || out.ResponseMeta.Usage == nil {
		return
	}
	usage := out.ResponseMeta.Usage
	inC, outC, totalC := model.ComputeCost(usage, model.ResolvePricing(r.modelName))
	logx.Debug().
		Str("model", r.modelName).
		Int("prompt_tokens", usage.PromptTokens).
		Int("completion_tokens", usage.CompletionTokens).
		Int("total_tokens", usage.TotalTokens).
		Float64("input_cost_usd", inC).
		Float64("output_cost_usd", outC).
		Float64("total_cost_usd", totalC).
		Msg("LLM usage")
}

var _ Resolver = (*GeminiResolver)(nil)
