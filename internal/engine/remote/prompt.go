package remote

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/mycofad-vault/server/internal/engine/model"
)

//go:embed template/command_prompt.txt
var commandSystemPrompt string

// RenderCommandSystem renders the command-interpretation system prompt via
// the Eino prompt component. The closed vocabularies are injected from the
// model constants so prompt and validation cannot drift apart.
func RenderCommandSystem(ctx context.Context) (string, error) {
	// Safely render known tokens only to avoid interfering with JSON braces in template
	content := strings.NewReplacer(
		"{actions}", joinActions(),
		"{doc_types}", joinDocumentTags(),
	).Replace(commandSystemPrompt)

	// Wrap via Eino prompt component using a messages placeholder to emit callbacks
	tpl := prompt.FromMessages(
		schema.FString,
		schema.MessagesPlaceholder("system_messages", false),
	)
	msgs, err := tpl.Format(ctx, map[string]any{
		"system_messages": []*schema.Message{schema.SystemMessage(content)},
	})
	if err != nil {
		return "", fmt.Errorf("command prompt callbacks: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("command prompt callbacks: empty result")
	}
	return msgs[0].Content, nil
}

func joinActions() string {
	kinds := model.ActionKinds()
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, string(k))
	}
	return strings.Join(parts, "|")
}

func joinDocumentTags() string {
	tags := model.DocumentTags()
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, "|")
}
