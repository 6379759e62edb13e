package remote

import (
	"encoding/json"
	"strings"

	"github.com/mycofad-vault/server/internal/engine/model"
	logx "github.com/mycofad-vault/server/pkg/logger"
)

// basic safety limits to avoid pathological model output
const (
	maxContentLen = 8 * 1024 // 8KB, the reply is a three-field JSON object
	maxErrSnippet = 200      // limit error snippet size
)

// commandPayload is the fixed reply shape the remote service is instructed
// to produce. Pointers distinguish an explicit null from a missing field;
// both mean "no value".
type commandPayload struct {
	Action  *string `json:"action"`
	DocType *string `json:"docType"`
	Message string  `json:"message"`
}

// ParseCommandResponse validates raw model output against the closed
// vocabularies. Anything off-contract — unparseable body, values outside the
// closed sets — maps to Understood=false with the locale's generic message.
// It never panics: a malformed external answer must not take the engine down.
func ParseCommandResponse(content string, lang model.Language) (res model.RemoteResolution) {
	// panic safety
	defer func() {
		if r := recover(); r != nil {
			logx.Error().Str("component", "command_parser").Msgf("panic recovered: %v", r)
			res = notUnderstood(model.RemoteErrorMessage(lang))
		}
	}()

	if len(content) > maxContentLen {
		logx.Warn().
			Str("component", "command_parser").
			Int("max_len", maxContentLen).
			Int("orig_len", len(content)).
			Msg("content truncated due to size limit")
		content = content[:maxContentLen]
	}

	content = stripFences(strings.TrimSpace(content))

	var payload commandPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		logx.Warn().
			Str("component", "command_parser").
			Str("snippet", safeSnippet(content)).
			Err(err).
			Msg("remote reply is not the expected JSON object")
		return notUnderstood(model.NotUnderstoodMessage(lang))
	}

	action, actionGiven, actionOK := parseNullable(payload.Action, func(v string) bool {
		_, ok := model.ParseActionKind(v)
		return ok
	})
	docType, docGiven, docOK := parseNullable(payload.DocType, func(v string) bool {
		_, ok := model.ParseDocumentTag(v)
		return ok
	})

	// a value outside the closed sets is treated like a benign "not
	// understood", never executed
	if (actionGiven && !actionOK) || (docGiven && !docOK) {
		logx.Warn().
			Str("component", "command_parser").
			Str("action", deref(payload.Action)).
			Str("doc_type", deref(payload.DocType)).
			Msg("remote reply outside closed vocabulary")
		return notUnderstood(model.NotUnderstoodMessage(lang))
	}

	if !actionGiven || !docGiven {
		msg := strings.TrimSpace(payload.Message)
		if msg == "" {
			msg = model.NotUnderstoodMessage(lang)
		}
		return notUnderstood(msg)
	}

	return model.RemoteResolution{
		Action:     model.ActionKind(action),
		DocType:    model.DocumentTag(docType),
		Message:    strings.TrimSpace(payload.Message),
		Understood: true,
	}
}

// parseNullable reports whether a value was given (non-null, non-empty,
// not the literal "null") and whether it passes the closed-set check.
func parseNullable(v *string, valid func(string) bool) (value string, given, ok bool) {
	if v == nil {
		return "", false, false
	}
	value = strings.TrimSpace(*v)
	if value == "" || strings.EqualFold(value, "null") {
		return "", false, false
	}
	return value, true, valid(value)
}

// stripFences removes a surrounding markdown code fence if the model wrapped
// its JSON despite instructions.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func notUnderstood(message string) model.RemoteResolution {
	return model.RemoteResolution{Message: message, Understood: false}
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func safeSnippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxErrSnippet {
		return s
	}
	return s[:maxErrSnippet]
}
