package remote

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mycofad-vault/server/internal/engine/model"
)

func TestParseValidReply(t *testing.T) {
	res := ParseCommandResponse(`{"action":"display","docType":"cv","message":"Voici ton CV"}`, model.LangFR)

	assert.True(t, res.Understood)
	assert.Equal(t, model.ActionDisplay, res.Action)
	assert.Equal(t, model.DocCV, res.DocType)
	assert.Equal(t, "Voici ton CV", res.Message)
}

func TestParseFencedReply(t *testing.T) {
	content := "```json\n{\"action\":\"download\",\"docType\":\"letter\",\"message\":\"ok\"}\n```"
	res := ParseCommandResponse(content, model.LangFR)

	assert.True(t, res.Understood)
	assert.Equal(t, model.ActionDownload, res.Action)
	assert.Equal(t, model.DocLetter, res.DocType)
}

func TestParseExplicitNull(t *testing.T) {
	res := ParseCommandResponse(`{"action":null,"docType":null,"message":"Je ne peux pas faire ça"}`, model.LangFR)

	assert.False(t, res.Understood)
	assert.Equal(t, "Je ne peux pas faire ça", res.Message)
}

func TestParseLiteralNullString(t *testing.T) {
	res := ParseCommandResponse(`{"action":"null","docType":"null","message":""}`, model.LangPT)

	assert.False(t, res.Understood)
	assert.Equal(t, model.NotUnderstoodMessage(model.LangPT), res.Message)
}

func TestParseOutOfVocabularyValues(t *testing.T) {
	// values outside the closed sets must never resolve to a command
	for _, content := range []string{
		`{"action":"delete","docType":"cv","message":"x"}`,
		`{"action":"display","docType":"passport","message":"x"}`,
	} {
		res := ParseCommandResponse(content, model.LangFR)
		assert.False(t, res.Understood, content)
		assert.Equal(t, model.NotUnderstoodMessage(model.LangFR), res.Message)
	}
}

func TestParseMalformedBody(t *testing.T) {
	for _, content := range []string{
		"",
		"not json at all",
		`{"action":`,
		`[1,2,3]`,
	} {
		res := ParseCommandResponse(content, model.LangFR)
		assert.False(t, res.Understood, content)
		assert.NotEmpty(t, res.Message)
	}
}

func TestParseOversizedBodyTruncated(t *testing.T) {
	res := ParseCommandResponse(strings.Repeat("a", maxContentLen+512), model.LangFR)
	assert.False(t, res.Understood)
}
