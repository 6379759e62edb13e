package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mycofad-vault/server/internal/engine/model"
)

func TestScoreFrenchDisplayCV(t *testing.T) {
	res := Score("affiche mon cv")

	assert.Equal(t, model.ActionDisplay, res.Action)
	assert.Equal(t, model.DocCV, res.DocType)
	assert.Equal(t, 2, res.Confidence)
	assert.True(t, res.Understood)
}

func TestScorePortugueseDisplayCV(t *testing.T) {
	res := Score("mostrar meu currículo")

	assert.Equal(t, model.ActionDisplay, res.Action)
	assert.Equal(t, model.DocCV, res.DocType)
	assert.True(t, res.Understood)
}

func TestScoreFrenchDownloadLetter(t *testing.T) {
	res := Score("Télécharge ma lettre")

	assert.Equal(t, model.ActionDownload, res.Action)
	assert.Equal(t, model.DocLetter, res.DocType)
	assert.True(t, res.Understood)
}

func TestScorePortugueseDownloadLetter(t *testing.T) {
	res := Score("baixar minha carta")

	assert.Equal(t, model.ActionDownload, res.Action)
	assert.Equal(t, model.DocLetter, res.DocType)
	assert.True(t, res.Understood)
}

func TestScoreSingleKeywordBelowThreshold(t *testing.T) {
	// one document keyword and no action keyword: confidence 1, not accepted
	res := Score("formation")

	assert.Equal(t, model.ActionKind(""), res.Action)
	assert.Equal(t, model.DocCertificate, res.DocType)
	assert.Equal(t, 1, res.Confidence)
	assert.False(t, res.Understood)
}

func TestScoreEmptyTranscript(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		res := Score(in)
		assert.Zero(t, res.Confidence)
		assert.False(t, res.Understood)
	}
}

// Ties on the maximum score keep the earlier-declared category. This is a
// fixed, documented behavior of the table iteration, not fairness.
func TestScoreTieKeepsFirstDeclaredCategory(t *testing.T) {
	// cv and lettre both score 1; cv is declared first
	res := Score("affiche cv et lettre")
	assert.Equal(t, model.DocCV, res.DocType)

	// voir (display) and download both score 1; display is declared first
	res = Score("voir download cv")
	assert.Equal(t, model.ActionDisplay, res.Action)
}

func TestScoreCountsDistinctTokens(t *testing.T) {
	// "telecharger" contains the token "telecharge" as a substring, so the
	// download category counts two distinct tokens for one spoken word
	res := Score("telecharger mon cv")

	assert.Equal(t, model.ActionDownload, res.Action)
	assert.Equal(t, 3, res.Confidence)
	assert.True(t, res.Understood)
}
