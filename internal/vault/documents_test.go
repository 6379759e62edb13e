package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mycofad-vault/server/internal/engine/model"
)

func TestDocumentIDFor(t *testing.T) {
	for tag, want := range map[model.DocumentTag]string{
		model.DocCV:                     "cv-1",
		model.DocLetter:                 "lettre-1",
		model.DocBenefitAccount:         "cpf-1",
		model.DocCertificate:            "attestation-1",
		model.DocEmploymentRegistration: "pe-1",
	} {
		id, ok := DocumentIDFor(tag)
		assert.True(t, ok, string(tag))
		assert.Equal(t, want, id)
	}
}

func TestDocumentIDForUnknownTag(t *testing.T) {
	_, ok := DocumentIDFor(model.DocumentTag("passport"))
	assert.False(t, ok)
}

func TestCatalogCoversEveryTag(t *testing.T) {
	for _, tag := range model.DocumentTags() {
		doc, ok := ByTag(tag)
		assert.True(t, ok, string(tag))
		assert.NotEmpty(t, doc.Name[model.LangFR])
		assert.NotEmpty(t, doc.Name[model.LangPT])
	}
}

func TestOnlyCVAndLetterAreEditable(t *testing.T) {
	for _, d := range Documents() {
		editable := d.Tag == model.DocCV || d.Tag == model.DocLetter
		assert.Equal(t, editable, d.Editable, string(d.Tag))
	}
}
