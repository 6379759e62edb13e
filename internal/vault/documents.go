// Package vault holds the hardcoded document catalog of the personal vault
// and the mapping from abstract document tags to concrete document IDs.
package vault

import (
	"github.com/mycofad-vault/server/internal/engine/model"
)

// Document describes one vault entry. Content and rendering live outside the
// engine; the catalog only carries what command handling needs.
type Document struct {
	ID       string
	Tag      model.DocumentTag
	Name     map[model.Language]string
	Editable bool
}

var catalog = []Document{
	{
		ID:       "cv-1",
		Tag:      model.DocCV,
		Name:     map[model.Language]string{model.LangFR: "Mon CV", model.LangPT: "Meu Currículo"},
		Editable: true,
	},
	{
		ID:       "lettre-1",
		Tag:      model.DocLetter,
		Name:     map[model.Language]string{model.LangFR: "Lettre SOFRIGU", model.LangPT: "Carta SOFRIGU"},
		Editable: true,
	},
	{
		ID:       "cpf-1",
		Tag:      model.DocBenefitAccount,
		Name:     map[model.Language]string{model.LangFR: "Mon compte CPF", model.LangPT: "Minha conta CPF"},
		Editable: false,
	},
	{
		ID:       "attestation-1",
		Tag:      model.DocCertificate,
		Name:     map[model.Language]string{model.LangFR: "Attestation Formation", model.LangPT: "Certificado de Formação"},
		Editable: false,
	},
	{
		ID:       "pe-1",
		Tag:      model.DocEmploymentRegistration,
		Name:     map[model.Language]string{model.LangFR: "N° Pôle Emploi", model.LangPT: "N° Pôle Emploi"},
		Editable: false,
	},
}

// Documents returns the catalog in display order.
func Documents() []Document {
	out := make([]Document, len(catalog))
	copy(out, catalog)
	return out
}

// DocumentIDFor maps a document tag to its concrete document ID. Pure lookup;
// ok is false for tags outside the catalog.
func DocumentIDFor(tag model.DocumentTag) (string, bool) {
	for _, d := range catalog {
		if d.Tag == tag {
			return d.ID, true
		}
	}
	return "", false
}

// ByTag returns the full catalog entry for a tag.
func ByTag(tag model.DocumentTag) (Document, bool) {
	for _, d := range catalog {
		if d.Tag == tag {
			return d, true
		}
	}
	return Document{}, false
}
