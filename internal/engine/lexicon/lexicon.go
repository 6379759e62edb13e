// Package lexicon holds the hand-curated trigger vocabularies and the local
// keyword scorer. Matching is substring containment over normalized text:
// the vocabulary is small enough that over-matching is acceptable, and a
// false positive is always confirmed by the user downstream, while a false
// negative falls through to the rate-limited remote tier.
package lexicon

import (
	"strings"

	"github.com/mycofad-vault/server/internal/engine/model"
	"github.com/mycofad-vault/server/internal/engine/normalize"
)

// AcceptThreshold is the minimum combined keyword-hit count for a local
// resolution to be accepted without consulting the remote tier.
const AcceptThreshold = 2

type actionEntry struct {
	kind   model.ActionKind
	tokens []string
}

type documentEntry struct {
	tag    model.DocumentTag
	tokens []string
}

// Table order is significant: when two categories tie on the maximum score
// the earlier-declared one wins. Tokens are stored pre-normalized (lowercase,
// no diacritics) so they compare directly against normalized transcripts.
var actionTable = []actionEntry{
	{model.ActionDisplay, []string{
		"affiche", "afficher", "montre", "montrer", "voir",
		"ouvre", "ouvrir", "consulte", "consulter", "regarde",
		"mostrar", "ver", "abrir", "exibir", "visualizar",
	}},
	{model.ActionDownload, []string{
		"telecharge", "telecharger", "telechargement",
		"download", "baixar", "descarregar",
	}},
	{model.ActionEdit, []string{
		"modifie", "modifier", "change", "changer",
		"edite", "editer", "corrige", "corriger", "mets a jour",
		"editar", "modificar", "alterar", "mudar",
	}},
	{model.ActionSend, []string{
		"envoie", "envoyer", "envoi", "mail", "email",
		"transmet", "transmettre", "partage", "partager",
		"enviar", "mandar", "compartilhar",
	}},
}

var documentTable = []documentEntry{
	{model.DocCV, []string{
		"cv", "curriculum", "curriculo", "resume", "profil",
	}},
	{model.DocLetter, []string{
		"lettre", "lettres", "motivation", "candidature", "sofrigu",
		"carta", "cartas", "motivacao",
	}},
	{model.DocBenefitAccount, []string{
		"cpf", "compte formation", "formation professionnelle",
		"compte personnel", "droit formation",
	}},
	{model.DocCertificate, []string{
		"attestation", "certificat", "diplome", "formation",
		"geste", "gestes", "posture", "postures",
		"certificado", "formacao",
	}},
	{model.DocEmploymentRegistration, []string{
		"pole", "emploi", "pole emploi", "france travail",
		"chomage", "inscription", "identifiant pe",
	}},
}

// countMatches returns how many of the tokens occur in text.
func countMatches(text string, tokens []string) int {
	n := 0
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			n++
		}
	}
	return n
}

// Score normalizes text and resolves the best action and document categories
// independently. Best tracking uses a strict comparison, so the first category
// reaching the running maximum is kept on ties. Understood requires both
// categories to match and the combined confidence to reach AcceptThreshold.
func Score(text string) model.LocalResolution {
	lower := normalize.Normalize(text)

	var action model.ActionKind
	actionScore := 0
	for _, e := range actionTable {
		if n := countMatches(lower, e.tokens); n > actionScore {
			action = e.kind
			actionScore = n
		}
	}

	var docType model.DocumentTag
	docScore := 0
	for _, e := range documentTable {
		if n := countMatches(lower, e.tokens); n > docScore {
			docType = e.tag
			docScore = n
		}
	}

	confidence := actionScore + docScore
	return model.LocalResolution{
		Action:     action,
		DocType:    docType,
		Confidence: confidence,
		Understood: action != "" && docType != "" && confidence >= AcceptThreshold,
	}
}
