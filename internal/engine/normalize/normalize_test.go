package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStripsDiacritics(t *testing.T) {
	assert.Equal(t, Normalize("cafe"), Normalize("café"))
	assert.Equal(t, "telecharge mon cv", Normalize("Télécharge mon CV"))
	assert.Equal(t, "mostrar meu curriculo", Normalize("Mostrar meu currículo"))
	assert.Equal(t, "carta de motivacao", Normalize("carta de motivação"))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Affiche mon CV",
		"l'attestation de formation",
		"VER MEU CERTIFICADO",
		"  Télécharger ma lettre  ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}

func TestNormalizeApostrophes(t *testing.T) {
	assert.Equal(t, "l attestation", Normalize("l'attestation"))
	assert.Equal(t, "l attestation", Normalize("l’attestation"))
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \t\n"))
}

func TestNormalizeRepairsInvalidUTF8(t *testing.T) {
	assert.Equal(t, "cv", Normalize("cv\xff"))
}
