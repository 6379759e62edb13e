// Package normalize canonicalizes voice transcripts for keyword matching.
// The pipeline repairs invalid UTF-8, applies canonical decomposition and
// case folding, strips combining marks so accented and plain spellings
// compare equal, replaces apostrophe variants with a space, and trims the
// result.
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFD,                           // canonical decomposition
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
		)
	},
}

var apostrophes = strings.NewReplacer("'", " ", "’", " ", "ʼ", " ")

// Normalize returns the canonical form of s following the pipeline above.
// It is pure and idempotent; empty or whitespace-only input yields "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// transform failures are not expected after UTF-8 repair; fall back
		// to plain lowercasing rather than dropping the transcript
		ns = strings.ToLower(s)
	}

	ns = apostrophes.Replace(ns)

	return strings.TrimSpace(ns)
}
