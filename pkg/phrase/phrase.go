// Package phrase normalizes voice-recognized code phrases before save lookup.
// Speech transcription returns things like "Amber. Beacon, tiger" for a
// phrase stored as "amber beacon tiger"; lookup happens on the normalized
// tokens.
package phrase

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.English)

// Tokenize splits a recognized phrase into lowercase word tokens, dropping
// punctuation the speech pipeline tends to insert. It does not enforce a
// token count; callers decide how many words a phrase must have.
func Tokenize(raw string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, raw)

	fields := strings.Fields(lower.String(cleaned))
	return fields
}
