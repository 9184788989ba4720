// Package taxonomy defines the closed vocabularies of the ledger: transaction
// kinds and categories, and the rule that turns free text into one of them.
package taxonomy

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize trims text, collapses inner whitespace and title-cases each word
// so that it can be compared against canonical spellings.
func Normalize(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	// Casers are stateful and must not be shared between goroutines.
	return cases.Title(language.Und).String(strings.Join(fields, " "))
}

// lookupKey is the map key used for both vocabularies. Diacritics are folded
// so that "Saude" and "Saúde" land on the same entry.
func lookupKey(text string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, Normalize(text))
	if err != nil {
		return Normalize(text)
	}
	return folded
}
