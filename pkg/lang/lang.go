// Package lang provides the closed ISO 639-1 language catalog used to key
// translations. Languages are value types: equality and map-key behavior are
// defined by the two-letter code alone. Parsing is case-insensitive over the
// code, the canonical name, and every alternate spelling, and failed parses
// carry a closest-match suggestion computed by edit distance.
package lang

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownLanguage is the sentinel wrapped by every *ParseError.
var ErrUnknownLanguage = errors.New("lang: unknown language identifier")

// ParseError reports a failed language parse. Suggestion holds the catalog
// identifier (code, name, or alternate) with the minimum edit distance to the
// attempted text, or "" when no candidate exists.
type ParseError struct {
	Attempt    string
	Suggestion string
}

func (e *ParseError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("lang: %q is not a valid language", e.Attempt)
	}
	return fmt.Sprintf("lang: %q is not a valid language, perhaps you meant %q?", e.Attempt, e.Suggestion)
}

func (e *ParseError) Unwrap() error { return ErrUnknownLanguage }

// Language identifies one entry of the ISO 639-1 catalog. The zero value is
// invalid; obtain instances through Parse or MustParse. Language is
// comparable and hashes by code, so it can be used directly as a map key.
type Language struct {
	code string
}

// Parse matches text case-insensitively against each catalog entry's code,
// canonical name, and alternate spellings. On failure it returns a
// *ParseError carrying the attempted text and the closest catalog
// identifier.
func Parse(text string) (Language, error) {
	for _, e := range catalog {
		if matches(e, text) {
			return Language{code: e.code}, nil
		}
	}
	return Language{}, &ParseError{Attempt: text, Suggestion: closestIdent(text)}
}

// MustParse is Parse that panics on failure. Intended for static catalog
// references in tests and initialization code.
func MustParse(text string) Language {
	l, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return l
}

// Code returns the two-letter ISO 639-1 code.
func (l Language) Code() string { return l.code }

// Name returns the canonical display name, or the code when the catalog has
// no name for the entry.
func (l Language) Name() string {
	if i, ok := byCode[l.code]; ok && catalog[i].name != "" {
		return catalog[i].name
	}
	return l.code
}

// Alternates returns the alternate spellings registered for the language.
// The returned slice must not be mutated.
func (l Language) Alternates() []string {
	if i, ok := byCode[l.code]; ok {
		return catalog[i].alternates
	}
	return nil
}

// Valid reports whether the language is a catalog entry (the zero value is
// not).
func (l Language) Valid() bool {
	_, ok := byCode[l.code]
	return ok
}

func (l Language) String() string { return l.Name() }

// All returns every catalog language in stable order.
func All() []Language {
	out := make([]Language, len(catalog))
	for i, e := range catalog {
		out[i] = Language{code: e.code}
	}
	return out
}

func matches(e entry, text string) bool {
	if strings.EqualFold(e.code, text) || strings.EqualFold(e.name, text) {
		return true
	}
	for _, alt := range e.alternates {
		if strings.EqualFold(alt, text) {
			return true
		}
	}
	return false
}

// closestIdent returns the catalog identifier with the minimum edit distance
// to the attempt, comparing case-insensitively. Ties resolve to the first
// candidate in catalog order.
func closestIdent(attempt string) string {
	lowered := strings.ToLower(attempt)

	best := ""
	bestDist := -1
	consider := func(candidate string) {
		d := levenshtein.ComputeDistance(lowered, strings.ToLower(candidate))
		if bestDist < 0 || d < bestDist {
			best = candidate
			bestDist = d
		}
	}

	for _, e := range catalog {
		consider(e.code)
		if e.name != "" {
			consider(e.name)
		}
		for _, alt := range e.alternates {
			consider(alt)
		}
	}

	return best
}
