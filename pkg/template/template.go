// Package template implements the flat placeholder syntax used by
// translation strings. A placeholder is a brace-delimited identifier such as
// {name}; a doubled opening brace escapes the construct, so {{name}} renders
// literally. Parsing records byte-offset spans into the original text once,
// and substitution splices values into those spans, which keeps repeated
// renders cheap and offset-safe.
package template

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

var (
	// ErrUnclosedBrace is the sentinel wrapped by *UnclosedError.
	ErrUnclosedBrace = errors.New("template: unclosed placeholder brace")
	// ErrInvalidKey is the sentinel wrapped by *InvalidKeyError.
	ErrInvalidKey = errors.New("template: invalid placeholder identifier")
)

// UnclosedError reports an opening brace with no matching closing brace.
// Index is the byte offset of the offending brace in the raw text.
type UnclosedError struct {
	Index int
}

func (e *UnclosedError) Error() string {
	return fmt.Sprintf("template: unclosed brace at index %d", e.Index)
}

func (e *UnclosedError) Unwrap() error { return ErrUnclosedBrace }

// InvalidKeyError reports a placeholder whose key is not a legal identifier.
type InvalidKeyError struct {
	Key string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("template: placeholder key %q is not a valid identifier", e.Key)
}

func (e *InvalidKeyError) Unwrap() error { return ErrInvalidKey }

// Span locates one placeholder in the original text. Start and End are byte
// offsets covering the full braced range, including both braces.
type Span struct {
	Key   string
	Start int
	End   int
}

// String is a parsed template. It owns the original text and the ordered,
// non-overlapping placeholder spans into it. Instances are immutable and safe
// for concurrent use.
type String struct {
	original string
	spans    []Span
}

// Parse scans raw left to right, collecting placeholder spans. An opening
// brace immediately preceded by an unconsumed opening brace ({{) is an escape
// and produces no span. A closing brace with no pending opening brace is
// ignored. The key between the braces is trimmed of surrounding whitespace
// and must be a legal identifier: a letter or underscore followed by letters,
// digits, or underscores.
func Parse(raw string) (*String, error) {
	var spans []Span

	// Byte offset of the pending unconsumed '{', or -1.
	open := -1
	prev := -1 // byte offset of the previous rune

	for i, c := range raw {
		switch {
		case c == '{' && open >= 0 && open == prev:
			// Second brace of a literal "{{": the tentative start is
			// cancelled, nothing here substitutes.
			open = -1
		case c == '{':
			open = i
		case c == '}' && open >= 0:
			key := strings.TrimSpace(raw[open+1 : i])
			if !validIdent(key) {
				return nil, &InvalidKeyError{Key: key}
			}
			spans = append(spans, Span{Key: key, Start: open, End: i + 1})
			open = -1
		}
		prev = i
	}

	if open >= 0 {
		return nil, &UnclosedError{Index: open}
	}

	return &String{original: raw, spans: spans}, nil
}

// MustParse is Parse that panics on failure.
func MustParse(raw string) *String {
	s, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// Original returns the unmodified template text.
func (s *String) Original() string { return s.original }

// Spans returns the placeholder spans in ascending start order. The returned
// slice must not be mutated.
func (s *String) Spans() []Span { return s.spans }

// Keys returns the distinct placeholder keys in first-appearance order.
func (s *String) Keys() []string {
	var keys []string
	for _, sp := range s.spans {
		if !slices.Contains(keys, sp.Key) {
			keys = append(keys, sp.Key)
		}
	}
	return keys
}

// Replace returns a copy of the original text with each placeholder whose key
// is present in values spliced out for its value. Placeholders with no value
// are left verbatim, braces included, so unresolved keys stay visible to the
// caller. Escaped syntax never appears as a span and is therefore never
// touched. The receiver is not modified; Replace may be called any number of
// times with different value maps.
func (s *String) Replace(values map[string]string) string {
	if len(s.spans) == 0 || len(values) == 0 {
		return s.original
	}

	spans := slices.Clone(s.spans)
	slices.SortStableFunc(spans, func(a, b Span) int { return a.Start - b.Start })

	out := []byte(s.original)

	// Tracks how far earlier replacements have shifted the text relative to
	// the original span offsets.
	offset := 0

	for _, sp := range spans {
		value, ok := values[sp.Key]
		if !ok {
			continue
		}

		start := sp.Start + offset
		end := sp.End + offset

		replaced := make([]byte, 0, len(out)+len(value)-(end-start))
		replaced = append(replaced, out[:start]...)
		replaced = append(replaced, value...)
		replaced = append(replaced, out[end:]...)
		out = replaced

		offset += len(value) - (sp.End - sp.Start)
	}

	return string(out)
}

// Equal reports whether two templates have identical original text and spans.
func (s *String) Equal(other *String) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.original == other.original && slices.Equal(s.spans, other.spans)
}

func validIdent(key string) bool {
	for i, c := range key {
		switch {
		case c == '_' || unicode.IsLetter(c):
		case i > 0 && unicode.IsDigit(c):
		default:
			return false
		}
	}
	return key != ""
}
