package translation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/translatable/translatable/pkg/lang"
)

// Construction-time sentinels. ParseNode wraps these with the offending key
// so errors.Is keeps working through the added context.
var (
	// ErrMixedShape marks a table mixing translation strings and nested
	// tables at the same level.
	ErrMixedShape = errors.New("translation: table mixes translations and nestings at the same level")

	// ErrInvalidValue marks a table entry that is neither a string nor a
	// table.
	ErrInvalidValue = errors.New("translation: only strings and tables are allowed in a translation table")

	// ErrEmptyTable marks a table with no entries, whose shape cannot be
	// classified.
	ErrEmptyTable = errors.New("translation: empty table, cannot tell a translation from a nesting")
)

// Resolution-time sentinels. Each structured error below unwraps to one of
// these.
var (
	ErrPathNotFound        = errors.New("translation: path segment not found")
	ErrPathPastLeaf        = errors.New("translation: path continues past a translation")
	ErrPathAtNamespace     = errors.New("translation: path leads to a namespace, not a translation")
	ErrBrokenBranch        = errors.New("translation: branch failed to parse")
	ErrLanguageUnavailable = errors.New("translation: language not available")
)

// NotFoundError reports a segment that names no child of the nesting reached
// so far. Suggestion is the sibling key closest to the failing segment by
// edit distance, or "" when the nesting is empty.
type NotFoundError struct {
	Consumed   []string
	Segment    string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	at := strings.Join(e.Consumed, ".")
	if at == "" {
		at = "the root"
	}
	if e.Suggestion == "" {
		return fmt.Sprintf("translation: %q does not exist in %q", e.Segment, at)
	}
	return fmt.Sprintf("translation: %q does not exist in %q, perhaps you meant %q?", e.Segment, at, e.Suggestion)
}

func (e *NotFoundError) Unwrap() error { return ErrPathNotFound }

// PastLeafError reports a path that keeps going after reaching a translation
// leaf: the caller's path is too specific.
type PastLeafError struct {
	Consumed []string
	Segment  string
}

func (e *PastLeafError) Error() string {
	return fmt.Sprintf("translation: cannot access %q, %q already leads to a translation",
		e.Segment, strings.Join(e.Consumed, "."))
}

func (e *PastLeafError) Unwrap() error { return ErrPathPastLeaf }

// NamespaceError reports a path that ends on a nesting: the caller's path is
// not specific enough.
type NamespaceError struct {
	Consumed []string
}

func (e *NamespaceError) Error() string {
	return fmt.Sprintf("translation: %q leads to a namespace, not a translation",
		strings.Join(e.Consumed, "."))
}

func (e *NamespaceError) Unwrap() error { return ErrPathAtNamespace }

// BrokenBranchError reports a walk into a branch that was replaced by its
// construction error at build time. It unwraps both to ErrBrokenBranch and to
// the stored error.
type BrokenBranchError struct {
	Consumed []string
	Source   string
	Err      error
}

func (e *BrokenBranchError) Error() string {
	at := strings.Join(e.Consumed, ".")
	if at == "" {
		at = "the root"
	}
	return fmt.Sprintf("translation: branch at %q (source %q) is not accessible, it failed to parse: %v",
		at, e.Source, e.Err)
}

func (e *BrokenBranchError) Unwrap() []error { return []error{ErrBrokenBranch, e.Err} }

// LanguageUnavailableError reports a translation that has no template for the
// requested language.
type LanguageUnavailableError struct {
	Language  lang.Language
	Available []lang.Language
}

func (e *LanguageUnavailableError) Error() string {
	codes := make([]string, len(e.Available))
	for i, l := range e.Available {
		codes[i] = l.Code()
	}
	return fmt.Sprintf("translation: no %q translation, available languages: %s",
		e.Language.Code(), strings.Join(codes, ", "))
}

func (e *LanguageUnavailableError) Unwrap() error { return ErrLanguageUnavailable }
