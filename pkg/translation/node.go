// Package translation implements the translation tree: parsing generic
// documents into validated nodes, merging many resource sources into one
// tree under an ordering and conflict policy, and resolving dotted key paths
// to translation leaves with precise failure reporting.
//
// A node is one of three shapes: a Nesting groups named children, a Leaf
// holds one translation (language to template), and a Broken node stands in
// for a subtree whose source failed to parse, so one malformed resource file
// never takes down unrelated translations. Trees are built once and are
// immutable afterwards, safe for concurrent reads.
package translation

import (
	"fmt"
	"slices"

	"github.com/translatable/translatable/pkg/document"
	"github.com/translatable/translatable/pkg/lang"
	"github.com/translatable/translatable/pkg/template"
)

// Node is the closed union of tree node shapes: *Nesting, *Leaf, or *Broken.
type Node interface {
	node()
}

// Nesting is an internal namespace node with named children.
type Nesting struct {
	children map[string]Node
}

func (*Nesting) node() {}

// NewNesting returns an empty nesting.
func NewNesting() *Nesting {
	return &Nesting{children: make(map[string]Node)}
}

// Child returns the child registered under name, if any.
func (n *Nesting) Child(name string) (Node, bool) {
	c, ok := n.children[name]
	return c, ok
}

// Keys returns the child names in sorted order.
func (n *Nesting) Keys() []string {
	keys := make([]string, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of children.
func (n *Nesting) Len() int { return len(n.children) }

// Leaf holds one translation object.
type Leaf struct {
	translation *Translation
}

func (*Leaf) node() {}

// NewLeaf wraps a translation in a leaf node.
func NewLeaf(t *Translation) *Leaf { return &Leaf{translation: t} }

// Translation returns the leaf's translation object.
func (l *Leaf) Translation() *Translation { return l.translation }

// Broken stands in for a subtree whose source could not be parsed. Source
// identifies the originating resource, Err is the stored construction error.
type Broken struct {
	Source string
	Err    error
}

func (*Broken) node() {}

// NewBroken returns a broken-branch sentinel node.
func NewBroken(source string, err error) *Broken {
	return &Broken{Source: source, Err: err}
}

// Translation maps languages to parsed templates; it is one leaf of
// localized content. Missing languages are normal, not an error condition,
// until a caller asks for one via Get.
type Translation struct {
	templates map[lang.Language]*template.String
}

// NewTranslation builds a translation from explicit entries.
func NewTranslation(templates map[lang.Language]*template.String) *Translation {
	if templates == nil {
		templates = make(map[lang.Language]*template.String)
	}
	return &Translation{templates: templates}
}

// Get returns the template registered for l, or a *LanguageUnavailableError
// listing the languages that are present.
func (t *Translation) Get(l lang.Language) (*template.String, error) {
	tmpl, ok := t.templates[l]
	if !ok {
		return nil, &LanguageUnavailableError{Language: l, Available: t.Languages()}
	}
	return tmpl, nil
}

// Has reports whether a template exists for l.
func (t *Translation) Has(l lang.Language) bool {
	_, ok := t.templates[l]
	return ok
}

// Languages returns the available languages sorted by code.
func (t *Translation) Languages() []lang.Language {
	out := make([]lang.Language, 0, len(t.templates))
	for l := range t.templates {
		out = append(out, l)
	}
	slices.SortFunc(out, func(a, b lang.Language) int {
		switch {
		case a.Code() < b.Code():
			return -1
		case a.Code() > b.Code():
			return 1
		}
		return 0
	})
	return out
}

func (t *Translation) set(l lang.Language, tmpl *template.String) {
	t.templates[l] = tmpl
}

// ParseNode validates one document table into a tree node. The first entry
// classifies the emerging shape (a string entry starts a Leaf, a table entry
// starts a Nesting) and every later entry must keep it. String
// entries are keyed by language codes and hold template text; duplicate
// language keys resolve last-write-wins. A nested table that fails to parse
// becomes a Broken child rather than failing the enclosing table, so the
// failure stays as local as possible. Errors at the current level (mixed
// shapes, invalid values, empty tables, bad languages or templates) fail the
// whole table.
func ParseNode(table *document.Table) (Node, error) {
	if table.Len() == 0 {
		return nil, ErrEmptyTable
	}

	var (
		leaf    *Translation
		nesting *Nesting
	)

	for _, e := range table.Entries() {
		switch v := e.Value.(type) {
		case document.String:
			if nesting != nil {
				return nil, fmt.Errorf("%w: string %q among nested tables", ErrMixedShape, e.Key)
			}
			if leaf == nil {
				leaf = NewTranslation(nil)
			}

			l, err := lang.Parse(e.Key)
			if err != nil {
				return nil, fmt.Errorf("translation: key %q: %w", e.Key, err)
			}
			tmpl, err := template.Parse(v.Text)
			if err != nil {
				return nil, fmt.Errorf("translation: value for %q: %w", e.Key, err)
			}
			leaf.set(l, tmpl)

		case *document.Table:
			if leaf != nil {
				return nil, fmt.Errorf("%w: table %q among translation strings", ErrMixedShape, e.Key)
			}
			if nesting == nil {
				nesting = NewNesting()
			}

			child, err := ParseNode(v)
			if err != nil {
				child = NewBroken("", err)
			}
			nesting.children[e.Key] = child

		default:
			return nil, fmt.Errorf("%w: key %q holds %T", ErrInvalidValue, e.Key, rawOf(e.Value))
		}
	}

	if leaf != nil {
		return NewLeaf(leaf), nil
	}
	return nesting, nil
}

func rawOf(v document.Value) any {
	if o, ok := v.(document.Other); ok {
		return o.Raw
	}
	return v
}
