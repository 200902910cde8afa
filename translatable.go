package translatable

import (
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/translatable/translatable/pkg/document"
	"github.com/translatable/translatable/pkg/lang"
	"github.com/translatable/translatable/pkg/loader"
	"github.com/translatable/translatable/pkg/template"
	"github.com/translatable/translatable/pkg/translation"
)

// Translator resolves localized text against a translation tree built once
// at construction. It is immutable afterwards and safe for concurrent use.
type Translator struct {
	tree            *translation.Tree
	fallbackLang    lang.Language
	hasFallbackLang bool
	fallbackText    *template.String
}

type settings struct {
	sources         []loader.Source
	seek            translation.SeekMode
	policy          translation.ConflictPolicy
	fallbackLang    lang.Language
	hasFallbackLang bool
	fallbackText    *template.String
	logger          *slog.Logger
}

// Option configures the Translator during construction.
type Option func(*settings) error

// WithFS loads every translation file found in fsys. May be combined with
// other source options; all sources merge into one tree.
func WithFS(fsys fs.FS) Option {
	return func(s *settings) error {
		sources, err := loader.FromFS(fsys)
		if err != nil {
			return err
		}
		s.sources = append(s.sources, sources...)
		return nil
	}
}

// WithSource registers an already-parsed document table under the given
// source identifier.
func WithSource(id string, table *document.Table) Option {
	return func(s *settings) error {
		s.sources = append(s.sources, loader.Source{ID: id, Table: table})
		return nil
	}
}

// WithSeekMode sets the order sources are processed in.
func WithSeekMode(mode translation.SeekMode) Option {
	return func(s *settings) error {
		s.seek = mode
		return nil
	}
}

// WithConflictPolicy sets the outcome when two sources define the same path.
func WithConflictPolicy(policy translation.ConflictPolicy) Option {
	return func(s *settings) error {
		s.policy = policy
		return nil
	}
}

// WithFallbackLanguage sets the language tried when a translation has no
// entry for the requested one.
func WithFallbackLanguage(l lang.Language) Option {
	return func(s *settings) error {
		if !l.Valid() {
			return fmt.Errorf("translatable: fallback language is not a catalog entry")
		}
		s.fallbackLang = l
		s.hasFallbackLang = true
		return nil
	}
}

// WithFallbackText sets the template rendered when neither the requested nor
// the fallback language is available. The text uses regular placeholder
// syntax and is substituted with the caller's values.
func WithFallbackText(raw string) Option {
	return func(s *settings) error {
		tmpl, err := template.Parse(raw)
		if err != nil {
			return fmt.Errorf("translatable: fallback text: %w", err)
		}
		s.fallbackText = tmpl
		return nil
	}
}

// WithLogger sets the logger used to report broken branches after the build.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) error {
		s.logger = logger
		return nil
	}
}

// New builds a Translator from the configured sources. The build itself is
// total: sources that fail to parse become broken branches reported through
// the logger, and resolution into them returns the stored error. New fails
// only on invalid options or an unreadable source filesystem.
func New(opts ...Option) (*Translator, error) {
	s := &settings{}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("translatable: failed to apply option: %w", err)
		}
	}

	builder := translation.NewBuilder(s.seek, s.policy)
	for _, src := range s.sources {
		if src.Err != nil {
			builder.AddBroken(src.ID, nil, src.Err)
			continue
		}
		builder.Add(src.ID, nil, src.Table)
	}
	tree := builder.Build()

	if s.logger != nil {
		for _, b := range tree.Broken() {
			s.logger.Warn("translation branch failed to parse",
				slog.String("source", b.Source),
				slog.Any("error", b.Err))
		}
	}

	return &Translator{
		tree:            tree,
		fallbackLang:    s.fallbackLang,
		hasFallbackLang: s.hasFallbackLang,
		fallbackText:    s.fallbackText,
	}, nil
}

// Tree exposes the merged translation tree for callers that need direct
// access to nodes.
func (t *Translator) Tree() *translation.Tree { return t.tree }

// Translation resolves the path to its leaf translation without selecting a
// language, for callers that want to enumerate available languages or defer
// substitution.
func (t *Translator) Translation(segments ...string) (*translation.Translation, error) {
	return t.tree.FindPath(segments...)
}

// Resolve walks the path, selects the template for the language, and
// substitutes the caller's values. When the language is missing from the
// leaf, the fallback language is tried, then the fallback text; with neither
// configured the language-unavailable error is returned.
func (t *Translator) Resolve(segments []string, language lang.Language, values map[string]string) (string, error) {
	tr, err := t.tree.FindPath(segments...)
	if err != nil {
		return "", err
	}

	tmpl, err := tr.Get(language)
	if err != nil {
		if t.hasFallbackLang && tr.Has(t.fallbackLang) {
			tmpl, _ = tr.Get(t.fallbackLang)
			return tmpl.Replace(values), nil
		}
		if t.fallbackText != nil {
			return t.fallbackText.Replace(values), nil
		}
		return "", err
	}

	return tmpl.Replace(values), nil
}

// ResolveKey is Resolve with a dotted key path, e.g. "greetings.formal".
func (t *Translator) ResolveKey(key string, language lang.Language, values map[string]string) (string, error) {
	return t.Resolve(strings.Split(key, "."), language, values)
}
