package translatable_test

import (
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/translatable/translatable"
	"github.com/translatable/translatable/pkg/document"
	"github.com/translatable/translatable/pkg/lang"
	"github.com/translatable/translatable/pkg/translation"
)

var testFS = fstest.MapFS{
	"greetings.toml": {Data: []byte(`
[greetings.formal]
es = "Hola {name}"
en = "Hello {name}"
`)},
	"extra.yaml": {Data: []byte(`
greetings:
  informal:
    es: "Que haces?"
    en: "Wyd?"
farewells:
  short:
    en: "Bye {name}"
`)},
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("builds from a filesystem", func(t *testing.T) {
		t.Parallel()
		tr, err := translatable.New(translatable.WithFS(testFS))
		require.NoError(t, err)
		require.NotNil(t, tr)
	})

	t.Run("invalid fallback text fails construction", func(t *testing.T) {
		t.Parallel()
		_, err := translatable.New(translatable.WithFallbackText("broken {"))
		require.Error(t, err)
	})

	t.Run("invalid fallback language fails construction", func(t *testing.T) {
		t.Parallel()
		var zero lang.Language
		_, err := translatable.New(translatable.WithFallbackLanguage(zero))
		require.Error(t, err)
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tr, err := translatable.New(translatable.WithFS(testFS))
	require.NoError(t, err)

	es := lang.MustParse("es")
	en := lang.MustParse("en")
	de := lang.MustParse("de")

	t.Run("resolves with substitution", func(t *testing.T) {
		t.Parallel()
		text, err := tr.Resolve([]string{"greetings", "formal"}, es, map[string]string{"name": "Josh"})
		require.NoError(t, err)
		require.Equal(t, "Hola Josh", text)
	})

	t.Run("sources merge into one tree", func(t *testing.T) {
		t.Parallel()
		text, err := tr.Resolve([]string{"greetings", "informal"}, en, nil)
		require.NoError(t, err)
		require.Equal(t, "Wyd?", text)

		text, err = tr.Resolve([]string{"farewells", "short"}, en, map[string]string{"name": "Ana"})
		require.NoError(t, err)
		require.Equal(t, "Bye Ana", text)
	})

	t.Run("dotted key convenience", func(t *testing.T) {
		t.Parallel()
		text, err := tr.ResolveKey("greetings.formal", en, map[string]string{"name": "Ana"})
		require.NoError(t, err)
		require.Equal(t, "Hello Ana", text)
	})

	t.Run("missing value leaves the placeholder verbatim", func(t *testing.T) {
		t.Parallel()
		text, err := tr.ResolveKey("greetings.formal", en, nil)
		require.NoError(t, err)
		require.Equal(t, "Hello {name}", text)
	})

	t.Run("missing language without fallback is an error", func(t *testing.T) {
		t.Parallel()
		_, err := tr.Resolve([]string{"greetings", "formal"}, de, nil)
		require.ErrorIs(t, err, translation.ErrLanguageUnavailable)
	})

	t.Run("path errors pass through", func(t *testing.T) {
		t.Parallel()
		_, err := tr.ResolveKey("greetings.fromal", es, nil)
		require.ErrorIs(t, err, translation.ErrPathNotFound)

		var notFound *translation.NotFoundError
		require.ErrorAs(t, err, &notFound)
		require.Equal(t, "formal", notFound.Suggestion)

		_, err = tr.ResolveKey("greetings", es, nil)
		require.ErrorIs(t, err, translation.ErrPathAtNamespace)
	})

	t.Run("partial resolution exposes available languages", func(t *testing.T) {
		t.Parallel()
		obj, err := tr.Translation("greetings", "formal")
		require.NoError(t, err)
		require.Equal(t, []lang.Language{en, es}, obj.Languages())
	})
}

func TestResolveFallbacks(t *testing.T) {
	t.Parallel()

	de := lang.MustParse("de")

	t.Run("fallback language", func(t *testing.T) {
		t.Parallel()
		tr, err := translatable.New(
			translatable.WithFS(testFS),
			translatable.WithFallbackLanguage(lang.MustParse("en")),
		)
		require.NoError(t, err)

		text, err := tr.ResolveKey("greetings.formal", de, map[string]string{"name": "Jo"})
		require.NoError(t, err)
		require.Equal(t, "Hello Jo", text)
	})

	t.Run("fallback text when no language matches", func(t *testing.T) {
		t.Parallel()
		tr, err := translatable.New(
			translatable.WithFS(testFS),
			translatable.WithFallbackText("missing translation for {name}"),
		)
		require.NoError(t, err)

		text, err := tr.ResolveKey("greetings.formal", de, map[string]string{"name": "Jo"})
		require.NoError(t, err)
		require.Equal(t, "missing translation for Jo", text)
	})

	t.Run("fallback language wins over fallback text", func(t *testing.T) {
		t.Parallel()
		tr, err := translatable.New(
			translatable.WithFS(testFS),
			translatable.WithFallbackLanguage(lang.MustParse("es")),
			translatable.WithFallbackText("nothing"),
		)
		require.NoError(t, err)

		text, err := tr.ResolveKey("greetings.formal", de, nil)
		require.NoError(t, err)
		require.Equal(t, "Hola {name}", text)
	})
}

func TestBrokenSources(t *testing.T) {
	t.Parallel()

	// Undecodable files sorting on either side of the good one: neither may
	// make the translations that did load unreachable.
	fsys := fstest.MapFS{
		"bad.toml":     {Data: []byte("= definitely not toml")},
		"good.toml":    {Data: []byte("[ok]\nen = \"fine\"\n")},
		"zz-late.toml": {Data: []byte("= also not toml")},
	}

	tr, err := translatable.New(
		translatable.WithFS(fsys),
		translatable.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)

	text, err := tr.ResolveKey("ok", lang.MustParse("en"), nil)
	require.NoError(t, err)
	require.Equal(t, "fine", text)
}

func TestWithSource(t *testing.T) {
	t.Parallel()

	table := document.NewTable(
		document.Entry{Key: "direct", Value: document.NewTable(
			document.Entry{Key: "en", Value: document.String{Text: "in memory"}},
		)},
	)

	tr, err := translatable.New(translatable.WithSource("inline", table))
	require.NoError(t, err)

	text, err := tr.ResolveKey("direct", lang.MustParse("en"), nil)
	require.NoError(t, err)
	require.Equal(t, "in memory", text)
}

func TestConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := translatable.LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "./translations", cfg.Path)
		require.Equal(t, "alphabetical", cfg.SeekMode)
		require.Equal(t, "overwrite", cfg.Overlap)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("TRANSLATABLE_PATH", "/tmp/locales")
		t.Setenv("TRANSLATABLE_SEEK_MODE", "unalphabetical")
		t.Setenv("TRANSLATABLE_OVERLAP", "ignore")

		cfg, err := translatable.LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "/tmp/locales", cfg.Path)
		require.Equal(t, "unalphabetical", cfg.SeekMode)
		require.Equal(t, "ignore", cfg.Overlap)
	})

	t.Run("invalid modes are rejected when expanded", func(t *testing.T) {
		_, err := translatable.Config{Path: ".", SeekMode: "sideways", Overlap: "overwrite"}.Options()
		require.Error(t, err)

		_, err = translatable.Config{Path: ".", SeekMode: "alphabetical", Overlap: "maybe"}.Options()
		require.Error(t, err)
	})

	t.Run("fallbacks are validated", func(t *testing.T) {
		_, err := translatable.Config{
			Path:             ".",
			SeekMode:         "alphabetical",
			Overlap:          "overwrite",
			FallbackLanguage: "Spnish",
		}.Options()
		require.ErrorIs(t, err, lang.ErrUnknownLanguage)
	})
}
