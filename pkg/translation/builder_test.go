package translation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/translatable/translatable/pkg/document"
	"github.com/translatable/translatable/pkg/lang"
	"github.com/translatable/translatable/pkg/translation"
)

// conflictSource returns a document defining common.greeting with the given
// English text.
func conflictSource(text string) *document.Table {
	return tbl(
		entry("common", tbl(
			entry("greeting", tbl(
				entry("en", str(text)),
			)),
		)),
	)
}

func resolveEnglish(t *testing.T, tree *translation.Tree, segments ...string) string {
	t.Helper()
	tr, err := tree.FindPath(segments...)
	require.NoError(t, err)
	tmpl, err := tr.Get(lang.MustParse("en"))
	require.NoError(t, err)
	return tmpl.Replace(nil)
}

func TestBuildMergePrecedence(t *testing.T) {
	t.Parallel()

	// a.toml sorts before b.toml; reversing the seek mode flips which one is
	// "later" and therefore which one each policy keeps.
	tests := []struct {
		name     string
		seek     translation.SeekMode
		policy   translation.ConflictPolicy
		expected string
	}{
		{name: "overwrite ascending keeps later source", seek: translation.SeekAlphabetical, policy: translation.ConflictOverwrite, expected: "from b"},
		{name: "ignore ascending keeps earlier source", seek: translation.SeekAlphabetical, policy: translation.ConflictIgnore, expected: "from a"},
		{name: "overwrite reversed keeps later source", seek: translation.SeekUnalphabetical, policy: translation.ConflictOverwrite, expected: "from a"},
		{name: "ignore reversed keeps earlier source", seek: translation.SeekUnalphabetical, policy: translation.ConflictIgnore, expected: "from b"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tree := translation.NewBuilder(tt.seek, tt.policy).
				Add("b.toml", nil, conflictSource("from b")).
				Add("a.toml", nil, conflictSource("from a")).
				Build()

			require.Equal(t, tt.expected, resolveEnglish(t, tree, "common", "greeting"))
		})
	}

	t.Run("source ordering is case-insensitive", func(t *testing.T) {
		t.Parallel()
		tree := translation.NewBuilder(translation.SeekAlphabetical, translation.ConflictOverwrite).
			Add("B.toml", nil, conflictSource("from B")).
			Add("a.toml", nil, conflictSource("from a")).
			Build()

		// "a.toml" < "b.toml" when compared case-insensitively, so B wins
		// under overwrite despite 'B' < 'a' in byte order.
		require.Equal(t, "from B", resolveEnglish(t, tree, "common", "greeting"))
	})
}

func TestBuildMergesDisjointSources(t *testing.T) {
	t.Parallel()

	sourceA := tbl(
		entry("greetings", tbl(
			entry("formal", tbl(
				entry("es", str("Hola")),
				entry("en", str("Hello")),
			)),
		)),
	)
	sourceB := tbl(
		entry("greetings", tbl(
			entry("informal", tbl(
				entry("es", str("Que haces?")),
				entry("en", str("Wyd?")),
			)),
		)),
	)

	tree := translation.NewBuilder(translation.SeekAlphabetical, translation.ConflictOverwrite).
		Add("a.toml", nil, sourceA).
		Add("b.toml", nil, sourceB).
		Build()

	formal, err := tree.FindPath("greetings", "formal")
	require.NoError(t, err)
	tmpl, err := formal.Get(lang.MustParse("es"))
	require.NoError(t, err)
	require.Equal(t, "Hola", tmpl.Replace(nil))

	informal, err := tree.FindPath("greetings", "informal")
	require.NoError(t, err)
	tmpl, err = informal.Get(lang.MustParse("en"))
	require.NoError(t, err)
	require.Equal(t, "Wyd?", tmpl.Replace(nil))
}

func TestBuildMounts(t *testing.T) {
	t.Parallel()

	t.Run("mount path creates intermediate nestings", func(t *testing.T) {
		t.Parallel()
		tree := translation.NewBuilder(translation.SeekAlphabetical, translation.ConflictOverwrite).
			Add("deep.toml", []string{"app", "errors"}, tbl(
				entry("not_found", tbl(entry("en", str("missing")))),
			)).
			Build()

		require.Equal(t, "missing", resolveEnglish(t, tree, "app", "errors", "not_found"))
	})

	t.Run("mounted node merges with root sources", func(t *testing.T) {
		t.Parallel()
		tree := translation.NewBuilder(translation.SeekAlphabetical, translation.ConflictOverwrite).
			Add("root.toml", nil, conflictSource("hello")).
			Add("extra.toml", []string{"common"}, tbl(
				entry("farewell", tbl(entry("en", str("bye")))),
			)).
			Build()

		require.Equal(t, "hello", resolveEnglish(t, tree, "common", "greeting"))
		require.Equal(t, "bye", resolveEnglish(t, tree, "common", "farewell"))
	})
}

func TestBuildIsTotal(t *testing.T) {
	t.Parallel()

	t.Run("malformed source becomes a broken branch", func(t *testing.T) {
		t.Parallel()
		tree := translation.NewBuilder(translation.SeekAlphabetical, translation.ConflictOverwrite).
			Add("good.toml", nil, conflictSource("hello")).
			Add("bad.toml", []string{"busted"}, tbl(
				entry("en", str("Hello {")),
				entry("oops", tbl(entry("en", str("x")))),
			)).
			Build()

		require.Equal(t, "hello", resolveEnglish(t, tree, "common", "greeting"))

		_, err := tree.FindPath("busted")
		require.ErrorIs(t, err, translation.ErrBrokenBranch)

		var broken *translation.BrokenBranchError
		require.ErrorAs(t, err, &broken)
		require.Equal(t, "bad.toml", broken.Source)
	})

	t.Run("already-parsed nodes register directly", func(t *testing.T) {
		t.Parallel()
		node, err := translation.ParseNode(tbl(entry("en", str("prebuilt"))))
		require.NoError(t, err)

		tree := translation.NewBuilder(translation.SeekAlphabetical, translation.ConflictOverwrite).
			AddNode("mem", []string{"cached", "value"}, node).
			Build()

		require.Equal(t, "prebuilt", resolveEnglish(t, tree, "cached", "value"))
	})

	t.Run("upstream failure registers as broken", func(t *testing.T) {
		t.Parallel()
		readErr := errors.New("permission denied")
		tree := translation.NewBuilder(translation.SeekAlphabetical, translation.ConflictOverwrite).
			AddBroken("locked.toml", []string{"locked"}, readErr).
			Build()

		_, err := tree.FindPath("locked")
		require.ErrorIs(t, err, translation.ErrBrokenBranch)
		require.ErrorIs(t, err, readErr)
	})

	t.Run("broken branches are discoverable for diagnostics", func(t *testing.T) {
		t.Parallel()
		tree := translation.NewBuilder(translation.SeekAlphabetical, translation.ConflictIgnore).
			AddBroken("x.toml", []string{"x"}, errors.New("boom")).
			Add("ok.toml", nil, conflictSource("fine")).
			Build()

		broken := tree.Broken()
		require.Len(t, broken, 1)
		require.Equal(t, "x.toml", broken[0].Source)
	})
}

func TestBuildRootMountedBrokenSources(t *testing.T) {
	t.Parallel()

	// A source that fails wholesale is mounted at the root like any other
	// file. It must neither shadow the sources that did parse nor vanish
	// from diagnostics, whichever side of the conflict it lands on.

	t.Run("overwrite keeps good sources reachable", func(t *testing.T) {
		t.Parallel()
		// z.toml processes after a.toml, so under overwrite it would win a
		// root conflict outright if it were merged like regular content.
		tree := translation.NewBuilder(translation.SeekAlphabetical, translation.ConflictOverwrite).
			Add("a.toml", nil, conflictSource("hello")).
			AddBroken("z.toml", nil, errors.New("unreadable")).
			Build()

		require.Equal(t, "hello", resolveEnglish(t, tree, "common", "greeting"))

		_, err := tree.FindPath("z.toml")
		require.ErrorIs(t, err, translation.ErrBrokenBranch)

		broken := tree.Broken()
		require.Len(t, broken, 1)
		require.Equal(t, "z.toml", broken[0].Source)
	})

	t.Run("ignore still reports the failure", func(t *testing.T) {
		t.Parallel()
		tree := translation.NewBuilder(translation.SeekAlphabetical, translation.ConflictIgnore).
			Add("a.toml", nil, conflictSource("hello")).
			AddBroken("z.toml", nil, errors.New("unreadable")).
			Build()

		require.Equal(t, "hello", resolveEnglish(t, tree, "common", "greeting"))

		broken := tree.Broken()
		require.Len(t, broken, 1)
		require.Equal(t, "z.toml", broken[0].Source)
	})

	t.Run("broken source processed first does not block later ones", func(t *testing.T) {
		t.Parallel()
		tree := translation.NewBuilder(translation.SeekAlphabetical, translation.ConflictIgnore).
			AddBroken("a.toml", nil, errors.New("unreadable")).
			Add("z.toml", nil, conflictSource("hello")).
			Build()

		require.Equal(t, "hello", resolveEnglish(t, tree, "common", "greeting"))

		broken := tree.Broken()
		require.Len(t, broken, 1)
		require.Equal(t, "a.toml", broken[0].Source)
	})

	t.Run("multiple broken sources all survive", func(t *testing.T) {
		t.Parallel()
		tree := translation.NewBuilder(translation.SeekAlphabetical, translation.ConflictOverwrite).
			AddBroken("a.toml", nil, errors.New("first failure")).
			AddBroken("b.toml", nil, errors.New("second failure")).
			Build()

		broken := tree.Broken()
		require.Len(t, broken, 2)

		sources := []string{broken[0].Source, broken[1].Source}
		require.ElementsMatch(t, []string{"a.toml", "b.toml"}, sources)
	})
}

func TestBuildConflictsAcrossShapes(t *testing.T) {
	t.Parallel()

	leafAtCommon := tbl(
		entry("common", tbl(
			entry("en", str("flat")),
		)),
	)

	t.Run("overwrite replaces a leaf blocking an intermediate segment", func(t *testing.T) {
		t.Parallel()
		tree := translation.NewBuilder(translation.SeekAlphabetical, translation.ConflictOverwrite).
			Add("a.toml", nil, leafAtCommon).
			Add("b.toml", nil, conflictSource("nested wins")).
			Build()

		require.Equal(t, "nested wins", resolveEnglish(t, tree, "common", "greeting"))
	})

	t.Run("ignore keeps the earlier leaf intact", func(t *testing.T) {
		t.Parallel()
		tree := translation.NewBuilder(translation.SeekAlphabetical, translation.ConflictIgnore).
			Add("a.toml", nil, leafAtCommon).
			Add("b.toml", nil, conflictSource("nested loses")).
			Build()

		require.Equal(t, "flat", resolveEnglish(t, tree, "common"))
		_, err := tree.FindPath("common", "greeting")
		require.ErrorIs(t, err, translation.ErrPathPastLeaf)
	})
}
