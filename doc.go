// Package translatable resolves localized text. Given a segmented key path
// and a language, it returns the template registered for that path and
// language, drawn from a set of TOML/YAML resource files merged into one
// logical tree, with placeholders substituted from caller-supplied values.
//
// # Basic Usage
//
// Build a Translator from a directory of resource files and resolve text:
//
//	t, err := translatable.New(
//		translatable.WithFS(os.DirFS("./translations")),
//	)
//	if err != nil {
//		return err
//	}
//
//	text, err := t.ResolveKey("greetings.formal", lang.MustParse("es"),
//		map[string]string{"name": "Josh"})
//	// "Hola Josh"
//
// Resource files hold nested tables whose leaves map ISO 639-1 codes to
// template strings:
//
//	[greetings.formal]
//	es = "Hola {name}"
//	en = "Hello {name}"
//
// Placeholders use single braces; a doubled brace escapes them, so
// "{{name}}" renders literally. Placeholders without a value are left
// verbatim in the output.
//
// # Merging and Precedence
//
// Every file merges into a single tree. Files are processed in
// case-insensitive path order (reversible with WithSeekMode), and when two
// files define the same path the conflict policy decides the winner:
// overwrite keeps the later file in processing order, ignore keeps the
// earlier one.
//
// One malformed file never takes down the rest: its branch is recorded as
// broken and resolving into it returns the stored parse error, while every
// other branch keeps working.
//
// # Partial Results
//
// Callers that need intermediate stages can use the lower-level entry
// points: Translation resolves a path without selecting a language,
// Translation.Get selects a template without substituting, and
// template.String.Replace substitutes on demand.
//
// # Process-Wide Instance
//
// Default builds a translator once per process from TRANSLATABLE_*
// environment variables and returns the same instance (or the same error) to
// every caller.
//
// # Thread Safety
//
// A Translator is immutable after New. The tree is read-only, templates are
// immutable, and substitution allocates its own output, so all methods are
// safe for concurrent use without coordination.
package translatable
