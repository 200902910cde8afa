// Package loader discovers translation resource files in an fs.FS and
// decodes them into the generic document shape the translation tree
// consumes. TOML and YAML files are supported. Decoding preserves document
// order, which the tree relies on for shape classification and duplicate-key
// resolution. A file that fails to decode is returned as a source carrying
// its error instead of aborting the walk, feeding the tree's broken-branch
// design.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/translatable/translatable/pkg/document"
)

// ErrInvalidFile marks a translation file whose contents could not be
// decoded.
var ErrInvalidFile = errors.New("loader: invalid translation file")

// Source is one discovered resource file. ID is the file path within the
// walked filesystem and doubles as the source identifier the builder orders
// by. Exactly one of Table and Err is set.
type Source struct {
	ID    string
	Table *document.Table
	Err   error
}

// FromFS walks fsys collecting every .toml, .yaml, and .yml file. Traversal
// errors fail the call; per-file read or decode errors are carried on the
// returned source instead.
func FromFS(fsys fs.FS) ([]Source, error) {
	var sources []Source

	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		// Lowercasing handles .TOML/.Yaml style extensions across systems.
		var decode func([]byte) (*document.Table, error)
		switch strings.ToLower(path.Ext(filePath)) {
		case ".toml":
			decode = decodeTOML
		case ".yaml", ".yml":
			decode = decodeYAML
		default:
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			sources = append(sources, Source{ID: filePath, Err: fmt.Errorf("reading %q: %w", filePath, err)})
			return nil
		}

		table, err := decode(data)
		if err != nil {
			sources = append(sources, Source{ID: filePath, Err: fmt.Errorf("%w: %q: %v", ErrInvalidFile, filePath, err)})
			return nil
		}

		sources = append(sources, Source{ID: filePath, Table: table})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loader: walking translations: %w", err)
	}

	return sources, nil
}
