package loader

import (
	"cmp"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/translatable/translatable/pkg/document"
)

// decodeTOML decodes TOML into a document table. The decoder hands back an
// unordered map, so source order is recovered from MetaData.Keys, which
// lists every defined key in document order. Key segments are joined
// verbatim rather than via Key.String, which quotes segments containing
// dots and would never match the lookups in tomlTable.
func decodeTOML(data []byte) (*document.Table, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	rank := make(map[string]int, len(md.Keys()))
	for i, key := range md.Keys() {
		rank[strings.Join(key, ".")] = i
	}

	return tomlTable(raw, "", rank), nil
}

func tomlTable(raw map[string]any, prefix string, rank map[string]int) *document.Table {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		ra, aok := rank[prefix+a]
		rb, bok := rank[prefix+b]
		switch {
		case aok && bok:
			return cmp.Compare(ra, rb)
		case aok:
			return -1
		case bok:
			return 1
		}
		return strings.Compare(a, b)
	})

	table := document.NewTable()
	for _, k := range keys {
		table.Append(k, tomlValue(raw[k], prefix+k+".", rank))
	}
	return table
}

func tomlValue(v any, prefix string, rank map[string]int) document.Value {
	switch v := v.(type) {
	case string:
		return document.String{Text: v}
	case map[string]any:
		return tomlTable(v, prefix, rank)
	default:
		return document.Other{Raw: v}
	}
}
