package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/translatable/translatable/pkg/document"
)

// decodeYAML decodes YAML into a document table, reading the node tree
// directly so that mapping order is preserved.
func decodeYAML(data []byte) (*document.Table, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	if root.Kind == 0 || len(root.Content) == 0 {
		// Empty document.
		return document.NewTable(), nil
	}

	top := resolveAlias(root.Content[0])
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top-level value must be a mapping, found %s", yamlKind(top))
	}

	return yamlTable(top), nil
}

func yamlTable(n *yaml.Node) *document.Table {
	table := document.NewTable()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		table.Append(key.Value, yamlValue(resolveAlias(n.Content[i+1])))
	}
	return table
}

func yamlValue(n *yaml.Node) document.Value {
	switch {
	case n.Kind == yaml.MappingNode:
		return yamlTable(n)
	case n.Kind == yaml.ScalarNode && n.Tag == "!!str":
		return document.String{Text: n.Value}
	default:
		var raw any
		if err := n.Decode(&raw); err != nil {
			raw = n.Value
		}
		return document.Other{Raw: raw}
	}
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func yamlKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.MappingNode:
		return "a mapping"
	default:
		return "an unknown node"
	}
}
