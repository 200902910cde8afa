package translation

// Tree is the merged translation tree built from every configured source.
// It is immutable after Build and safe for concurrent reads without locking.
type Tree struct {
	root Node
}

// NewTree wraps an already-constructed root node.
func NewTree(root Node) *Tree { return &Tree{root: root} }

// Root returns the root node.
func (t *Tree) Root() Node { return t.root }

// FindPath resolves the key segments against the tree root. See the
// package-level FindPath for the failure taxonomy.
func (t *Tree) FindPath(segments ...string) (*Translation, error) {
	return FindPath(t.root, segments...)
}

// Broken returns every broken branch in the tree, for diagnostics.
func (t *Tree) Broken() []*Broken {
	return collectBroken(t.root, nil)
}

func collectBroken(node Node, acc []*Broken) []*Broken {
	switch n := node.(type) {
	case *Broken:
		acc = append(acc, n)
	case *Nesting:
		for _, key := range n.Keys() {
			child, _ := n.Child(key)
			acc = collectBroken(child, acc)
		}
	}
	return acc
}
