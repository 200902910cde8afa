package translation

import (
	"slices"
	"strings"

	"github.com/translatable/translatable/pkg/document"
)

// SeekMode controls the order sources are processed in. Sources are compared
// by their identifier, case-insensitively; SeekUnalphabetical reverses the
// order. Because the conflict policy is defined against the effective
// processing order, reversing it changes which source wins a collision.
type SeekMode int

const (
	SeekAlphabetical SeekMode = iota
	SeekUnalphabetical
)

// ConflictPolicy decides the outcome when two sources define the same path.
// ConflictOverwrite keeps the later source in processing order,
// ConflictIgnore keeps the earlier one.
type ConflictPolicy int

const (
	ConflictOverwrite ConflictPolicy = iota
	ConflictIgnore
)

type registration struct {
	sourceID string
	mount    []string
	table    *document.Table
	node     Node
	err      error
}

// Builder accumulates source registrations and produces a merged tree. It is
// a transient, single-owner, write-only accumulator: register every source,
// call Build once, and discard it. A zero SeekMode and ConflictPolicy mean
// alphabetical order with overwrite semantics.
type Builder struct {
	regs   []registration
	seek   SeekMode
	policy ConflictPolicy
}

// NewBuilder returns a builder with the given ordering and conflict modes.
func NewBuilder(seek SeekMode, policy ConflictPolicy) *Builder {
	return &Builder{seek: seek, policy: policy}
}

// Add registers a document table mounted at the given path segments. An
// empty mount overlays the table's contents onto the tree root.
func (b *Builder) Add(sourceID string, mount []string, table *document.Table) *Builder {
	b.regs = append(b.regs, registration{sourceID: sourceID, mount: mount, table: table})
	return b
}

// AddNode registers an already-parsed node. The builder takes ownership of
// node: Build stamps and merges registered nodes in place, so the caller
// must not retain or mutate node after registration.
func (b *Builder) AddNode(sourceID string, mount []string, node Node) *Builder {
	b.regs = append(b.regs, registration{sourceID: sourceID, mount: mount, node: node})
	return b
}

// AddBroken registers a source that already failed upstream (unreadable or
// undecodable); it becomes a broken branch at its mount point.
func (b *Builder) AddBroken(sourceID string, mount []string, err error) *Builder {
	b.regs = append(b.regs, registration{sourceID: sourceID, mount: mount, err: err})
	return b
}

// Build merges every registration into one tree. The build is total:
// registrations that fail to parse become broken branches, never a failed
// build. The builder must not be reused afterwards.
func (b *Builder) Build() *Tree {
	regs := slices.Clone(b.regs)
	slices.SortStableFunc(regs, func(x, y registration) int {
		return strings.Compare(strings.ToLower(x.sourceID), strings.ToLower(y.sourceID))
	})
	if b.seek == SeekUnalphabetical {
		slices.Reverse(regs)
	}

	var root Node = NewNesting()

	for _, reg := range regs {
		node := reg.node
		switch {
		case reg.err != nil:
			node = NewBroken(reg.sourceID, reg.err)
		case node == nil:
			parsed, err := ParseNode(reg.table)
			if err != nil {
				parsed = NewBroken(reg.sourceID, err)
			}
			node = parsed
		}
		stampSource(node, reg.sourceID)

		root = insertAt(root, reg.mount, node, b.policy)
	}

	return &Tree{root: root}
}

// insertAt places incoming at the mount path below cur, creating missing
// intermediate nestings, and returns the node that now occupies cur's slot.
// Collisions on the way down and at the target both go through the conflict
// policy; only two nestings merge structurally.
func insertAt(cur Node, mount []string, incoming Node, policy ConflictPolicy) Node {
	if len(mount) == 0 {
		if cur == nil {
			return incoming
		}
		// A broken source mounted at the root must not win or lose the root
		// conflict wholesale: winning would make every other source
		// unreachable, losing would drop the stored error without a trace.
		// Graft it under its own source name instead, keeping the rest of
		// the tree usable and the failure discoverable.
		switch in := incoming.(type) {
		case *Broken:
			switch have := cur.(type) {
			case *Nesting:
				return graftBroken(have, in, policy)
			case *Broken:
				nest := NewNesting()
				graftBroken(nest, have, policy)
				return graftBroken(nest, in, policy)
			}
		case *Nesting:
			if have, ok := cur.(*Broken); ok {
				return graftBroken(in, have, policy)
			}
		}
		return mergeNodes(cur, incoming, policy)
	}

	nest, ok := cur.(*Nesting)
	if cur != nil && !ok {
		// An intermediate segment is occupied by a leaf or broken branch.
		if policy == ConflictIgnore {
			return cur
		}
		nest = nil
	}
	if nest == nil {
		nest = NewNesting()
	}

	nest.children[mount[0]] = insertAt(nest.children[mount[0]], mount[1:], incoming, policy)
	return nest
}

// graftBroken hangs a broken branch off nest under the branch's own source
// name and returns nest. If the slot is already taken the collision is a
// regular path conflict and the policy decides it.
func graftBroken(nest *Nesting, broken *Broken, policy ConflictPolicy) *Nesting {
	if have, ok := nest.children[broken.Source]; ok {
		nest.children[broken.Source] = mergeNodes(have, broken, policy)
		return nest
	}
	nest.children[broken.Source] = broken
	return nest
}

// mergeNodes combines two nodes occupying the same path. Two nestings merge
// child by child; any other pairing is a conflict resolved by the policy.
func mergeNodes(existing, incoming Node, policy ConflictPolicy) Node {
	en, eok := existing.(*Nesting)
	in, iok := incoming.(*Nesting)

	if eok && iok {
		for key, child := range in.children {
			if have, ok := en.children[key]; ok {
				en.children[key] = mergeNodes(have, child, policy)
			} else {
				en.children[key] = child
			}
		}
		return en
	}

	if policy == ConflictOverwrite {
		return incoming
	}
	return existing
}

// stampSource records the originating source on every broken branch that
// does not name one yet, so resolution errors can point at the file.
func stampSource(node Node, sourceID string) {
	switch n := node.(type) {
	case *Broken:
		if n.Source == "" {
			n.Source = sourceID
		}
	case *Nesting:
		for _, child := range n.children {
			stampSource(child, sourceID)
		}
	}
}
