package translation

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// FindPath walks node with the given key segments and returns the
// translation leaf the path ends on. Failures are precise: an unknown
// segment reports the path consumed so far, the failing segment, and the
// closest sibling key; a path that keeps going after a leaf, or stops on a
// nesting, each get their own error; and walking into a broken branch
// surfaces the stored construction error instead of pretending the branch is
// absent.
func FindPath(node Node, segments ...string) (*Translation, error) {
	consumed := make([]string, 0, len(segments))

	for _, segment := range segments {
		switch n := node.(type) {
		case *Nesting:
			child, ok := n.children[segment]
			if !ok {
				return nil, &NotFoundError{
					Consumed:   consumed,
					Segment:    segment,
					Suggestion: closestKey(n, segment),
				}
			}
			node = child
			consumed = append(consumed, segment)

		case *Leaf:
			return nil, &PastLeafError{Consumed: consumed, Segment: segment}

		case *Broken:
			return nil, &BrokenBranchError{Consumed: consumed, Source: n.Source, Err: n.Err}
		}
	}

	switch n := node.(type) {
	case *Leaf:
		return n.Translation(), nil
	case *Broken:
		return nil, &BrokenBranchError{Consumed: consumed, Source: n.Source, Err: n.Err}
	default:
		return nil, &NamespaceError{Consumed: consumed}
	}
}

// closestKey returns the child key with the minimum edit distance to the
// attempted segment. Keys() is sorted, so ties resolve to the
// lexicographically first key and suggestions stay deterministic.
func closestKey(n *Nesting, segment string) string {
	best := ""
	bestDist := -1
	for _, k := range n.Keys() {
		d := levenshtein.ComputeDistance(strings.ToLower(segment), strings.ToLower(k))
		if bestDist < 0 || d < bestDist {
			best = k
			bestDist = d
		}
	}
	return best
}
