package result

import (
	"fmt"
	"strings"
)

// PolicyKind names a selection policy.
type PolicyKind int

const (
	// All keeps every clique.
	All PolicyKind = iota
	// Largest keeps the cliques of maximum size, ties included.
	Largest
	// MinSize keeps cliques with at least Policy.MinSize vertices.
	MinSize
)

// String returns the policy keyword as accepted by ParsePolicy.
func (k PolicyKind) String() string {
	switch k {
	case All:
		return "all"
	case Largest:
		return "largest"
	case MinSize:
		return "min_size"
	default:
		return fmt.Sprintf("PolicyKind(%d)", int(k))
	}
}

// Policy selects which cliques are reported.
type Policy struct {
	Kind PolicyKind

	// MinSize is the threshold for the MinSize kind; n ≤ 0 keeps everything.
	MinSize int
}

// PolicyAll keeps every clique.
func PolicyAll() Policy { return Policy{Kind: All} }

// PolicyLargest keeps only maximum-size cliques.
func PolicyLargest() Policy { return Policy{Kind: Largest} }

// PolicyMinSize keeps cliques with at least n vertices.
func PolicyMinSize(n int) Policy { return Policy{Kind: MinSize, MinSize: n} }

// String renders p for logs, e.g. "min_size(4)".
func (p Policy) String() string {
	if p.Kind == MinSize {
		return fmt.Sprintf("min_size(%d)", p.MinSize)
	}

	return p.Kind.String()
}

// ParsePolicy maps a selector keyword to a Policy. n is used only by the
// min-size selector. Keywords are case-insensitive; "" means all.
//
// Unknown keywords fall back to PolicyAll with ok=false so the caller can
// report the fallback.
func ParsePolicy(name string, n int) (p Policy, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "all", "a":
		return PolicyAll(), true
	case "largest", "l":
		return PolicyLargest(), true
	case "min_size", "min-size", "minsize", "s":
		return PolicyMinSize(n), true
	default:
		return PolicyAll(), false
	}
}
