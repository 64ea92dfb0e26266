package compat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/protsim/core"
)

// ErrInvalidRule is the sentinel wrapped by every *ConfigError.
var ErrInvalidRule = errors.New("compat: invalid configuration")

// ConfigError reports one problem in a compatibility rule or in the run
// configuration around it.
type ConfigError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("compat: invalid %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidRule) match.
func (e *ConfigError) Unwrap() error { return ErrInvalidRule }

// Alignment is a bit set of admissible endpoint alignments for an edge pair.
type Alignment uint8

const (
	// None marks an incompatible edge pair.
	None Alignment = 0
	// Parallel aligns A.From with B.From and A.To with B.To.
	Parallel Alignment = 1 << 0
	// Crossed aligns A.From with B.To and A.To with B.From.
	Crossed Alignment = 1 << 1
	// Both admits either alignment.
	Both = Parallel | Crossed
)

// Compatible reports whether at least one alignment is admissible.
func (a Alignment) Compatible() bool { return a&Both != 0 }

// Has reports whether every bit of o is set in a.
func (a Alignment) Has(o Alignment) bool { return o != None && a&o == o }

// Singles returns the individual alignments contained in a, Parallel first.
func (a Alignment) Singles() []Alignment {
	out := make([]Alignment, 0, 2)
	if a&Parallel != 0 {
		out = append(out, Parallel)
	}
	if a&Crossed != 0 {
		out = append(out, Crossed)
	}

	return out
}

// String implements fmt.Stringer.
func (a Alignment) String() string {
	switch a & Both {
	case None:
		return "none"
	case Parallel:
		return "parallel"
	case Crossed:
		return "crossed"
	default:
		return "parallel|crossed"
	}
}

// VertexPair is one implied correspondence between a vertex index of A and
// a vertex index of B.
type VertexPair struct {
	A, B int
}

// Implied returns the two vertex correspondences produced by aligning ea with
// eb under the single alignment a. a must be Parallel or Crossed.
func Implied(a Alignment, ea, eb *core.Edge) [2]VertexPair {
	if a == Crossed {
		return [2]VertexPair{{A: ea.From, B: eb.To}, {A: ea.To, B: eb.From}}
	}

	return [2]VertexPair{{A: ea.From, B: eb.From}, {A: ea.To, B: eb.To}}
}

// Pair is the input of a Predicate: one edge of each graph plus the graphs
// themselves, so vertex attributes of the endpoints can be consulted.
type Pair struct {
	A, B         *core.Graph
	EdgeA, EdgeB *core.Edge
}

// Predicate decides the admissible alignments of an edge pair. It must be
// pure: the same Pair always yields the same Alignment.
type Predicate func(p Pair) Alignment

// Any returns a Predicate that accepts every edge pair under both alignments.
func Any() Predicate {
	return func(Pair) Alignment { return Both }
}

// Never returns a Predicate that rejects every edge pair.
func Never() Predicate {
	return func(Pair) Alignment { return None }
}

// EdgeAttrEqual returns a Predicate that admits both alignments when the
// listed edge attributes are equal on both edges.
func EdgeAttrEqual(keys ...string) Predicate {
	ks := append([]string(nil), keys...)
	return func(p Pair) Alignment {
		if !attrsEqual(p.EdgeA.Attrs, p.EdgeB.Attrs, ks) {
			return None
		}
		return Both
	}
}

// attrsEqual compares the listed keys; a missing key reads as "".
func attrsEqual(a, b map[string]string, keys []string) bool {
	for _, k := range keys {
		if a[k] != b[k] {
			return false
		}
	}

	return true
}

// describe renders a key list for diagnostics.
func describe(keys []string) string {
	return "[" + strings.Join(keys, ",") + "]"
}
