package clique

import (
	"errors"
	"slices"
)

// ErrGraphNil is returned when Enumerate receives a nil graph.
var ErrGraphNil = errors.New("clique: graph is nil")

// Graph is the read-only view Enumerate needs. Vertices are 0..Order()-1 and
// Neighbors(v) lists the vertices adjacent to v, excluding v itself.
type Graph interface {
	Order() int
	Neighbors(v int) []int
}

// Clique is a set of vertex indices in ascending order.
type Clique []int

// Size returns the number of vertices in c.
func (c Clique) Size() int { return len(c) }

// Equal reports whether c and o hold the same vertices.
func (c Clique) Equal(o Clique) bool { return slices.Equal(c, o) }

// StopReason says why an enumeration ended before exhausting the search.
type StopReason int

const (
	// ReasonNone marks a complete enumeration.
	ReasonNone StopReason = iota
	// ReasonCancelled marks a cancelled or timed-out context.
	ReasonCancelled
	// ReasonBudget marks an exhausted WithMaxCliques budget.
	ReasonBudget
)

// String returns a short lower-case name, used in logs and reports.
func (r StopReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonCancelled:
		return "cancelled"
	case ReasonBudget:
		return "budget"
	default:
		return "unknown"
	}
}

// Result is the outcome of Enumerate.
type Result struct {
	// Cliques holds the maximal cliques in discovery order.
	Cliques []Clique

	// Partial is true when the search stopped early.
	Partial bool

	// Reason is ReasonNone unless Partial is set.
	Reason StopReason

	// Calls counts recursive expansions, a rough measure of work done.
	Calls int
}

// Largest returns the size of the biggest clique in r, 0 when r is empty.
func (r *Result) Largest() int {
	best := 0
	for _, c := range r.Cliques {
		if len(c) > best {
			best = len(c)
		}
	}

	return best
}

// Option configures Enumerate.
type Option func(*Options)

// Options holds the enumeration parameters.
type Options struct {
	// MinSize is the smallest clique size reported; values ≤ 1 report all.
	MinSize int

	// MaxCliques stops the search after this many cliques; 0 means unlimited.
	MaxCliques int

	// Workers is the number of goroutines used for top-level branches.
	Workers int
}

// DefaultOptions returns sequential, unlimited enumeration of all sizes.
func DefaultOptions() Options {
	return Options{
		MinSize:    0,
		MaxCliques: 0,
		Workers:    1,
	}
}

// WithMinSize reports only cliques with at least n vertices.
func WithMinSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MinSize = n
	}
}

// WithMaxCliques caps the number of reported cliques; n ≤ 0 means unlimited.
func WithMaxCliques(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxCliques = n
	}
}

// WithWorkers sets the number of goroutines; n < 1 is treated as 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}
