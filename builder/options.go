package builder

import (
	"math/rand"
)

// Attribute keys written by the default labelers. They match the keys of
// compat.DefaultRule.
const (
	AttrSSEType = "sse_type"
	AttrSpatial = "spatial"
)

// VertexLabeler returns the attributes of the i-th vertex added by a
// constructor run. rng is nil unless a seed was configured.
type VertexLabeler func(i int, rng *rand.Rand) map[string]string

// EdgeLabeler returns the attributes of the i-th edge added by a
// constructor run.
type EdgeLabeler func(i int, rng *rand.Rand) map[string]string

// Option customizes a BuildGraph run.
type Option func(*config)

// config is resolved once per BuildGraph call and shared by every
// constructor. next is the ID handed to the next vertex.
type config struct {
	next        int
	rng         *rand.Rand
	vertexLabel VertexLabeler
	edgeLabel   EdgeLabeler
}

func newConfig(opts ...Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithIDOffset makes vertex IDs start at first instead of 0.
func WithIDOffset(first int) Option {
	return func(c *config) { c.next = first }
}

// WithSeed freezes every random choice behind a seeded source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r for random choices. It panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithVertexLabels sets the vertex labeler. It panics on nil.
func WithVertexLabels(fn VertexLabeler) Option {
	if fn == nil {
		panic("builder: WithVertexLabels(nil)")
	}
	return func(c *config) { c.vertexLabel = fn }
}

// WithEdgeLabels sets the edge labeler. It panics on nil.
func WithEdgeLabels(fn EdgeLabeler) Option {
	if fn == nil {
		panic("builder: WithEdgeLabels(nil)")
	}
	return func(c *config) { c.edgeLabel = fn }
}

// WithSSELabels cycles sse_type through types in vertex order, e.g.
// H, E, H, E for ("H", "E").
func WithSSELabels(types ...string) Option {
	return WithVertexLabels(func(i int, _ *rand.Rand) map[string]string {
		if len(types) == 0 {
			return nil
		}
		return map[string]string{AttrSSEType: types[i%len(types)]}
	})
}

// WithRandomSSELabels draws sse_type uniformly from types. Without a seed
// vertices stay unlabelled.
func WithRandomSSELabels(types ...string) Option {
	return WithVertexLabels(func(_ int, rng *rand.Rand) map[string]string {
		if len(types) == 0 || rng == nil {
			return nil
		}
		return map[string]string{AttrSSEType: types[rng.Intn(len(types))]}
	})
}

// WithSpatialLabels cycles the spatial edge relation through labels in
// edge order.
func WithSpatialLabels(labels ...string) Option {
	return WithEdgeLabels(func(i int, _ *rand.Rand) map[string]string {
		if len(labels) == 0 {
			return nil
		}
		return map[string]string{AttrSpatial: labels[i%len(labels)]}
	})
}

// WithRandomSpatialLabels draws the spatial relation uniformly from labels.
// Without a seed edges stay unlabelled.
func WithRandomSpatialLabels(labels ...string) Option {
	return WithEdgeLabels(func(_ int, rng *rand.Rand) map[string]string {
		if len(labels) == 0 || rng == nil {
			return nil
		}
		return map[string]string{AttrSpatial: labels[rng.Intn(len(labels))]}
	})
}
