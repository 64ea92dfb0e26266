// Package builder generates synthetic protein topology graphs for tests,
// benchmarks and experiments.
//
// A graph is assembled by BuildGraph from one or more Constructors applied
// in order. Each constructor adds its own vertices, so composing Cycle(4)
// and Path(3) yields a graph with two components. Vertex IDs come from an
// ID offset plus a running counter, and attributes come from labelers:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithName("toy")},
//		[]builder.Option{builder.WithSeed(7), builder.WithSSELabels("H", "E")},
//		builder.Cycle(6),
//	)
//
// Determinism:
//
//   - Same options, same seed and same constructor order produce identical
//     graphs, including attributes.
//   - Vertices are added in ascending ID order, edges in a fixed scan order.
//
// Errors:
//
//	ErrTooFewVertices     - size parameter below the constructor's minimum.
//	ErrInvalidProbability - probability outside [0,1].
//	ErrNeedRandSource     - a random choice was needed but no seed was set.
package builder
