package builder

import (
	"fmt"

	"github.com/katalvlaran/protsim/core"
)

const (
	methodComplete     = "Complete"
	methodStar         = "Star"
	methodRandomSparse = "RandomSparse"
	minStarNodes       = 2
)

// Complete returns a Constructor for K_n, edges in lexicographic (i, j)
// order with i < j.
func Complete(n int) Constructor {
	return func(g *core.Graph, b *run) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodComplete, n, ErrTooFewVertices)
		}
		idx, err := b.addVertices(g, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = b.addEdge(g, methodComplete, idx[i], idx[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Star returns a Constructor with one hub (the first vertex) joined to n-1
// leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, b *run) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		idx, err := b.addVertices(g, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = b.addEdge(g, methodStar, idx[0], idx[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor for an Erdős–Rényi G(n,p) graph: every
// pair i < j is linked with probability p. p in (0,1) needs a seed; p = 0
// and p = 1 are deterministic.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, b *run) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		rng := b.cfg.rng
		if rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		idx, err := b.addVertices(g, methodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < 1 && (rng == nil || rng.Float64() >= p) {
					continue
				}
				if err = b.addEdge(g, methodRandomSparse, idx[i], idx[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
