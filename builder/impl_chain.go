package builder

import (
	"fmt"

	"github.com/katalvlaran/protsim/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 1
	minCycleNodes = 3
)

// Path returns a Constructor for the chain v0 - v1 - ... - v(n-1), the
// sequential backbone of a protein chain.
func Path(n int) Constructor {
	return func(g *core.Graph, b *run) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		idx, err := b.addVertices(g, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = b.addEdge(g, methodPath, idx[i], idx[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring C_n; edge i joins vertex i to
// vertex (i+1) mod n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, b *run) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		idx, err := b.addVertices(g, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = b.addEdge(g, methodCycle, idx[i], idx[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
