package result

import "github.com/katalvlaran/protsim/clique"

// Select returns the cliques admitted by p in their original relative order.
// The returned slice is fresh; the cliques themselves are shared.
func Select(cliques []clique.Clique, p Policy) []clique.Clique {
	out := make([]clique.Clique, 0, len(cliques))

	switch p.Kind {
	case Largest:
		best := 0
		for _, c := range cliques {
			if len(c) > best {
				best = len(c)
			}
		}
		for _, c := range cliques {
			if len(c) == best {
				out = append(out, c)
			}
		}
	case MinSize:
		for _, c := range cliques {
			if len(c) >= p.MinSize {
				out = append(out, c)
			}
		}
	default:
		out = append(out, cliques...)
	}

	return out
}
