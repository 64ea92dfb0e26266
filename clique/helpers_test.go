package clique_test

import (
	"math/rand"
	"slices"
)

// adjList is a minimal clique.Graph backed by neighbor slices.
type adjList [][]int

func (a adjList) Order() int            { return len(a) }
func (a adjList) Neighbors(v int) []int { return a[v] }

// fromEdges builds an n-vertex adjList from undirected edges.
func fromEdges(n int, edges [][2]int) adjList {
	a := make(adjList, n)
	for _, e := range edges {
		a[e[0]] = append(a[e[0]], e[1])
		a[e[1]] = append(a[e[1]], e[0])
	}
	for v := range a {
		slices.Sort(a[v])
	}

	return a
}

// randomGraph returns a G(n, p) graph from a fixed seed.
func randomGraph(n int, p float64, seed int64) adjList {
	rng := rand.New(rand.NewSource(seed))
	var edges [][2]int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				edges = append(edges, [2]int{u, v})
			}
		}
	}

	return fromEdges(n, edges)
}
