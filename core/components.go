package core

import "sort"

// Components partitions the vertices of g into connected components using
// breadth-first search. Each component lists vertex indices ascending; the
// components are ordered by their smallest member.
//
// Complexity: O(V + E + V log V).
func Components(g *Graph) [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.vertices)
	visited := make([]bool, n)
	var comps [][]int

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		// BFS from start; the queue doubles as the member list.
		visited[start] = true
		queue := []int{start}
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for v := range g.adjacency[u] {
				if visited[v] {
					continue
				}
				visited[v] = true
				queue = append(queue, v)
			}
		}

		sort.Ints(queue)
		comps = append(comps, queue)
	}

	return comps
}
