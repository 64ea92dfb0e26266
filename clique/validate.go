package clique

// IsClique reports whether c is a set of distinct, valid, pairwise adjacent
// vertices of g.
func IsClique(g Graph, c []int) bool {
	adj := adjacency(g)
	seen := make(map[int]struct{}, len(c))
	for i, u := range c {
		if u < 0 || u >= len(adj) {
			return false
		}
		if _, dup := seen[u]; dup {
			return false
		}
		seen[u] = struct{}{}
		for _, v := range c[i+1:] {
			if v < 0 || !adj[u].Test(uint(v)) {
				return false
			}
		}
	}

	return true
}

// IsMaximal reports whether c is a clique of g that no vertex of g extends.
func IsMaximal(g Graph, c []int) bool {
	if !IsClique(g, c) {
		return false
	}
	adj := adjacency(g)
	member := make(map[int]struct{}, len(c))
	for _, u := range c {
		member[u] = struct{}{}
	}

	var extends bool
	for w := range adj {
		if _, in := member[w]; in {
			continue
		}
		extends = true
		for _, u := range c {
			if !adj[w].Test(uint(u)) {
				extends = false
				break
			}
		}
		if extends {
			return false
		}
	}

	return true
}
