package relation

import (
	"github.com/roach88/upcast/internal/kind"
)

// factGraph maps a kind to the kinds it directly widens to.
type factGraph map[kind.Kind][]kind.Kind

// buildFactGraph keeps only well-formed, non-reflexive, first-seen facts so
// that cycle and ambiguity analysis see each edge once.
func buildFactGraph(facts []Fact) factGraph {
	graph := make(factGraph)
	seen := make(map[Fact]bool)
	for _, f := range facts {
		if !f.From.Valid() || !f.To.Valid() || f.Reflexive() || seen[f.pair()] {
			continue
		}
		seen[f.pair()] = true
		graph[f.From] = append(graph[f.From], f.To)
	}
	return graph
}

// findCycles returns one cycle path per strongly connected component of size
// greater than one. Self loops cannot occur since reflexive facts are
// excluded from the graph. Output order follows kind.All().
func findCycles(graph factGraph) [][]kind.Kind {
	var cycles [][]kind.Kind
	for _, scc := range tarjanSCC(graph) {
		if len(scc) > 1 {
			cycles = append(cycles, reconstructCyclePath(scc, graph))
		}
	}
	return cycles
}

// tarjanSCC finds strongly connected components using Tarjan's algorithm.
func tarjanSCC(graph factGraph) [][]kind.Kind {
	var (
		index   = 0
		stack   []kind.Kind
		indices = make(map[kind.Kind]int)
		lowlink = make(map[kind.Kind]int)
		onStack = make(map[kind.Kind]bool)
		sccs    [][]kind.Kind
	)

	var strongConnect func(kind.Kind)
	strongConnect = func(v kind.Kind) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range graph[v] {
			if _, visited := indices[w]; !visited {
				strongConnect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], indices[w])
			}
		}

		// Root node: pop the component
		if lowlink[v] == indices[v] {
			var scc []kind.Kind
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for _, node := range kind.All() {
		if _, visited := indices[node]; !visited {
			strongConnect(node)
		}
	}

	return sccs
}

// reconstructCyclePath walks edges inside an SCC from its first member until
// it returns to the start.
func reconstructCyclePath(scc []kind.Kind, graph factGraph) []kind.Kind {
	if len(scc) == 0 {
		return nil
	}

	members := make(map[kind.Kind]bool, len(scc))
	for _, k := range scc {
		members[k] = true
	}

	start := scc[0]
	current := start
	path := []kind.Kind{current}
	visited := make(map[kind.Kind]bool)

	for {
		visited[current] = true

		next := kind.Invalid
		for _, neighbor := range graph[current] {
			if members[neighbor] && (!visited[neighbor] || neighbor == start) {
				next = neighbor
				break
			}
		}
		if next == kind.Invalid {
			break
		}

		path = append(path, next)
		if next == start {
			break
		}
		current = next
	}

	return path
}
