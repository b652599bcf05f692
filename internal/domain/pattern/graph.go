package pattern

import (
	"sort"

	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/errors"
)

// DependencyGraph orders patterns that declare prerequisites on one another.
// No pattern in the shipped catalog declares an edge today; the graph is kept
// as a reusable primitive for catalogs that do.
type DependencyGraph struct {
	nodes     map[string]struct{}
	adjacency map[string][]string
	inDegree  map[string]int
}

// NewDependencyGraph returns an empty graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		nodes:     make(map[string]struct{}),
		adjacency: make(map[string][]string),
		inDegree:  make(map[string]int),
	}
}

// AddNode registers a node with no edges.
func (g *DependencyGraph) AddNode(id string) {
	if _, exists := g.nodes[id]; exists {
		return
	}
	g.nodes[id] = struct{}{}
}

// AddEdge declares that from must be processed before to.
func (g *DependencyGraph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	g.adjacency[from] = append(g.adjacency[from], to)
	g.inDegree[to]++
}

// TopologicalSort orders the nodes with Kahn's algorithm. The frontier is
// drained in lexicographic order so the result is deterministic. When a cycle
// prevents a full ordering, the error carries the unprocessed remainder as the
// cycle witness.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	inDegree := make(map[string]int, len(g.nodes))
	for id := range g.nodes {
		inDegree[id] = g.inDegree[id]
	}

	var frontier []string
	for id, degree := range inDegree {
		if degree == 0 {
			frontier = append(frontier, id)
		}
	}
	sort.Strings(frontier)

	ordered := make([]string, 0, len(g.nodes))
	for len(frontier) > 0 {
		id := frontier[0]
		frontier = frontier[1:]
		ordered = append(ordered, id)

		var released []string
		for _, next := range g.adjacency[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				released = append(released, next)
			}
		}
		sort.Strings(released)
		frontier = append(frontier, released...)
	}

	if len(ordered) < len(g.nodes) {
		processed := make(map[string]struct{}, len(ordered))
		for _, id := range ordered {
			processed[id] = struct{}{}
		}
		var remaining []string
		for id := range g.nodes {
			if _, ok := processed[id]; !ok {
				remaining = append(remaining, id)
			}
		}
		sort.Strings(remaining)
		return nil, errors.NewDependencyCycleError(remaining)
	}

	return ordered, nil
}
