package roads2wrpp

import (
	"github.com/pkg/errors"
)

// SelectLargest picks the component of maximum cardinality. Ties are broken
// by the lowest minimum vertex id in the component: unlike picking whichever
// component happened to close first, this stays deterministic under vertex
// relabeling.
func SelectLargest(components [][]NodeID) []NodeID {
	var best []NodeID
	bestMin := NodeID(0)
	for _, component := range components {
		if len(component) < len(best) {
			continue
		}
		componentMin := minNodeID(component)
		if len(component) > len(best) || componentMin < bestMin {
			best = component
			bestMin = componentMin
		}
	}
	return best
}

func minNodeID(ids []NodeID) NodeID {
	if len(ids) == 0 {
		return 0
	}
	min := ids[0]
	for _, id := range ids[1:] {
		if id < min {
			min = id
		}
	}
	return min
}

// FilterToComponent returns the induced subgraph: edges with both endpoints
// inside the keep set, plus the vertices those edges reference. Vertex ids are
// preserved; renumbering is a separate step. Returns ErrEmptyComponent when
// not a single edge survives.
func FilterToComponent(graph *Graph, keep []NodeID) (*Graph, error) {
	keepSet := make(map[NodeID]struct{}, len(keep))
	for _, id := range keep {
		keepSet[id] = struct{}{}
	}
	filtered := newGraph()
	used := make(map[NodeID]struct{})
	for _, edge := range graph.Edges() {
		if _, ok := keepSet[edge.Source]; !ok {
			continue
		}
		if _, ok := keepSet[edge.Target]; !ok {
			continue
		}
		filtered.addEdge(edge)
		used[edge.Source] = struct{}{}
		used[edge.Target] = struct{}{}
	}
	if len(used) == 0 {
		return nil, errors.Wrapf(ErrEmptyComponent, "%d vertices kept out of %d, %d edges inspected", len(keep), graph.NumVertices(), graph.NumEdges())
	}
	for id := range used {
		if node, ok := graph.Node(id); ok {
			filtered.addNode(node)
		}
	}
	return filtered, nil
}

// Renumber maps vertex ids of the graph onto the contiguous range [1, M] in
// ascending original id order (first-appearance order by construction) and
// remaps every edge endpoint through the old->new table. A fresh registry
// reflecting only the renumbered ids is returned; the registry the graph was
// built with is left untouched so other consumers still see original ids.
func Renumber(graph *Graph) (*Graph, *CoordinateRegistry) {
	renumbered := newGraph()
	registry := NewCoordinateRegistry()
	mapping := make(map[NodeID]NodeID, graph.NumVertices())
	for _, node := range graph.Nodes() {
		newID := registry.GetOrAssignID(node.Geom)
		mapping[node.ID] = newID
		renumbered.addNode(Node{ID: newID, Geom: node.Geom})
	}
	for _, edge := range graph.Edges() {
		edge.Source = mapping[edge.Source]
		edge.Target = mapping[edge.Target]
		if !edge.Directed && edge.Source > edge.Target {
			edge.Source, edge.Target = edge.Target, edge.Source
		}
		renumbered.addEdge(edge)
	}
	return renumbered, registry
}
