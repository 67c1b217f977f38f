package roads2wrpp

import (
	"sort"
)

// Graph is a weighted road graph prepared for an arc-routing solver.
// Every edge endpoint refers to a node present in the node set; nodes never
// referenced by any edge are excluded during construction.
type Graph struct {
	nodes map[NodeID]Node
	edges []Edge
}

func newGraph() *Graph {
	return &Graph{
		nodes: make(map[NodeID]Node),
	}
}

// NumVertices returns number of vertices (N in solver terms)
func (graph *Graph) NumVertices() int {
	return len(graph.nodes)
}

// NumEdges returns number of edges (M in solver terms)
func (graph *Graph) NumEdges() int {
	return len(graph.edges)
}

// Node returns vertex for given id
func (graph *Graph) Node(id NodeID) (Node, bool) {
	found, ok := graph.nodes[id]
	return found, ok
}

// NodeIDs returns vertex identifiers in ascending order
func (graph *Graph) NodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(graph.nodes))
	for id := range graph.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Nodes returns vertices in ascending id order
func (graph *Graph) Nodes() []Node {
	ids := graph.NodeIDs()
	nodes := make([]Node, len(ids))
	for i, id := range ids {
		nodes[i] = graph.nodes[id]
	}
	return nodes
}

// Edges returns edges in construction order. Callers must not mutate the returned slice.
func (graph *Graph) Edges() []Edge {
	return graph.edges
}

func (graph *Graph) addNode(node Node) {
	graph.nodes[node.ID] = node
}

func (graph *Graph) addEdge(edge Edge) {
	graph.edges = append(graph.edges, edge)
}

// swapNodeIDs exchanges two vertex identifiers in the node set and in every
// edge endpoint. Undirected edges are re-canonicalized (source <= target)
// since a swap can break their ordering.
func (graph *Graph) swapNodeIDs(a, b NodeID) {
	nodeA, okA := graph.nodes[a]
	nodeB, okB := graph.nodes[b]
	delete(graph.nodes, a)
	delete(graph.nodes, b)
	if okA {
		nodeA.ID = b
		graph.nodes[b] = nodeA
	}
	if okB {
		nodeB.ID = a
		graph.nodes[a] = nodeB
	}
	for i := range graph.edges {
		edge := &graph.edges[i]
		switch edge.Source {
		case a:
			edge.Source = b
		case b:
			edge.Source = a
		}
		switch edge.Target {
		case a:
			edge.Target = b
		case b:
			edge.Target = a
		}
		if !edge.Directed && edge.Source > edge.Target {
			edge.Source, edge.Target = edge.Target, edge.Source
		}
	}
}
