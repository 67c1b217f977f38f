package roads2wrpp

// StronglyConnectedComponents returns disjoint sets of vertex ids covering
// every vertex of the graph exactly once.
//
// Tarjan's single-pass algorithm with an explicit work stack: DFS depth may
// equal vertex count on degenerate road chains, so recursion is off the table.
// Adjacency is built once; undirected edges contribute both directions,
// directed edges only the forward one. A component is closed when a vertex's
// low-link equals its own index; components are returned in closure order,
// which is deterministic for a fixed input but carries no further meaning.
// Vertices unreachable from any cycle come back as singletons.
func StronglyConnectedComponents(graph *Graph) [][]NodeID {
	adjacency := make(map[NodeID][]NodeID, graph.NumVertices())
	for _, edge := range graph.Edges() {
		adjacency[edge.Source] = append(adjacency[edge.Source], edge.Target)
		if !edge.Directed {
			adjacency[edge.Target] = append(adjacency[edge.Target], edge.Source)
		}
	}

	index := make(map[NodeID]int, graph.NumVertices())
	lowlink := make(map[NodeID]int, graph.NumVertices())
	onStack := make(map[NodeID]bool, graph.NumVertices())
	tarjanStack := make([]NodeID, 0, graph.NumVertices())
	components := [][]NodeID{}
	counter := 0

	type frame struct {
		vertex NodeID
		next   int
	}

	for _, root := range graph.NodeIDs() {
		if _, visited := index[root]; visited {
			continue
		}
		work := []frame{{vertex: root}}
		for len(work) > 0 {
			current := &work[len(work)-1]
			vertex := current.vertex
			if current.next == 0 {
				index[vertex] = counter
				lowlink[vertex] = counter
				counter++
				tarjanStack = append(tarjanStack, vertex)
				onStack[vertex] = true
			}
			descended := false
			neighbors := adjacency[vertex]
			for current.next < len(neighbors) {
				neighbor := neighbors[current.next]
				current.next++
				if _, visited := index[neighbor]; !visited {
					work = append(work, frame{vertex: neighbor})
					descended = true
					break
				}
				if onStack[neighbor] && index[neighbor] < lowlink[vertex] {
					lowlink[vertex] = index[neighbor]
				}
			}
			if descended {
				continue
			}
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := work[len(work)-1].vertex
				if lowlink[vertex] < lowlink[parent] {
					lowlink[parent] = lowlink[vertex]
				}
			}
			if lowlink[vertex] == index[vertex] {
				component := []NodeID{}
				for {
					popped := tarjanStack[len(tarjanStack)-1]
					tarjanStack = tarjanStack[:len(tarjanStack)-1]
					onStack[popped] = false
					component = append(component, popped)
					if popped == vertex {
						break
					}
				}
				components = append(components, component)
			}
		}
	}
	return components
}
