package roads2wrpp

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// windyImpassableCost models "impassable in reverse" for a directed edge of a windy graph
const windyImpassableCost = int64(999999)

const (
	edgeColumnsPlain = "V1,V2,COST,isRequired"
	edgeColumnsMixed = "V1,V2,COST,isDirected,isRequired"
	edgeColumnsWindy = "V1,V2,COST,REVERSE_COST,isRequired"
)

// Serialize renders graph into the canonical solver text format. Pure
// function of its inputs: same graph, registry, policy, depot and rule always
// produce the same bytes.
//
// Layout, in order: header comment block (units and policy), metadata block,
// edge section (one line per edge in construction order, column order depends
// on policy), vertex section (one x,y line per vertex in ascending id order,
// x = longitude, y = latitude). Edge costs are integer centimeters:
// round(weight_meters * 100).
func Serialize(graph *Graph, registry *CoordinateRegistry, graphType GraphType, depotID NodeID, rule RequiredRule) (string, error) {
	var out strings.Builder

	fmt.Fprintf(&out, "%% Road network prepared for an arc-routing solver\n")
	fmt.Fprintf(&out, "%% Edge costs are great-circle lengths in integer centimeters: round(meters * 100)\n")
	fmt.Fprintf(&out, "%% Vertex lines are x,y = longitude,latitude in decimal degrees\n")
	fmt.Fprintf(&out, "%% Edge-modeling policy: %s\n", graphType)

	fmt.Fprintf(&out, "Graph Type: %s\n", graphType)
	fmt.Fprintf(&out, "Depot ID(s): %d\n", depotID)
	fmt.Fprintf(&out, "N: %d\n", graph.NumVertices())
	fmt.Fprintf(&out, "M: %d\n", graph.NumEdges())
	fmt.Fprintf(&out, "Problem Type: %s\n", graphType.ProblemType())
	fmt.Fprintf(&out, "Fleet Size: 1\n")
	fmt.Fprintf(&out, "Number of Depots: 1\n")

	switch graphType {
	case GRAPH_UNDIRECTED, GRAPH_DIRECTED:
		fmt.Fprintf(&out, "EDGES (%s)\n", edgeColumnsPlain)
		for _, edge := range graph.Edges() {
			fmt.Fprintf(&out, "%d,%d,%d,%t\n", edge.Source, edge.Target, edge.Cost(), rule(edge))
		}
	case GRAPH_MIXED:
		fmt.Fprintf(&out, "EDGES (%s)\n", edgeColumnsMixed)
		for _, edge := range graph.Edges() {
			fmt.Fprintf(&out, "%d,%d,%d,%t,%t\n", edge.Source, edge.Target, edge.Cost(), edge.Directed, rule(edge))
		}
	case GRAPH_WINDY:
		fmt.Fprintf(&out, "EDGES (%s)\n", edgeColumnsWindy)
		for _, edge := range graph.Edges() {
			reverseCost := edge.Cost()
			if edge.Directed {
				reverseCost = windyImpassableCost
			}
			fmt.Fprintf(&out, "%d,%d,%d,%d,%t\n", edge.Source, edge.Target, edge.Cost(), reverseCost, rule(edge))
		}
	default:
		return "", errors.Errorf("Unknown graph type: %d", graphType)
	}

	fmt.Fprintf(&out, "VERTICES (x,y)\n")
	for _, id := range graph.NodeIDs() {
		coord, ok := registry.Coord(id)
		if !ok {
			return "", errors.Errorf("Registry has no coordinate for vertex %d", id)
		}
		fmt.Fprintf(&out, "%.8f,%.8f\n", coord.Lon(), coord.Lat())
	}
	return out.String(), nil
}
