package roads2wrpp

import (
	"strings"

	"github.com/pkg/errors"
)

// GraphType is a global edge-modeling policy fixed for a whole build.
// It is not a per-edge property: it decides how many edges a road segment
// produces and whether they are directed.
type GraphType uint16

const (
	GRAPH_UNDIRECTED = GraphType(iota + 1)
	GRAPH_DIRECTED
	GRAPH_MIXED
	GRAPH_WINDY
)

func (iotaIdx GraphType) String() string {
	return [...]string{"undefined", "UNDIRECTED", "DIRECTED", "MIXED", "WINDY"}[iotaIdx]
}

// ProblemType is the arc-routing problem class announced to the solver
type ProblemType uint16

const (
	PROBLEM_CHINESE_POSTMAN = ProblemType(iota + 1)
	PROBLEM_WINDY_RURAL_POSTMAN
)

func (iotaIdx ProblemType) String() string {
	return [...]string{"undefined", "CHINESE_POSTMAN", "WINDY_RURAL_POSTMAN"}[iotaIdx]
}

// ProblemType returns problem class for given edge-modeling policy
func (iotaIdx GraphType) ProblemType() ProblemType {
	if iotaIdx == GRAPH_WINDY {
		return PROBLEM_WINDY_RURAL_POSTMAN
	}
	return PROBLEM_CHINESE_POSTMAN
}

var graphTypes = map[string]GraphType{
	"undirected": GRAPH_UNDIRECTED,
	"directed":   GRAPH_DIRECTED,
	"mixed":      GRAPH_MIXED,
	"windy":      GRAPH_WINDY,
}

// ParseGraphType returns graph type for given string (case insensitive)
func ParseGraphType(str string) (GraphType, error) {
	if found, ok := graphTypes[strings.ToLower(str)]; ok {
		return found, nil
	}
	return 0, errors.Errorf("Unknown graph type: '%s'. Expected one of: undirected / directed / mixed / windy", str)
}
