package roads2wrpp

// Edge connects two vertices of the graph.
// Weight is great-circle distance between endpoint coordinates in meters,
// rounded to 2 decimal places. Zero-weight edges are dropped at construction
// time and never appear in the model.
type Edge struct {
	Source        NodeID
	Target        NodeID
	WeightMeters  float64
	Directed      bool
	Covered       bool
	RouteRequired bool
	RoadName      string
	Kind          HighwayKind
}

// Cost returns edge traversal cost in integer centimeters
func (edge Edge) Cost() int64 {
	return weightToCost(edge.WeightMeters)
}
