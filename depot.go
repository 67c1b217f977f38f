package roads2wrpp

import (
	"github.com/pkg/errors"
)

// DepotID is the conventional depot vertex identifier in the export format
const DepotID = NodeID(1)

// EnsureDepot guarantees the depot vertex occupies id 1.
//
// The depot is the node of the canonical first coordinate: first point of the
// first road feature in construction order. Whenever the registry happened to
// assign that coordinate some other id k (registry reuse, component
// renumbering), ids 1 and k are swapped everywhere: in both registry
// directions, in every node id and in every edge endpoint. Both graph and
// registry are mutated in place.
//
// Returns ErrNoCoordinates when no feature carries a coordinate or when the
// canonical first coordinate is absent from the registry (e.g. its node did
// not survive component filtering - the caller picked a component excluding
// its own depot and must select a depot explicitly).
func EnsureDepot(graph *Graph, registry *CoordinateRegistry, features []RoadFeature) error {
	first, ok := firstCoordinate(features)
	if !ok {
		return errors.Wrapf(ErrNoCoordinates, "%d road features inspected", len(features))
	}
	current, ok := registry.ID(first)
	if !ok {
		return errors.Wrapf(ErrNoCoordinates, "Depot coordinate [%f, %f] is not registered", first.Lon(), first.Lat())
	}
	if current == DepotID {
		return nil
	}
	registry.swapIDs(DepotID, current)
	graph.swapNodeIDs(DepotID, current)
	return nil
}
