package roads2wrpp

import (
	"math"

	"github.com/paulmach/orb"
)

// NodeID is an identifier of a graph vertex. IDs are minted densely starting from 1.
type NodeID int64

// coordPrecision - coordinates matching to 8 decimal places (~1.1mm) are considered the same point
const coordPrecision = 1e8

type coordKey struct {
	lon int64
	lat int64
}

func keyOfCoord(pt orb.Point) coordKey {
	return coordKey{
		lon: int64(math.Round(pt.Lon() * coordPrecision)),
		lat: int64(math.Round(pt.Lat() * coordPrecision)),
	}
}

// CoordinateRegistry deduplicates coordinates into stable integer node identifiers.
// It is the single owner of the id space: no other component may mint ids.
// A registry is built fresh for each export pipeline; reusing one across two
// builds of the same road feature set keeps ids stable, but such reuse is
// always explicit on the caller side.
type CoordinateRegistry struct {
	ids    map[coordKey]NodeID
	coords map[NodeID]orb.Point
	nextID NodeID
}

// NewCoordinateRegistry returns registry with an empty id space
func NewCoordinateRegistry() *CoordinateRegistry {
	return &CoordinateRegistry{
		ids:    make(map[coordKey]NodeID),
		coords: make(map[NodeID]orb.Point),
		nextID: 1,
	}
}

// GetOrAssignID returns existing id for coordinate matching within the dedup tolerance
// or mints the next unused id and records the bidirectional mapping
func (registry *CoordinateRegistry) GetOrAssignID(pt orb.Point) NodeID {
	key := keyOfCoord(pt)
	if found, ok := registry.ids[key]; ok {
		return found
	}
	id := registry.nextID
	registry.nextID++
	registry.ids[key] = id
	registry.coords[id] = pt
	return id
}

// ID returns id for given coordinate without minting a new one
func (registry *CoordinateRegistry) ID(pt orb.Point) (NodeID, bool) {
	found, ok := registry.ids[keyOfCoord(pt)]
	return found, ok
}

// Coord returns coordinate for given id
func (registry *CoordinateRegistry) Coord(id NodeID) (orb.Point, bool) {
	found, ok := registry.coords[id]
	return found, ok
}

// Len returns number of registered coordinates
func (registry *CoordinateRegistry) Len() int {
	return len(registry.ids)
}

// Clear resets both directions of the mapping atomically
func (registry *CoordinateRegistry) Clear() {
	registry.ids = make(map[coordKey]NodeID)
	registry.coords = make(map[NodeID]orb.Point)
	registry.nextID = 1
}

// swapIDs exchanges id assignments of two vertices in both directions of the mapping
func (registry *CoordinateRegistry) swapIDs(a, b NodeID) {
	coordA, okA := registry.coords[a]
	coordB, okB := registry.coords[b]
	delete(registry.coords, a)
	delete(registry.coords, b)
	if okA {
		registry.coords[b] = coordA
		registry.ids[keyOfCoord(coordA)] = b
	}
	if okB {
		registry.coords[a] = coordB
		registry.ids[keyOfCoord(coordB)] = a
	}
}
