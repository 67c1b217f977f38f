package roads2wrpp

import (
	"github.com/paulmach/orb"
)

// Node is a graph vertex: dense positive id plus its coordinate on Earth
type Node struct {
	ID   NodeID
	Geom orb.Point
}
