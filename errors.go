package roads2wrpp

import (
	"github.com/pkg/errors"
)

var (
	// ErrEmptyGraph is returned when no vertex is referenced by at least one edge after a build
	ErrEmptyGraph = errors.New("Graph has no used vertices")
	// ErrEmptyComponent is returned when an induced subgraph contains no connected vertices
	ErrEmptyComponent = errors.New("Component has no connected vertices")
	// ErrNoCoordinates is returned when depot enforcement can't find a single coordinate in the input
	ErrNoCoordinates = errors.New("No coordinates found in road features")
)
