package roads2wrpp

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoWayRoad(pts ...orb.Point) RoadFeature {
	return RoadFeature{
		Geometry:      orb.LineString(pts),
		Name:          "Test street",
		Kind:          KIND_STREET,
		RouteRequired: true,
	}
}

func oneWayRoad(pts ...orb.Point) RoadFeature {
	feature := twoWayRoad(pts...)
	feature.Oneway = true
	return feature
}

func TestBuildUndirectedCanonical(t *testing.T) {
	features := []RoadFeature{
		twoWayRoad(orb.Point{0.0, 0.0}, orb.Point{0.0, 0.001}, orb.Point{0.001, 0.001}),
		// Retraces the second segment in the opposite direction
		twoWayRoad(orb.Point{0.001, 0.001}, orb.Point{0.0, 0.001}),
	}
	builder := NewGraphBuilder(NewCoordinateRegistry())
	graph, _, err := builder.Build(features, GRAPH_UNDIRECTED)
	require.NoError(t, err)

	require.Equal(t, 2, graph.NumEdges())
	seen := make(map[[2]NodeID]int)
	for _, edge := range graph.Edges() {
		assert.False(t, edge.Directed)
		assert.LessOrEqual(t, edge.Source, edge.Target)
		seen[[2]NodeID{edge.Source, edge.Target}]++
	}
	for pair, count := range seen {
		assert.Equal(t, 1, count, "unordered pair %v must appear once", pair)
	}
}

func TestBuildDirected(t *testing.T) {
	builder := NewGraphBuilder(NewCoordinateRegistry())
	graph, _, err := builder.Build([]RoadFeature{
		twoWayRoad(orb.Point{0.0, 0.0}, orb.Point{0.0, 0.001}),
	}, GRAPH_DIRECTED)
	require.NoError(t, err)
	require.Equal(t, 2, graph.NumEdges())
	forward, backward := graph.Edges()[0], graph.Edges()[1]
	assert.True(t, forward.Directed)
	assert.True(t, backward.Directed)
	assert.Equal(t, forward.Source, backward.Target)
	assert.Equal(t, forward.Target, backward.Source)

	builder = NewGraphBuilder(NewCoordinateRegistry())
	graph, _, err = builder.Build([]RoadFeature{
		oneWayRoad(orb.Point{0.0, 0.0}, orb.Point{0.0, 0.001}),
	}, GRAPH_DIRECTED)
	require.NoError(t, err)
	require.Equal(t, 1, graph.NumEdges())
	assert.True(t, graph.Edges()[0].Directed)
}

func TestBuildRoundaboutIsOneway(t *testing.T) {
	feature := twoWayRoad(orb.Point{0.0, 0.0}, orb.Point{0.0, 0.001})
	feature.Roundabout = true
	builder := NewGraphBuilder(NewCoordinateRegistry())
	graph, _, err := builder.Build([]RoadFeature{feature}, GRAPH_DIRECTED)
	require.NoError(t, err)
	assert.Equal(t, 1, graph.NumEdges())
}

func TestBuildMixedAndWindy(t *testing.T) {
	for _, graphType := range []GraphType{GRAPH_MIXED, GRAPH_WINDY} {
		builder := NewGraphBuilder(NewCoordinateRegistry())
		graph, _, err := builder.Build([]RoadFeature{
			oneWayRoad(orb.Point{0.0, 0.0}, orb.Point{0.0, 0.001}),
			twoWayRoad(orb.Point{0.0, 0.001}, orb.Point{0.001, 0.001}),
		}, graphType)
		require.NoError(t, err)
		require.Equal(t, 2, graph.NumEdges(), graphType.String())
		assert.True(t, graph.Edges()[0].Directed)
		assert.False(t, graph.Edges()[1].Directed)
		assert.LessOrEqual(t, graph.Edges()[1].Source, graph.Edges()[1].Target)
	}
}

func TestBuildSkipsZeroLengthSegments(t *testing.T) {
	pt := orb.Point{0.0, 0.0}
	builder := NewGraphBuilder(NewCoordinateRegistry())
	graph, report, err := builder.Build([]RoadFeature{
		twoWayRoad(pt, pt, orb.Point{0.0, 0.001}),
	}, GRAPH_UNDIRECTED)
	require.NoError(t, err)
	assert.Equal(t, 1, graph.NumEdges())
	assert.Equal(t, 1, report.SkippedZeroLength)
	for _, edge := range graph.Edges() {
		assert.NotZero(t, edge.WeightMeters)
	}
}

func TestBuildEmptyGraphError(t *testing.T) {
	builder := NewGraphBuilder(NewCoordinateRegistry())
	_, _, err := builder.Build(nil, GRAPH_UNDIRECTED)
	assert.True(t, errors.Is(err, ErrEmptyGraph))

	// All segments degenerate
	pt := orb.Point{1.0, 1.0}
	builder = NewGraphBuilder(NewCoordinateRegistry())
	_, _, err = builder.Build([]RoadFeature{twoWayRoad(pt, pt, pt)}, GRAPH_WINDY)
	assert.True(t, errors.Is(err, ErrEmptyGraph))
}

func TestBuildExcludesIsolatedNodes(t *testing.T) {
	registry := NewCoordinateRegistry()
	builder := NewGraphBuilder(registry)
	graph, _, err := builder.Build([]RoadFeature{
		twoWayRoad(orb.Point{0.0, 0.0}, orb.Point{0.0, 0.001}),
		// Single-point feature produces no segment at all
		twoWayRoad(orb.Point{5.0, 5.0}),
	}, GRAPH_UNDIRECTED)
	require.NoError(t, err)
	assert.Equal(t, 2, graph.NumVertices())
	// The isolated coordinate still owns an id, it is just not a graph vertex
	assert.Equal(t, 3, registry.Len())
	_, ok := graph.Node(NodeID(3))
	assert.False(t, ok)
}

func TestBuildCarriesAttributes(t *testing.T) {
	feature := RoadFeature{
		Geometry:      orb.LineString{{0.0, 0.0}, {0.0, 0.001}},
		Name:          "Main Street",
		Kind:          KIND_HIGHWAY,
		Covered:       true,
		RouteRequired: true,
	}
	builder := NewGraphBuilder(NewCoordinateRegistry())
	graph, _, err := builder.Build([]RoadFeature{feature}, GRAPH_WINDY)
	require.NoError(t, err)
	edge := graph.Edges()[0]
	assert.Equal(t, "Main Street", edge.RoadName)
	assert.Equal(t, KIND_HIGHWAY, edge.Kind)
	assert.True(t, edge.Covered)
	assert.True(t, edge.RouteRequired)
	assert.Equal(t, 111.19, edge.WeightMeters)
}

func TestBuildIdempotence(t *testing.T) {
	features := []RoadFeature{
		oneWayRoad(orb.Point{0.0, 0.0}, orb.Point{0.0, 0.001}),
		twoWayRoad(orb.Point{0.0, 0.001}, orb.Point{0.001, 0.001}, orb.Point{0.001, 0.0}),
	}
	first, _, err := NewGraphBuilder(NewCoordinateRegistry()).Build(features, GRAPH_MIXED)
	require.NoError(t, err)
	second, _, err := NewGraphBuilder(NewCoordinateRegistry()).Build(features, GRAPH_MIXED)
	require.NoError(t, err)
	assert.Equal(t, first.Edges(), second.Edges())
	assert.Equal(t, first.Nodes(), second.Nodes())
}

func TestEmitMintsMissingIDs(t *testing.T) {
	// Drive the second pass directly against an empty registry: every
	// coordinate resolution is a miss, every miss mints and warns, nothing aborts
	features := []RoadFeature{
		twoWayRoad(orb.Point{0.0, 0.0}, orb.Point{0.0, 0.001}, orb.Point{0.001, 0.001}),
	}
	registry := NewCoordinateRegistry()
	builder := NewGraphBuilder(registry)
	graph, report, err := builder.emitEdges(features, GRAPH_UNDIRECTED)
	require.NoError(t, err)
	assert.Equal(t, 2, graph.NumEdges())
	require.Len(t, report.Warnings, 3)
	assert.Equal(t, NodeID(1), report.Warnings[0].MintedID)
	assert.Contains(t, report.Warnings[0].String(), "minted id 1")
	assert.Equal(t, 3, registry.Len())
}
