package roads2wrpp

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CoordinateMiss is a recoverable build issue: a coordinate was expected to be
// registered already but was absent, so a fresh id was minted for it. The
// build carries on since dropping a handful of edges is preferable to failing
// an entire export over a data inconsistency the caller can't fix.
type CoordinateMiss struct {
	Coord    orb.Point
	MintedID NodeID
}

func (miss CoordinateMiss) String() string {
	return fmt.Sprintf("Coordinate [%f, %f] was not registered, minted id %d", miss.Coord.Lon(), miss.Coord.Lat(), miss.MintedID)
}

// BuildReport carries observable build statistics and recoverable issues
type BuildReport struct {
	Features          int
	Segments          int
	SkippedZeroLength int
	Warnings          []CoordinateMiss
}

// GraphBuilder turns road features into a node/edge graph under an
// edge-modeling policy. The registry passed in stays the single owner of the
// id space for the whole pipeline.
type GraphBuilder struct {
	registry *CoordinateRegistry
	log      *zap.Logger
}

// NewGraphBuilder creates builder over given coordinate registry
func NewGraphBuilder(registry *CoordinateRegistry, options ...func(*GraphBuilder)) *GraphBuilder {
	builder := &GraphBuilder{
		registry: registry,
		log:      zap.NewNop(),
	}
	for _, option := range options {
		option(builder)
	}
	return builder
}

// WithLogger sets logger for the builder
func WithLogger(log *zap.Logger) func(*GraphBuilder) {
	return func(builder *GraphBuilder) {
		builder.log = log
	}
}

// Build produces graph for given road features under given edge-modeling policy.
//
// First pass registers every coordinate in first-appearance order so node ids
// are dense and stable. Second pass walks consecutive coordinate pairs and
// emits edges per policy:
//
//	UNDIRECTED - one undirected edge per segment, endpoints ordered (min, max), unordered duplicates dropped
//	DIRECTED   - one arc for one-way segment, two opposing arcs for two-way
//	MIXED      - one arc for one-way segment, one undirected edge for two-way
//	WINDY      - same as MIXED (asymmetric traversal cost is a serialization concern, not two arcs)
//
// Returns ErrEmptyGraph when not a single vertex ends up referenced by an edge.
func (builder *GraphBuilder) Build(features []RoadFeature, graphType GraphType) (*Graph, *BuildReport, error) {
	for i := range features {
		for _, pt := range features[i].Geometry {
			builder.registry.GetOrAssignID(pt)
		}
	}
	return builder.emitEdges(features, graphType)
}

// emitEdges is the second pass: resolves endpoints through the registry and
// emits edges. A registry miss here mints a fresh id and is reported, never fatal.
func (builder *GraphBuilder) emitEdges(features []RoadFeature, graphType GraphType) (*Graph, *BuildReport, error) {
	graph := newGraph()
	report := &BuildReport{
		Features: len(features),
	}
	used := make(map[NodeID]struct{})
	seenUndirected := make(map[[2]NodeID]struct{})

	for i := range features {
		feature := &features[i]
		oneway := feature.IsOneway()
		for j := 1; j < len(feature.Geometry); j++ {
			report.Segments++
			source := builder.resolveID(feature.Geometry[j-1], report)
			target := builder.resolveID(feature.Geometry[j], report)
			weight := segmentWeight(feature.Geometry[j-1], feature.Geometry[j])
			if weight == 0 {
				report.SkippedZeroLength++
				continue
			}
			base := Edge{
				Source:        source,
				Target:        target,
				WeightMeters:  weight,
				Covered:       feature.Covered,
				RouteRequired: feature.RouteRequired,
				RoadName:      feature.Name,
				Kind:          feature.Kind,
			}
			switch graphType {
			case GRAPH_UNDIRECTED:
				edge := canonicalize(base)
				pair := [2]NodeID{edge.Source, edge.Target}
				if _, ok := seenUndirected[pair]; ok {
					continue
				}
				seenUndirected[pair] = struct{}{}
				graph.addEdge(edge)
			case GRAPH_DIRECTED:
				arc := base
				arc.Directed = true
				graph.addEdge(arc)
				if !oneway {
					back := arc
					back.Source, back.Target = arc.Target, arc.Source
					graph.addEdge(back)
				}
			case GRAPH_MIXED, GRAPH_WINDY:
				if oneway {
					arc := base
					arc.Directed = true
					graph.addEdge(arc)
				} else {
					graph.addEdge(canonicalize(base))
				}
			default:
				return nil, nil, errors.Errorf("Unknown graph type: %d", graphType)
			}
			used[source] = struct{}{}
			used[target] = struct{}{}
		}
	}

	if len(used) == 0 {
		return nil, nil, errors.Wrapf(ErrEmptyGraph, "%d road features, %d segments inspected, %d skipped as zero-length", report.Features, report.Segments, report.SkippedZeroLength)
	}

	for id := range used {
		coord, ok := builder.registry.Coord(id)
		if !ok {
			// Can't happen: resolveID has just minted or found the id
			return nil, nil, errors.Errorf("Registry lost coordinate for id %d", id)
		}
		graph.addNode(Node{ID: id, Geom: coord})
	}

	builder.log.Info("Graph built",
		zap.Stringer("graph_type", graphType),
		zap.Int("vertices", graph.NumVertices()),
		zap.Int("edges", graph.NumEdges()),
		zap.Int("segments", report.Segments),
		zap.Int("skipped_zero_length", report.SkippedZeroLength),
		zap.Int("warnings", len(report.Warnings)),
	)
	return graph, report, nil
}

func (builder *GraphBuilder) resolveID(pt orb.Point, report *BuildReport) NodeID {
	if found, ok := builder.registry.ID(pt); ok {
		return found
	}
	minted := builder.registry.GetOrAssignID(pt)
	report.Warnings = append(report.Warnings, CoordinateMiss{Coord: pt, MintedID: minted})
	builder.log.Warn("Coordinate expected in registry but missing, minted new id",
		zap.Float64("lon", pt.Lon()),
		zap.Float64("lat", pt.Lat()),
		zap.Int64("minted_id", int64(minted)),
	)
	return minted
}

// canonicalize orders endpoints of an undirected edge as (min, max)
func canonicalize(edge Edge) Edge {
	edge.Directed = false
	if edge.Source > edge.Target {
		edge.Source, edge.Target = edge.Target, edge.Source
	}
	return edge
}
