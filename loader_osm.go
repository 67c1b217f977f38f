package roads2wrpp

import (
	"context"
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultHighwayTags is the set of 'highway' values accepted by default:
// drivable and walkable public roads, no motorways, no dedicated foot/cycle
// infrastructure
var DefaultHighwayTags = []string{
	"trunk", "trunk_link",
	"primary", "primary_link",
	"secondary", "secondary_link",
	"tertiary", "tertiary_link",
	"residential", "residential_link",
	"living_street", "unclassified",
	"service", "road", "track", "pedestrian",
}

// OsmConfiguration allows to filter OSM ways by values of the 'highway' tag
type OsmConfiguration struct {
	Tags []string
}

// CheckTag checks if incoming tag value is represented in configuration
func (cfg *OsmConfiguration) CheckTag(tag string) bool {
	for i := range cfg.Tags {
		if cfg.Tags[i] == tag {
			return true
		}
	}
	return false
}

type osmWayData struct {
	nodes      []osm.NodeID
	name       string
	kind       HighwayKind
	oneway     bool
	roundabout bool
}

// RoadFeaturesFromOSMFile imports road features from a file of PBF-format (in OSM terms).
//
// Two scans over the file: ways matching the highway filter first, then the
// nodes those ways reference. Ways referencing a node absent from the file are
// skipped with a warning. Coverage and route-required attributes are not OSM
// concerns, so every produced feature starts uncovered and route-required.
func RoadFeaturesFromOSMFile(fileName string, cfg *OsmConfiguration, log *zap.Logger) ([]RoadFeature, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "File open")
	}
	defer f.Close()

	scannerWays := osmpbf.New(context.Background(), f, 4)
	defer scannerWays.Close()

	ways := []osmWayData{}
	nodesSeen := make(map[osm.NodeID]struct{})
	for scannerWays.Scan() {
		obj := scannerWays.Object()
		if obj.ObjectID().Type() != "way" {
			continue
		}
		way := obj.(*osm.Way)
		tagMap := way.TagMap()
		highway, ok := tagMap["highway"]
		if !ok {
			continue
		}
		if !cfg.CheckTag(highway) {
			continue
		}
		if service, ok := tagMap["service"]; ok {
			if service == "driveway" || service == "drive-through" || service == "parking_aisle" {
				continue
			}
		}
		oneway := false
		if v, ok := tagMap["oneway"]; ok {
			if v == "yes" || v == "1" || v == "true" {
				oneway = true
			}
		}
		prepared := osmWayData{
			nodes:      make([]osm.NodeID, len(way.Nodes)),
			name:       tagMap["name"],
			kind:       getHighwayKind(highway),
			oneway:     oneway,
			roundabout: tagMap["junction"] == "roundabout",
		}
		for i, wayNode := range way.Nodes {
			prepared.nodes[i] = wayNode.ID
			nodesSeen[wayNode.ID] = struct{}{}
		}
		ways = append(ways, prepared)
	}
	if scannerWays.Err() != nil {
		return nil, errors.Wrap(scannerWays.Err(), "Scanner error on Ways")
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking")
	}
	scannerNodes := osmpbf.New(context.Background(), f, 4)
	defer scannerNodes.Close()

	coords := make(map[osm.NodeID]orb.Point)
	for scannerNodes.Scan() {
		obj := scannerNodes.Object()
		if obj.ObjectID().Type() != "node" {
			continue
		}
		node := obj.(*osm.Node)
		if _, ok := nodesSeen[node.ID]; ok {
			coords[node.ID] = orb.Point{node.Lon, node.Lat}
		}
	}
	if scannerNodes.Err() != nil {
		return nil, errors.Wrap(scannerNodes.Err(), "Scanner error on Nodes")
	}

	features := make([]RoadFeature, 0, len(ways))
	skipped := 0
	for _, way := range ways {
		geometry := make(orb.LineString, 0, len(way.nodes))
		complete := true
		for _, nodeID := range way.nodes {
			pt, ok := coords[nodeID]
			if !ok {
				complete = false
				break
			}
			geometry = append(geometry, pt)
		}
		if !complete {
			skipped++
			continue
		}
		features = append(features, RoadFeature{
			Geometry:      geometry,
			Name:          way.name,
			Kind:          way.kind,
			Oneway:        way.oneway,
			Roundabout:    way.roundabout,
			Covered:       false,
			RouteRequired: true,
		})
	}
	if skipped > 0 {
		log.Warn("Ways referencing nodes absent from the extract were skipped", zap.Int("skipped", skipped))
	}
	log.Info("OSM file imported",
		zap.String("file", fileName),
		zap.Int("ways", len(ways)),
		zap.Int("nodes", len(coords)),
		zap.Int("road_features", len(features)),
	)
	return features, nil
}
