package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/LdDl/roads2wrpp"
	"go.uber.org/zap"
)

var (
	fileName       = flag.String("file", "roads.geojson", "Input road network: GeoJSON FeatureCollection of LineStrings or *.osm.pbf extract")
	out            = flag.String("out", "graph.txt", "Filename of solver-formatted text output")
	graphTypeStr   = flag.String("type", "windy", "Edge-modeling policy. Expected values: undirected / directed / mixed / windy")
	coverageFilter = flag.Bool("coverage-filter", false, "Treat already covered edges as OPTIONAL (windy modes only)?")
	largestOnly    = flag.Bool("largest", true, "Restrict graph to its largest strongly connected component?")
	depotFlag      = flag.Int64("depot", 0, "Externally supplied depot vertex id. 0 means the canonical first coordinate becomes vertex 1")
	tagStr         = flag.String("tags", strings.Join(roads2wrpp.DefaultHighwayTags, ","), "Set of accepted 'highway' tag values for *.osm.pbf input (separated by commas)")
	previewOut     = flag.String("geojson-out", "", "Optional GeoJSON preview of the exported graph")
)

func main() {
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	graphType, err := roads2wrpp.ParseGraphType(*graphTypeStr)
	if err != nil {
		log.Fatal("Bad graph type", zap.Error(err))
	}

	var features []roads2wrpp.RoadFeature
	if strings.HasSuffix(strings.ToLower(*fileName), ".pbf") {
		cfg := roads2wrpp.OsmConfiguration{Tags: strings.Split(*tagStr, ",")}
		features, err = roads2wrpp.RoadFeaturesFromOSMFile(*fileName, &cfg, log)
	} else {
		features, err = roads2wrpp.RoadFeaturesFromGeoJSONFile(*fileName)
	}
	if err != nil {
		log.Fatal("Can't load road features", zap.Error(err))
	}

	registry := roads2wrpp.NewCoordinateRegistry()
	builder := roads2wrpp.NewGraphBuilder(registry, roads2wrpp.WithLogger(log))
	graph, report, err := builder.Build(features, graphType)
	if err != nil {
		log.Fatal("Can't build graph", zap.Error(err))
	}
	for _, warning := range report.Warnings {
		log.Warn("Build warning", zap.String("warning", warning.String()))
	}

	if *largestOnly {
		components := roads2wrpp.StronglyConnectedComponents(graph)
		largest := roads2wrpp.SelectLargest(components)
		log.Info("Connectivity analysis done",
			zap.Int("components", len(components)),
			zap.Int("largest", len(largest)),
		)
		graph, err = roads2wrpp.FilterToComponent(graph, largest)
		if err != nil {
			log.Fatal("Can't filter graph", zap.Error(err))
		}
		graph, registry = roads2wrpp.Renumber(graph)
	}

	depotID := roads2wrpp.NodeID(*depotFlag)
	if depotID == 0 {
		if err := roads2wrpp.EnsureDepot(graph, registry, features); err != nil {
			log.Fatal("Can't enforce depot", zap.Error(err))
		}
		depotID = roads2wrpp.DepotID
	}

	rule := roads2wrpp.RuleFor(graphType, *coverageFilter)
	text, err := roads2wrpp.Serialize(graph, registry, graphType, depotID, rule)
	if err != nil {
		log.Fatal("Can't serialize graph", zap.Error(err))
	}
	if err := os.WriteFile(*out, []byte(text), 0644); err != nil {
		log.Fatal("Can't write output", zap.Error(err))
	}

	if *previewOut != "" {
		fc, err := roads2wrpp.GraphToGeoJSON(graph, rule)
		if err != nil {
			log.Fatal("Can't convert graph to GeoJSON", zap.Error(err))
		}
		data, err := fc.MarshalJSON()
		if err != nil {
			log.Fatal("Can't marshal GeoJSON", zap.Error(err))
		}
		if err := os.WriteFile(*previewOut, data, 0644); err != nil {
			log.Fatal("Can't write GeoJSON preview", zap.Error(err))
		}
	}

	log.Info("Export done",
		zap.String("out", *out),
		zap.Stringer("graph_type", graphType),
		zap.Int("vertices", graph.NumVertices()),
		zap.Int("edges", graph.NumEdges()),
		zap.Int64("depot", int64(depotID)),
	)
}
