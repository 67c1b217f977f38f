package roads2wrpp

// HighwayKind splits roads into major highways and ordinary streets
type HighwayKind uint16

const (
	KIND_HIGHWAY = HighwayKind(iota + 1)
	KIND_STREET
)

func (iotaIdx HighwayKind) String() string {
	return [...]string{"undefined", "HIGHWAY", "STREET"}[iotaIdx]
}

var highwayKinds = map[string]HighwayKind{
	"motorway":       KIND_HIGHWAY,
	"motorway_link":  KIND_HIGHWAY,
	"trunk":          KIND_HIGHWAY,
	"trunk_link":     KIND_HIGHWAY,
	"primary":        KIND_HIGHWAY,
	"primary_link":   KIND_HIGHWAY,
	"secondary":      KIND_HIGHWAY,
	"secondary_link": KIND_HIGHWAY,
}

// getHighwayKind maps value of OSM 'highway' tag onto highway kind. Anything not listed as major is a street.
func getHighwayKind(str string) HighwayKind {
	if found, ok := highwayKinds[str]; ok {
		return found
	}
	return KIND_STREET
}
