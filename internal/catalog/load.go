package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/travelkit/travelkit/internal/record"
)

//go:embed data
var embedded embed.FS

// Table files, relative to the catalog root.
const (
	fileSite                = "site.yaml"
	fileTransportModes      = "transport_modes.yaml"
	fileStops               = "stops.yaml"
	fileStopEnrichments     = "stop_enrichments.yaml"
	fileFlightEnrichments   = "flight_enrichments.yaml"
	fileSegmentDefaults     = "segment_defaults.yaml"
	fileSegmentSpecifics    = "segment_specifics.yaml"
	fileLodgingEnrichments  = "lodging_enrichments.yaml"
	fileFoodEnrichments     = "food_enrichments.yaml"
	fileActivityEnrichments = "activity_enrichments.yaml"
	dirRoutes               = "routes"
)

type segmentSpecific struct {
	From   string        `yaml:"from"`
	To     string        `yaml:"to"`
	Mode   string        `yaml:"mode"`
	Fields record.Record `yaml:"fields"`
}

// Default loads the catalog compiled into the binary.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("opening embedded catalog: %w", err)
	}
	return Load(sub)
}

// Load reads all tables from fsys and validates them. Stop enrichments are
// merged into the stop table once, here; everything else stays a separate
// lookup table applied per route by the builder.
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{}

	if err := decodeFile(fsys, fileSite, &c.site); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, fileTransportModes, &c.modes); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, fileStops, &c.stops); err != nil {
		return nil, err
	}

	stopEnrichments, err := loadTable(fsys, fileStopEnrichments)
	if err != nil {
		return nil, err
	}
	for _, id := range stopEnrichments.Keys() {
		stop, ok := c.stops[id]
		if !ok {
			c.orphanEnrichments = append(c.orphanEnrichments, id)
			continue
		}
		stopEnrichments.Enrich(stop, id)
	}

	if c.Flights, err = loadTable(fsys, fileFlightEnrichments); err != nil {
		return nil, err
	}
	if c.SegmentDefaults, err = loadTable(fsys, fileSegmentDefaults); err != nil {
		return nil, err
	}
	if c.Lodging, err = loadTable(fsys, fileLodgingEnrichments); err != nil {
		return nil, err
	}
	if c.Food, err = loadTable(fsys, fileFoodEnrichments); err != nil {
		return nil, err
	}
	if c.Activities, err = loadTable(fsys, fileActivityEnrichments); err != nil {
		return nil, err
	}

	var specifics []segmentSpecific
	if err := decodeFile(fsys, fileSegmentSpecifics, &specifics); err != nil {
		return nil, err
	}
	rows := make(map[string]record.Record, len(specifics))
	for _, s := range specifics {
		rows[SegmentKey{From: s.From, To: s.To, Mode: s.Mode}.String()] = s.Fields
	}
	c.SegmentSpecifics = record.NewTable(rows)

	if c.routes, err = loadRoutes(fsys); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}
	return c, nil
}

func loadTable(fsys fs.FS, name string) (*record.Table, error) {
	rows := make(map[string]record.Record)
	if err := decodeFile(fsys, name, &rows); err != nil {
		return nil, err
	}
	return record.NewTable(rows), nil
}

// loadRoutes reads one route definition per YAML file, ordered by file name.
// A missing routes directory yields no routes.
func loadRoutes(fsys fs.FS) ([]record.Record, error) {
	entries, err := fs.ReadDir(fsys, dirRoutes)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing routes: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	routes := make([]record.Record, 0, len(names))
	for _, name := range names {
		var r record.Record
		if err := decodeFile(fsys, path.Join(dirRoutes, name), &r); err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, nil
}

func decodeFile(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}
