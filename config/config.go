// Package config loads the YAML configuration of the sectorgrid tools.
//
// Values missing from the file keep their Default() value. Load validates
// the result; every error wraps ErrInvalidConfig and names the field.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sectorgrid/grid"
	"github.com/katalvlaran/sectorgrid/gridgraph"
)

// EnvPath names the environment variable consulted when Load gets no path.
const EnvPath = "SECTORGRID_CONFIG"

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Map source kinds.
const (
	SourceOpen   = "open"
	SourcePerlin = "perlin"
	SourceCross  = "cross"
	SourcePNG    = "png"
)

// Config is the root of the configuration file.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Map      MapConfig      `yaml:"map"`
	Workload WorkloadConfig `yaml:"workload"`
	Log      LogConfig      `yaml:"log"`
}

// GridConfig holds grid geometry and behavior.
type GridConfig struct {
	Width               int    `yaml:"width"`
	Height              int    `yaml:"height"`
	SectorWidth         int    `yaml:"sector_width"`
	SectorHeight        int    `yaml:"sector_height"`
	Movement            string `yaml:"movement"`
	RegionConnectivity  string `yaml:"region_connectivity"`
	Strategy            string `yaml:"strategy"`
	HierarchicalMinArea int    `yaml:"hierarchical_min_area"`
	RoomPrecheck        bool   `yaml:"room_precheck"`
}

// MapConfig selects the initial traversability source.
type MapConfig struct {
	Source    string  `yaml:"source"`
	Path      string  `yaml:"path"`
	Seed      int64   `yaml:"seed"`
	Scale     float64 `yaml:"scale"`
	Threshold float64 `yaml:"threshold"`
}

// WorkloadConfig drives the benchmark: random toggles interleaved with path queries.
type WorkloadConfig struct {
	Mutations     int   `yaml:"mutations"`
	Queries       int   `yaml:"queries"`
	Seed          int64 `yaml:"seed"`
	ValidateEvery int   `yaml:"validate_every"`
}

// LogConfig sets the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:               256,
			Height:              256,
			SectorWidth:         16,
			SectorHeight:        16,
			Movement:            "conn8",
			RegionConnectivity:  "conn8",
			Strategy:            "auto",
			HierarchicalMinArea: grid.DefaultHierarchicalMinArea,
			RoomPrecheck:        true,
		},
		Map: MapConfig{
			Source:    SourcePerlin,
			Seed:      1,
			Scale:     0.08,
			Threshold: 0.42,
		},
		Workload: WorkloadConfig{
			Mutations:     1000,
			Queries:       200,
			Seed:          7,
			ValidateEvery: 100,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a YAML file over Default().
// With path == "" it falls back to $SECTORGRID_CONFIG, and with that unset
// it returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func invalid(field string, v any) error {
	return fmt.Errorf("%w: %s=%v", ErrInvalidConfig, field, v)
}

// Validate checks every field and reports the first bad one.
func (c Config) Validate() error {
	g := c.Grid
	switch {
	case g.Width <= 0:
		return invalid("grid.width", g.Width)
	case g.Height <= 0:
		return invalid("grid.height", g.Height)
	case g.SectorWidth <= 0:
		return invalid("grid.sector_width", g.SectorWidth)
	case g.SectorHeight <= 0:
		return invalid("grid.sector_height", g.SectorHeight)
	case g.HierarchicalMinArea < 0:
		return invalid("grid.hierarchical_min_area", g.HierarchicalMinArea)
	}
	if _, err := c.GridOptions(); err != nil {
		return err
	}

	m := c.Map
	switch m.Source {
	case SourceOpen, SourceCross:
	case SourcePerlin:
		if m.Scale <= 0 {
			return invalid("map.scale", m.Scale)
		}
		if m.Threshold < 0 || m.Threshold > 1 {
			return invalid("map.threshold", m.Threshold)
		}
	case SourcePNG:
		if m.Path == "" {
			return invalid("map.path", `""`)
		}
	default:
		return invalid("map.source", m.Source)
	}

	w := c.Workload
	switch {
	case w.Mutations < 0:
		return invalid("workload.mutations", w.Mutations)
	case w.Queries < 0:
		return invalid("workload.queries", w.Queries)
	case w.ValidateEvery < 0:
		return invalid("workload.validate_every", w.ValidateEvery)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("log.level", c.Log.Level)
	}
	return nil
}

// ParseStrategy maps "auto", "flat" and "hierarchical" to a grid.Strategy.
func ParseStrategy(s string) (grid.Strategy, error) {
	switch s {
	case "auto", "":
		return grid.StrategyAuto, nil
	case "flat":
		return grid.StrategyFlat, nil
	case "hierarchical":
		return grid.StrategyHierarchical, nil
	default:
		return 0, invalid("grid.strategy", s)
	}
}

// GridOptions translates the grid section into grid options.
func (c Config) GridOptions() ([]grid.Option, error) {
	mv, err := gridgraph.ParseConnectivity(c.Grid.Movement)
	if err != nil {
		return nil, fmt.Errorf("%w: grid.movement: %w", ErrInvalidConfig, err)
	}
	rc, err := gridgraph.ParseConnectivity(c.Grid.RegionConnectivity)
	if err != nil {
		return nil, fmt.Errorf("%w: grid.region_connectivity: %w", ErrInvalidConfig, err)
	}
	if rc == gridgraph.Conn8 && mv == gridgraph.Conn4 {
		return nil, invalid("grid.region_connectivity", "conn8 with conn4 movement")
	}
	st, err := ParseStrategy(c.Grid.Strategy)
	if err != nil {
		return nil, err
	}
	if c.Grid.HierarchicalMinArea < 0 {
		return nil, invalid("grid.hierarchical_min_area", c.Grid.HierarchicalMinArea)
	}
	return []grid.Option{
		grid.WithMovement(mv),
		grid.WithRegionConnectivity(rc),
		grid.WithStrategy(st),
		grid.WithHierarchicalMinArea(c.Grid.HierarchicalMinArea),
		grid.WithRoomPrecheck(c.Grid.RoomPrecheck),
	}, nil
}
