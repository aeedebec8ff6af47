// Command sectorbench builds a sector grid from a configuration file, runs a
// random workload of tile toggles and path queries against it, checks the
// grid invariants and reports how flat and hierarchical search compare.
//
// Usage:
//
//	sectorbench [-config file.yaml] [-map map.png] [-mutations n] [-queries n] [-save out.png] [-log level]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/katalvlaran/sectorgrid/config"
	"github.com/katalvlaran/sectorgrid/grid"
	"github.com/katalvlaran/sectorgrid/logging"
	"github.com/katalvlaran/sectorgrid/mapgen"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "sectorbench:", err)
		os.Exit(1)
	}
}

// report summarizes one workload run.
type report struct {
	Regions, Thresholds, Rooms int
	Mutations, Queries         int
	Reachable                  int
	FlatTime, HierTime         time.Duration
	FlatSteps, HierSteps       int
	Build, Mutate              time.Duration
	Stats                      grid.Stats
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sectorbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath   = fs.String("config", "", "YAML config file (default $"+config.EnvPath+")")
		mapPath   = fs.String("map", "", "PNG map; overrides map.source")
		mutations = fs.Int("mutations", -1, "number of random toggles (default from config)")
		queries   = fs.Int("queries", -1, "number of path queries (default from config)")
		savePath  = fs.String("save", "", "write the initial map as PNG")
		level     = fs.String("log", "", "log level (default from config)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// 1) Configuration, with flags on top.
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *mapPath != "" {
		cfg.Map.Source, cfg.Map.Path = config.SourcePNG, *mapPath
	}
	if *mutations >= 0 {
		cfg.Workload.Mutations = *mutations
	}
	if *queries >= 0 {
		cfg.Workload.Queries = *queries
	}
	if *level != "" {
		cfg.Log.Level = *level
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	lvl, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log := logging.New(stderr, lvl)

	// 2) Map and grid.
	bm, err := loadMap(cfg)
	if err != nil {
		return err
	}
	if *savePath != "" {
		if err := mapgen.SaveFile(*savePath, bm); err != nil {
			return err
		}
	}
	opts, err := cfg.GridOptions()
	if err != nil {
		return err
	}
	opts = append(opts, grid.WithLogger(log))

	began := time.Now()
	g, err := grid.NewFromSource(bm, cfg.Grid.SectorWidth, cfg.Grid.SectorHeight, opts...)
	if err != nil {
		return err
	}
	rep := report{Build: time.Since(began)}
	w, h := g.Size()
	log.Info("grid ready", "width", w, "height", h, "regions", len(g.GetRegions()), "took", rep.Build)
	if err := g.Validate(); err != nil {
		return err
	}

	// 3) Workload.
	if err := workload(g, cfg.Workload, log, &rep); err != nil {
		return err
	}
	rep.Regions, rep.Thresholds, rep.Rooms = len(g.GetRegions()), g.ThresholdCount(), len(g.Rooms())
	rep.Stats = g.Stats()

	printReport(stdout, rep)
	return nil
}

func loadMap(cfg config.Config) (*mapgen.Bitmap, error) {
	switch cfg.Map.Source {
	case config.SourceOpen:
		return mapgen.Open(cfg.Grid.Width, cfg.Grid.Height)
	case config.SourceCross:
		bm, err := mapgen.Open(cfg.Grid.Width, cfg.Grid.Height)
		if err != nil {
			return nil, err
		}
		mapgen.CrossWalls(bm)
		return bm, nil
	case config.SourcePerlin:
		return mapgen.Perlin(cfg.Grid.Width, cfg.Grid.Height, mapgen.PerlinOptions{
			Seed:      cfg.Map.Seed,
			Scale:     cfg.Map.Scale,
			Threshold: cfg.Map.Threshold,
		})
	case config.SourcePNG:
		return mapgen.LoadFile(cfg.Map.Path)
	default:
		return nil, fmt.Errorf("%w: map.source=%s", config.ErrInvalidConfig, cfg.Map.Source)
	}
}

var errDisagree = errors.New("flat and hierarchical search disagree on reachability")

// workload toggles random tiles, interleaving path queries evenly between
// them, and validates the grid every wc.ValidateEvery toggles.
func workload(g *grid.Grid, wc config.WorkloadConfig, log *slog.Logger, rep *report) error {
	r := rand.New(rand.NewSource(wc.Seed))
	w, h := g.Size()
	tile := func() *grid.Tile { return g.GetTile(r.Intn(w), r.Intn(h)) }

	queryEvery := 0
	if wc.Queries > 0 {
		queryEvery = max(1, wc.Mutations/wc.Queries)
	}
	for i := 0; i < wc.Mutations || rep.Queries < wc.Queries; i++ {
		if i < wc.Mutations {
			t := tile()
			began := time.Now()
			g.SetTileTraversable(t, !t.Traversable())
			rep.Mutate += time.Since(began)
			rep.Mutations++
			if wc.ValidateEvery > 0 && rep.Mutations%wc.ValidateEvery == 0 {
				if err := g.Validate(); err != nil {
					return fmt.Errorf("after %d mutations: %w", rep.Mutations, err)
				}
				log.Debug("grid valid", "mutations", rep.Mutations)
			}
		}
		if queryEvery == 0 || rep.Queries >= wc.Queries || (i < wc.Mutations && i%queryEvery != 0) {
			continue
		}

		a, b := tile(), tile()
		rep.Queries++
		began := time.Now()
		flat, okFlat := g.FindPath(a, b)
		rep.FlatTime += time.Since(began)
		began = time.Now()
		hier, okHier := g.FindPathHierarchical(a, b)
		rep.HierTime += time.Since(began)
		if okFlat != okHier {
			return fmt.Errorf("%w: %s → %s", errDisagree, a.Point(), b.Point())
		}
		if okFlat {
			rep.Reachable++
			rep.FlatSteps += len(flat)
			rep.HierSteps += len(hier)
		}
	}
	if wc.ValidateEvery > 0 {
		return g.Validate()
	}
	return nil
}

func printReport(w io.Writer, rep report) {
	fmt.Fprintf(w, "build          %v\n", rep.Build)
	fmt.Fprintf(w, "regions        %d\n", rep.Regions)
	fmt.Fprintf(w, "thresholds     %d\n", rep.Thresholds)
	fmt.Fprintf(w, "rooms          %d\n", rep.Rooms)
	fmt.Fprintf(w, "mutations      %d in %v\n", rep.Mutations, rep.Mutate)
	fmt.Fprintf(w, "queries        %d (%d reachable)\n", rep.Queries, rep.Reachable)
	fmt.Fprintf(w, "flat           %v, %d steps\n", rep.FlatTime, rep.FlatSteps)
	fmt.Fprintf(w, "hierarchical   %v, %d steps\n", rep.HierTime, rep.HierSteps)
	fmt.Fprintf(w, "sector rebuilds %d, threshold rebuilds %d, room floods %d\n",
		rep.Stats.SectorRebuilds, rep.Stats.ThresholdRebuilds, rep.Stats.RoomFloods)
}
