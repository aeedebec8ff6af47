package grid

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/sectorgrid/gridgraph"
)

// Source supplies the initial traversability of every cell.
type Source interface {
	Size() (w, h int)
	Traversable(x, y int) bool
}

// Grid owns the tiles, sectors, regions and thresholds of one map and keeps
// them consistent across SetTileTraversable calls.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	width, height    int
	sectorW, sectorH int
	cols, rows       int

	opts Options
	log  *slog.Logger

	tiles   []Tile
	sectors []Sector

	// tileRegion maps a row-major tile index to its region, NoRegion if blocked.
	tileRegion    []RegionID
	sectorRegions [][]RegionID

	regions    map[RegionID]*Region
	thresholds map[ThresholdID]*Threshold
	// index is the reverse threshold index: coordinate → regions registered there.
	index map[gridgraph.Point]mapset.Set[RegionID]

	roomSize map[int]int

	nextRegion    RegionID
	nextThreshold ThresholdID
	nextRoom      int

	stats Stats
}

// New builds a width×height grid of traversable tiles partitioned into
// sectorW×sectorH sectors and fully initializes regions, thresholds and rooms.
//
// Errors: ErrBadDimensions, ErrBadSectorSize, ErrConnectivity.
func New(width, height, sectorW, sectorH int, opts ...Option) (*Grid, error) {
	return build(width, height, sectorW, sectorH, func(int, int) bool { return true }, opts)
}

// NewFromSource is New with traversability read from src.
func NewFromSource(src Source, sectorW, sectorH int, opts ...Option) (*Grid, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	w, h := src.Size()
	return build(w, h, sectorW, sectorH, src.Traversable, opts)
}

// NewFromImage is New with traversability read from img through
// TraversablePixel. Pixel (Min.X+x, Min.Y+y) maps to tile (x, y).
func NewFromImage(img image.Image, sectorW, sectorH int, opts ...Option) (*Grid, error) {
	if img == nil {
		return nil, ErrNilSource
	}
	b := img.Bounds()
	return build(b.Dx(), b.Dy(), sectorW, sectorH, func(x, y int) bool {
		return TraversablePixel(img.At(b.Min.X+x, b.Min.Y+y))
	}, opts)
}

// TraversablePixel reports whether c marks a traversable tile: pure white.
// Any other color, including off-white and transparent, is blocked.
func TraversablePixel(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func build(width, height, sectorW, sectorH int, traversable func(x, y int) bool, opts []Option) (*Grid, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate geometry and connectivity
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if sectorW <= 0 || sectorH <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSectorSize, sectorW, sectorH)
	}
	if !cfg.Movement.Valid() || !cfg.RegionConn.Valid() {
		return nil, fmt.Errorf("%w: movement=%s region=%s", ErrConnectivity, cfg.Movement, cfg.RegionConn)
	}
	if cfg.RegionConn == gridgraph.Conn8 && cfg.Movement == gridgraph.Conn4 {
		return nil, fmt.Errorf("%w: region connectivity %s exceeds movement %s", ErrConnectivity, cfg.RegionConn, cfg.Movement)
	}
	if cfg.Merge == nil {
		cfg.Merge = MajorityRoom
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g := &Grid{
		width:         width,
		height:        height,
		sectorW:       sectorW,
		sectorH:       sectorH,
		cols:          (width + sectorW - 1) / sectorW,
		rows:          (height + sectorH - 1) / sectorH,
		opts:          cfg,
		log:           logger,
		tiles:         make([]Tile, width*height),
		tileRegion:    make([]RegionID, width*height),
		regions:       make(map[RegionID]*Region),
		thresholds:    make(map[ThresholdID]*Threshold),
		index:         make(map[gridgraph.Point]mapset.Set[RegionID]),
		roomSize:      make(map[int]int),
		nextRegion:    1,
		nextThreshold: 1,
	}

	// 3) Tiles and sectors
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.tiles[g.tileIndex(x, y)] = Tile{X: x, Y: y, traversable: traversable(x, y)}
		}
	}
	g.partition()

	// 4) Regions, then thresholds, then rooms
	var all []RegionID
	for s := range g.sectors {
		all = append(all, g.rebuildSector(s)...)
	}
	for _, id := range all {
		g.generateThresholds(g.regions[id])
	}
	g.labelAll()

	g.log.Debug("grid built",
		"width", width, "height", height,
		"sectors", len(g.sectors), "regions", len(g.regions),
		"thresholds", len(g.thresholds), "rooms", len(g.roomSize))

	return g, nil
}

// partition splits the grid into row-major sectors; edge sectors are clamped.
func (g *Grid) partition() {
	g.sectors = make([]Sector, 0, g.cols*g.rows)
	for sy := 0; sy < g.rows; sy++ {
		for sx := 0; sx < g.cols; sx++ {
			lo := gridgraph.Point{X: sx * g.sectorW, Y: sy * g.sectorH}
			hi := gridgraph.Point{
				X: min(lo.X+g.sectorW-1, g.width-1),
				Y: min(lo.Y+g.sectorH-1, g.height-1),
			}
			g.sectors = append(g.sectors, Sector{Index: len(g.sectors), Lower: lo, Upper: hi})
		}
	}
	g.sectorRegions = make([][]RegionID, len(g.sectors))
}

// sectorOf returns the index of the sector containing p. A coordinate that
// resolves to no sector, or to one that does not contain it, panics with
// ErrInvariant after logging the breach.
func (g *Grid) sectorOf(p gridgraph.Point) int {
	i := -1
	if g.inBounds(p.X, p.Y) {
		i = (p.Y/g.sectorH)*g.cols + p.X/g.sectorW
	}
	if i < 0 || i >= len(g.sectors) || !g.sectors[i].Contains(p) {
		g.log.Error("tile outside every sector", "point", p.String(), "sector", i)
		panic(fmt.Errorf("%w: no sector contains %s", ErrInvariant, p))
	}
	return i
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) tileIndex(x, y int) int { return y*g.width + x }

// owns reports whether t is one of this grid's tiles.
func (g *Grid) owns(t *Tile) bool {
	return t != nil && g.inBounds(t.X, t.Y) && &g.tiles[g.tileIndex(t.X, t.Y)] == t
}

func (g *Grid) traversable(p gridgraph.Point) bool {
	return g.inBounds(p.X, p.Y) && g.tiles[g.tileIndex(p.X, p.Y)].traversable
}

func (g *Grid) regionAt(p gridgraph.Point) RegionID {
	if !g.inBounds(p.X, p.Y) {
		return NoRegion
	}
	return g.tileRegion[g.tileIndex(p.X, p.Y)]
}
