package terrain

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/greenmtn-data/scent.report/internal/geo"
	"github.com/greenmtn-data/scent.report/internal/monitoring"
	"github.com/greenmtn-data/scent.report/internal/security"
)

// Catalog is the process-wide, read-only index of discovered DEM
// tiles. Built once at startup (or on an administrative reload) and
// shared across requests; tiles are never altered after discovery.
type Catalog struct {
	mu     sync.RWMutex
	tiles  []*DemTile
	reader RasterReader

	handlesMu sync.Mutex
	handles   map[string]RasterHandle
}

// NewCatalog constructs a Catalog backed by reader. A nil reader models
// the "rasterio-equivalent library missing" failure mode: Discover
// becomes a no-op and every extraction reports coverage=false.
func NewCatalog(reader RasterReader) *Catalog {
	return &Catalog{
		reader:  reader,
		handles: make(map[string]RasterHandle),
	}
}

// Discover scans dirs for raster files, partitions them into DEM and
// hillshade classes by filename tag, and records resolution/CRS/bounds
// per tile via the RasterReader. DEM tiles are always tried first; the
// ordering is established here so extraction never has to re-sort.
func (c *Catalog) Discover(dirs []string) error {
	if c.reader == nil {
		monitoring.Logf("terrain: LIDAR unavailable, no raster reader configured")
		return nil
	}

	var discovered []*DemTile
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			monitoring.Logf("terrain: skipping directory %q: %v", dir, err)
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if err := security.ValidatePathWithinDirectory(path, dir); err != nil {
				monitoring.Logf("terrain: rejecting suspicious tile path %q: %v", path, err)
				continue
			}
			handle, err := c.reader.Open(path)
			if err != nil {
				monitoring.Logf("terrain: skipping unreadable tile %q: %v", path, err)
				continue
			}
			meta := handle.Meta()
			if meta.Tag == "" {
				meta.Tag = classifyByFilename(entry.Name())
			}
			discovered = append(discovered, &DemTile{Path: path, TileMeta: meta})
			_ = handle.Close()
		}
	}

	// Priority rule: DEM tiles are always tried first, hillshade is
	// fallback only.
	sort.SliceStable(discovered, func(i, j int) bool {
		return rank(discovered[i].Tag) < rank(discovered[j].Tag)
	})

	c.mu.Lock()
	c.tiles = discovered
	c.mu.Unlock()
	return nil
}

// Seed installs a previously discovered tile list directly, bypassing
// a directory scan. Used to restore a catalog from a persisted
// snapshot (internal/store) when the DEM directories haven't changed
// since the last Discover.
func (c *Catalog) Seed(tiles []*DemTile) {
	c.mu.Lock()
	c.tiles = tiles
	c.mu.Unlock()
}

func rank(t SourceTag) int {
	if t == TagDEM {
		return 0
	}
	return 1
}

func classifyByFilename(name string) SourceTag {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "hillshade") {
		return TagHillshade
	}
	return TagDEM
}

// CoveringTile returns the first tile (DEM-priority order) whose bounds
// strictly contain p, or nil if no tile covers it.
func (c *Catalog) CoveringTile(p geo.Point) *DemTile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.tiles {
		if t.Bounds.Contains(p) {
			return t
		}
	}
	return nil
}

// Tiles returns a read-only snapshot of discovered tiles.
func (c *Catalog) Tiles() []*DemTile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*DemTile, len(c.tiles))
	copy(out, c.tiles)
	return out
}

// handleFor returns a cached open handle for path, opening it lazily
// on first use. Handles stay open for the duration of a batch
// extraction and are released by CloseAll.
func (c *Catalog) handleFor(path string) (RasterHandle, error) {
	c.handlesMu.Lock()
	defer c.handlesMu.Unlock()
	if h, ok := c.handles[path]; ok {
		return h, nil
	}
	if c.reader == nil {
		return nil, fmt.Errorf("terrain: no raster reader configured")
	}
	h, err := c.reader.Open(path)
	if err != nil {
		return nil, err
	}
	c.handles[path] = h
	return h, nil
}

// CloseAll releases every handle opened during a batch extraction.
func (c *Catalog) CloseAll() {
	c.handlesMu.Lock()
	defer c.handlesMu.Unlock()
	for path, h := range c.handles {
		_ = h.Close()
		delete(c.handles, path)
	}
}
