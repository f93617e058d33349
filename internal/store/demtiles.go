package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/greenmtn-data/scent.report/internal/terrain"
)

// DemTileRepo persists the terrain catalog's discovered tiles, so a
// restart can skip rescanning the DEM directories when nothing has
// changed on disk.
type DemTileRepo struct {
	db *sql.DB
}

// NewDemTileRepo wraps db for DEM tile catalog persistence.
func NewDemTileRepo(db *DB) *DemTileRepo {
	return &DemTileRepo{db: db.DB}
}

// Load returns every persisted tile record, in DEM-before-hillshade
// order, ready to seed a terrain.Catalog without touching disk.
func (r *DemTileRepo) Load() ([]*terrain.DemTile, error) {
	rows, err := r.db.Query(`
		SELECT path, resolution_m, crs, min_lat, min_lon, max_lat, max_lon,
		       origin_lat, origin_lon, pixel_size_lat_deg, pixel_size_lon_deg,
		       tag, rows, cols
		FROM dem_tiles
		ORDER BY CASE tag WHEN 'dem' THEN 0 ELSE 1 END, path`)
	if err != nil {
		return nil, fmt.Errorf("store: load dem tiles: %w", err)
	}
	defer rows.Close()

	var out []*terrain.DemTile
	for rows.Next() {
		t := &terrain.DemTile{}
		var tag string
		if err := rows.Scan(
			&t.Path, &t.ResolutionM, &t.CRS,
			&t.Bounds.MinLat, &t.Bounds.MinLon, &t.Bounds.MaxLat, &t.Bounds.MaxLon,
			&t.Transform.OriginLat, &t.Transform.OriginLon,
			&t.Transform.PixelSizeLatDeg, &t.Transform.PixelSizeLonDeg,
			&tag, &t.Rows, &t.Cols,
		); err != nil {
			return nil, fmt.Errorf("store: scan dem tile: %w", err)
		}
		t.Tag = terrain.SourceTag(tag)
		out = append(out, t)
	}
	return out, rows.Err()
}

// Save replaces the persisted catalog with tiles, the set last
// returned by a terrain.Catalog.Discover pass.
func (r *DemTileRepo) Save(tiles []*terrain.DemTile) error {
	return retryOnBusy(func() error {
		tx, err := r.db.Begin()
		if err != nil {
			return fmt.Errorf("store: begin dem tile save: %w", err)
		}
		defer tx.Rollback()

		if _, err := tx.Exec(`DELETE FROM dem_tiles`); err != nil {
			return fmt.Errorf("store: clear dem tiles: %w", err)
		}

		now := time.Now().Unix()
		for _, t := range tiles {
			_, err := tx.Exec(`
				INSERT INTO dem_tiles (
					path, resolution_m, crs, min_lat, min_lon, max_lat, max_lon,
					origin_lat, origin_lon, pixel_size_lat_deg, pixel_size_lon_deg,
					tag, rows, cols, discovered_at
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				t.Path, t.ResolutionM, t.CRS,
				t.Bounds.MinLat, t.Bounds.MinLon, t.Bounds.MaxLat, t.Bounds.MaxLon,
				t.Transform.OriginLat, t.Transform.OriginLon,
				t.Transform.PixelSizeLatDeg, t.Transform.PixelSizeLonDeg,
				string(t.Tag), t.Rows, t.Cols, now)
			if err != nil {
				return fmt.Errorf("store: insert dem tile %q: %w", t.Path, err)
			}
		}
		return tx.Commit()
	})
}
