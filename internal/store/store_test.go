package store

import (
	"path/filepath"
	"testing"

	"github.com/greenmtn-data/scent.report/internal/config"
	"github.com/greenmtn-data/scent.report/internal/terrain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpen_RunsMigrations(t *testing.T) {
	db := openTestDB(t)

	var tableCount int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name IN ('stand_profiles', 'dem_tiles')`).Scan(&tableCount)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if tableCount != 2 {
		t.Errorf("tableCount = %d, want 2", tableCount)
	}
}

func TestOpen_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	db1.Close()

	db2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("second Open (migrate up again): %v", err)
	}
	defer db2.Close()
}

func TestStandProfileRepo_SaveAndLoad(t *testing.T) {
	db := openTestDB(t)
	repo := NewStandProfileRepo(db)

	gust := 15.0
	match := "thermal"
	notes := "back corner stand"
	profiles := []config.StandProfile{
		{
			ID:          "north-ridge",
			DisplayName: "North Ridge",
			PreferredWinds: []config.PreferredWind{
				{CompassLabel: "NW", ToleranceDeg: 20},
			},
			MaxGustMPH:    &gust,
			StrategyMatch: &match,
			Notes:         &notes,
		},
		{
			ID:          "creek-bottom",
			DisplayName: "Creek Bottom",
			PreferredWinds: []config.PreferredWind{
				{CompassLabel: "S", ToleranceDeg: 25},
			},
		},
	}

	if err := repo.Save(profiles); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("len(loaded) = %d, want 2", len(loaded))
	}
	if loaded[0].ID != "creek-bottom" || loaded[1].ID != "north-ridge" {
		t.Errorf("unexpected order: %q, %q", loaded[0].ID, loaded[1].ID)
	}
	var northRidge config.StandProfile
	for _, p := range loaded {
		if p.ID == "north-ridge" {
			northRidge = p
		}
	}
	if northRidge.MaxGustMPH == nil || *northRidge.MaxGustMPH != 15.0 {
		t.Errorf("MaxGustMPH = %v, want 15.0", northRidge.MaxGustMPH)
	}
	if northRidge.StrategyMatch == nil || *northRidge.StrategyMatch != "thermal" {
		t.Errorf("StrategyMatch = %v, want thermal", northRidge.StrategyMatch)
	}
	if len(northRidge.PreferredWinds) != 1 || northRidge.PreferredWinds[0].CompassLabel != "NW" {
		t.Errorf("PreferredWinds = %+v", northRidge.PreferredWinds)
	}
}

func TestStandProfileRepo_SaveUpserts(t *testing.T) {
	db := openTestDB(t)
	repo := NewStandProfileRepo(db)

	profiles := []config.StandProfile{{
		ID:             "north-ridge",
		DisplayName:    "North Ridge",
		PreferredWinds: []config.PreferredWind{{CompassLabel: "NW", ToleranceDeg: 20}},
	}}
	if err := repo.Save(profiles); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	profiles[0].DisplayName = "North Ridge Renamed"
	if err := repo.Save(profiles); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("len(loaded) = %d, want 1 (upsert, not duplicate)", len(loaded))
	}
	if loaded[0].DisplayName != "North Ridge Renamed" {
		t.Errorf("DisplayName = %q, want %q", loaded[0].DisplayName, "North Ridge Renamed")
	}
}

func TestDemTileRepo_SaveAndLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewDemTileRepo(db)

	tiles := []*terrain.DemTile{
		{
			Path: "/data/dem/tile_a.tif",
			TileMeta: terrain.TileMeta{
				ResolutionM: 1.0,
				CRS:         "EPSG:4326",
				Bounds:      terrain.Bounds{MinLat: 43.0, MinLon: -73.5, MaxLat: 43.5, MaxLon: -73.0},
				Transform:   terrain.GeoTransform{OriginLat: 43.5, OriginLon: -73.5, PixelSizeLatDeg: 0.00001, PixelSizeLonDeg: 0.00001},
				Tag:         terrain.TagDEM,
				Rows:        5000,
				Cols:        5000,
			},
		},
		{
			Path: "/data/dem/tile_hillshade.tif",
			TileMeta: terrain.TileMeta{
				ResolutionM: 1.0,
				CRS:         "EPSG:4326",
				Bounds:      terrain.Bounds{MinLat: 43.0, MinLon: -73.5, MaxLat: 43.5, MaxLon: -73.0},
				Tag:         terrain.TagHillshade,
				Rows:        5000,
				Cols:        5000,
			},
		},
	}

	if err := repo.Save(tiles); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("len(loaded) = %d, want 2", len(loaded))
	}
	if loaded[0].Tag != terrain.TagDEM {
		t.Errorf("loaded[0].Tag = %q, want dem (DEM-before-hillshade order)", loaded[0].Tag)
	}
	if loaded[0].Bounds.MinLat != 43.0 || loaded[0].ResolutionM != 1.0 {
		t.Errorf("loaded[0] bounds/resolution mismatch: %+v", loaded[0])
	}

	catalog := terrain.NewCatalog(nil)
	catalog.Seed(loaded)
	if got := len(catalog.Tiles()); got != 2 {
		t.Errorf("catalog.Tiles() len = %d, want 2", got)
	}
}

func TestDemTileRepo_SaveReplacesExisting(t *testing.T) {
	db := openTestDB(t)
	repo := NewDemTileRepo(db)

	first := []*terrain.DemTile{{Path: "/a.tif", TileMeta: terrain.TileMeta{Tag: terrain.TagDEM}}}
	if err := repo.Save(first); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	second := []*terrain.DemTile{{Path: "/b.tif", TileMeta: terrain.TileMeta{Tag: terrain.TagDEM}}}
	if err := repo.Save(second); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Path != "/b.tif" {
		t.Errorf("loaded = %+v, want only /b.tif", loaded)
	}
}
