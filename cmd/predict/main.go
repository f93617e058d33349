// Command predict runs the prediction orchestrator (C9) once: it reads
// a single request as JSON from stdin and writes the assembled
// response as JSON to stdout.
//
// Exit codes: 0 success, 1 request validation or I/O failure, 2 every
// external collaborator call this request made fell back to its
// published default. No environment variable changes the biological
// math; the only external input is -config.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/greenmtn-data/scent.report/internal/config"
	"github.com/greenmtn-data/scent.report/internal/monitoring"
	"github.com/greenmtn-data/scent.report/internal/predict"
	"github.com/greenmtn-data/scent.report/internal/store"
	"github.com/greenmtn-data/scent.report/internal/terrain"
)

var configPath = flag.String("config", "", "path to a prediction config JSON file (optional)")

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg := config.Defaults()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			monitoring.Logf("predict: %v", err)
			return 1
		}
		cfg = loaded
	}

	collab, closeCollab, err := buildCollaborators(cfg)
	defer closeCollab()
	if err != nil {
		monitoring.Logf("predict: %v", err)
		return 1
	}

	var req predict.Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		monitoring.Logf("predict: decode request: %v", err)
		return 1
	}

	resp, err := predict.NewPipeline(*collab).Run(context.Background(), req)
	if err != nil {
		monitoring.Logf("predict: %v", err)
		return 1
	}

	if err := json.NewEncoder(os.Stdout).Encode(resp); err != nil {
		monitoring.Logf("predict: encode response: %v", err)
		return 1
	}

	if resp.AllProvidersDegraded {
		return 2
	}
	return 0
}

// buildCollaborators assembles the pipeline's external dependencies
// from cfg. Every collaborator interface (weather, canopy, roads,
// land cover) is left nil: this CLI has no production backend wired
// for any of them, so every request runs in fully-degraded-but-valid
// fallback mode, exactly as NewPipeline documents. The terrain catalog
// and stand-profile snapshot are real, backed by internal/store.
func buildCollaborators(cfg *config.Config) (*predict.Collaborators, func(), error) {
	var closers []func() error
	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				monitoring.Logf("predict: close: %v", err)
			}
		}
	}

	catalog := terrain.NewCatalog(nil)
	if cfg.DemTileCatalogPath != nil {
		db, err := store.Open(*cfg.DemTileCatalogPath)
		if err != nil {
			return nil, closeAll, fmt.Errorf("dem tile catalog: %w", err)
		}
		closers = append(closers, db.Close)
		tiles, err := store.NewDemTileRepo(db).Load()
		if err != nil {
			return nil, closeAll, fmt.Errorf("dem tile catalog: %w", err)
		}
		catalog.Seed(tiles)
	}
	if len(cfg.DemDirectories) > 0 {
		if err := catalog.Discover(cfg.DemDirectories); err != nil {
			monitoring.Logf("predict: terrain discovery: %v", err)
		}
	}

	var standStore *config.StandProfileStore
	if cfg.StandProfileStorePath != nil {
		db, err := store.Open(*cfg.StandProfileStorePath)
		if err != nil {
			return nil, closeAll, fmt.Errorf("stand profile store: %w", err)
		}
		closers = append(closers, db.Close)
		profiles, err := store.NewStandProfileRepo(db).Load()
		if err != nil {
			return nil, closeAll, fmt.Errorf("stand profile store: %w", err)
		}
		standStore = config.NewStandProfileStore(profiles)
	}

	return &predict.Collaborators{
		Terrain:       catalog,
		StandProfiles: standStore,
		Config:        cfg,
	}, closeAll, nil
}
