package predict

import (
	"github.com/greenmtn-data/scent.report/internal/config"
	"github.com/greenmtn-data/scent.report/internal/providers"
	"github.com/greenmtn-data/scent.report/internal/terrain"
)

// Collaborators bundles every external dependency the orchestrator
// calls, so a request carries no hidden global state.
type Collaborators struct {
	Terrain       *terrain.Catalog
	Canopy        providers.CanopyProvider
	Roads         providers.RoadsProvider
	Weather       providers.WeatherProvider
	LandCover     providers.LandCoverProvider
	StandProfiles *config.StandProfileStore
	Config        *config.Config
}

// fetchResult bundles one collaborator's outcome for the concurrent
// fan-out in step 4 of the pipeline.
type fetchResult struct {
	weather   providers.WeatherSnapshot
	weatherOK bool
	canopy    map[string]float64
	roads     []providers.RoadSegment
	landCover map[string]map[providers.LandCoverCategory]bool

	// totalCalls and fullCalls count every WithRetryAndFallback
	// invocation across all collaborators, so the orchestrator can tell
	// whether every external source fell back to a published default.
	totalCalls int
	fullCalls  int
}
