// Package errkind defines the result-type taxonomy the prediction
// pipeline uses instead of exceptions. Every external-provider failure,
// DEM miss, or invalid input is a domain outcome that wraps one of
// these sentinels so callers can classify it with errors.Is, rather
// than matching on dynamic error strings.
package errkind

import "errors"

var (
	// ErrInputInvalid marks caller-visible request validation failures:
	// out-of-range coordinates, malformed datetime, unknown season.
	// Never retried.
	ErrInputInvalid = errors.New("input invalid")

	// ErrNoTerrainCoverage marks a point neither LIDAR nor the fallback
	// DEM covers. Downgrades the affected cell only; the pipeline
	// continues.
	ErrNoTerrainCoverage = errors.New("no terrain coverage")

	// ErrProviderUnavailable marks a collaborator timeout or error after
	// its one retry. The caller falls back to a published default.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrForecastUnavailable disables the hunt-window pipeline for this
	// request; the rest of the response stays intact with hunt_schedule
	// empty.
	ErrForecastUnavailable = errors.New("forecast unavailable")

	// ErrStandProfilesEmpty means no valid user stand profile survived
	// loading; the hunt-window pipeline is silently disabled.
	ErrStandProfilesEmpty = errors.New("no valid stand profiles")

	// ErrInternalInvariantViolated marks a defect: a bearing out of
	// range, a negative confidence, a malformed grid. Fatal to the
	// request.
	ErrInternalInvariantViolated = errors.New("internal invariant violated")
)

// DataQuality describes how much of a response section's data a
// request actually obtained.
type DataQuality string

const (
	// Full means every upstream collaborator the section depends on
	// returned live data.
	Full DataQuality = "full"
	// Degraded means at least one collaborator fell back to a
	// published default but the section is still populated.
	Degraded DataQuality = "degraded"
	// Unavailable means the section could not be populated at all and
	// was omitted or zeroed.
	Unavailable DataQuality = "unavailable"
)
