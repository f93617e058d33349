package providers

import (
	"context"
	"time"

	"github.com/greenmtn-data/scent.report/internal/errkind"
	"github.com/greenmtn-data/scent.report/internal/monitoring"
	"github.com/greenmtn-data/scent.report/internal/timeutil"
)

// RetryBackoff is the delay before a collaborator's single retry.
// Tests substitute RetryClock with a timeutil.MockClock to exercise
// the retry path without a real sleep.
const RetryBackoff = 50 * time.Millisecond

// RetryClock supplies the backoff wait between a collaborator's first
// attempt and its retry. It defaults to the real clock; tests that need
// to assert retry timing swap in a timeutil.MockClock.
var RetryClock timeutil.Clock = timeutil.RealClock{}

// WithRetryAndFallback runs call once, retries it once after a short
// backoff on failure, and returns fallback with Degraded quality if
// both attempts fail. name identifies the collaborator in log output.
func WithRetryAndFallback[T any](ctx context.Context, name string, timeout time.Duration, call func(context.Context) (T, error), fallback T) (T, errkind.DataQuality) {
	attempt := func() (T, error) {
		callCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return call(callCtx)
	}

	if v, err := attempt(); err == nil {
		return v, errkind.Full
	}

	select {
	case <-RetryClock.After(RetryBackoff):
	case <-ctx.Done():
		monitoring.Logf("%s: context cancelled before retry", name)
		return fallback, errkind.Degraded
	}

	if v, err := attempt(); err == nil {
		return v, errkind.Full
	}

	monitoring.Logf("%s: unavailable after retry, using fallback: %v", name, errkind.ErrProviderUnavailable)
	return fallback, errkind.Degraded
}
