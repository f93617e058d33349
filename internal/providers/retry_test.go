package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/greenmtn-data/scent.report/internal/errkind"
	"github.com/greenmtn-data/scent.report/internal/timeutil"
)

func TestWithRetryAndFallback_SucceedsFirstTry(t *testing.T) {
	calls := 0
	v, q := WithRetryAndFallback(context.Background(), "canopy", time.Second,
		func(context.Context) (float64, error) {
			calls++
			return 0.8, nil
		}, FallbackCanopyFraction)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if q != errkind.Full {
		t.Errorf("quality = %v, want Full", q)
	}
	if v != 0.8 {
		t.Errorf("value = %v, want 0.8", v)
	}
}

func TestWithRetryAndFallback_SucceedsOnRetry(t *testing.T) {
	mock := timeutil.NewMockClock(time.Unix(0, 0))
	orig := RetryClock
	RetryClock = mock
	defer func() { RetryClock = orig }()

	calls := 0
	resultCh := make(chan struct {
		v float64
		q errkind.DataQuality
	}, 1)
	go func() {
		v, q := WithRetryAndFallback(context.Background(), "canopy", time.Second,
			func(context.Context) (float64, error) {
				calls++
				if calls == 1 {
					return 0, errors.New("transient")
				}
				return 0.5, nil
			}, FallbackCanopyFraction)
		resultCh <- struct {
			v float64
			q errkind.DataQuality
		}{v, q}
	}()

	// wait for the first attempt to register and the timer to be armed,
	// then advance past the backoff.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for retry to be armed")
		default:
		}
		if calls == 1 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	mock.Advance(RetryBackoff)

	select {
	case res := <-resultCh:
		if calls != 2 {
			t.Errorf("calls = %d, want 2", calls)
		}
		if res.q != errkind.Full {
			t.Errorf("quality = %v, want Full", res.q)
		}
		if res.v != 0.5 {
			t.Errorf("value = %v, want 0.5", res.v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for retry result")
	}
}

func TestWithRetryAndFallback_FallsBackAfterBothFail(t *testing.T) {
	mock := timeutil.NewMockClock(time.Unix(0, 0))
	orig := RetryClock
	RetryClock = mock
	defer func() { RetryClock = orig }()

	calls := 0
	resultCh := make(chan struct {
		v float64
		q errkind.DataQuality
	}, 1)
	go func() {
		v, q := WithRetryAndFallback(context.Background(), "canopy", time.Second,
			func(context.Context) (float64, error) {
				calls++
				return 0, errors.New("down")
			}, FallbackCanopyFraction)
		resultCh <- struct {
			v float64
			q errkind.DataQuality
		}{v, q}
	}()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for retry to be armed")
		default:
		}
		if calls == 1 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	mock.Advance(RetryBackoff)

	select {
	case res := <-resultCh:
		if calls != 2 {
			t.Errorf("calls = %d, want 2", calls)
		}
		if res.q != errkind.Degraded {
			t.Errorf("quality = %v, want Degraded", res.q)
		}
		if res.v != FallbackCanopyFraction {
			t.Errorf("value = %v, want fallback", res.v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for fallback result")
	}
}

func TestWithRetryAndFallback_ContextCancelledBeforeRetry(t *testing.T) {
	mock := timeutil.NewMockClock(time.Unix(0, 0))
	orig := RetryClock
	RetryClock = mock
	defer func() { RetryClock = orig }()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	resultCh := make(chan struct {
		v float64
		q errkind.DataQuality
	}, 1)
	go func() {
		v, q := WithRetryAndFallback(ctx, "canopy", time.Second,
			func(context.Context) (float64, error) {
				calls++
				return 0, errors.New("down")
			}, FallbackCanopyFraction)
		resultCh <- struct {
			v float64
			q errkind.DataQuality
		}{v, q}
	}()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for retry to be armed")
		default:
		}
		if calls == 1 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	cancel()

	select {
	case res := <-resultCh:
		if calls != 1 {
			t.Errorf("calls = %d, want 1 (no retry after cancel)", calls)
		}
		if res.q != errkind.Degraded {
			t.Errorf("quality = %v, want Degraded", res.q)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for cancellation result")
	}
}
