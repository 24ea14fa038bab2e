package service

import (
	"context"
	"testing"
	"time"

	perr "reqmatch/internal/platform/errors"
)

// fakeClock records backoff sleeps without waiting
type fakeClock struct {
	slept []time.Duration
}

func (f *fakeClock) Sleep(d time.Duration) { f.slept = append(f.slept, d) }

func policy(attempts int, clock *fakeClock) RetryPolicy {
	return RetryPolicy{MaxAttempts: attempts, Base: time.Second, Sleep: clock.Sleep}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{}
	calls := 0
	err := policy(3, clock).Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return perr.Unavailablef("index flaked")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("third attempt succeeded, want nil error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d", calls)
	}
	// backoff schedule is 2^attempt units: 2s then 4s
	if len(clock.slept) != 2 || clock.slept[0] != 2*time.Second || clock.slept[1] != 4*time.Second {
		t.Fatalf("unexpected backoff delays: %v", clock.slept)
	}
}

func TestRetry_FatalPropagatesImmediately(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{}
	calls := 0
	err := policy(3, clock).Do(context.Background(), func(context.Context) error {
		calls++
		return perr.SearchFatalf("malformed query")
	})
	if !perr.IsCode(err, perr.ErrorCodeSearchFatal) {
		t.Fatalf("fatal error must propagate unchanged: %v", err)
	}
	if calls != 1 {
		t.Fatalf("fatal errors must not be retried, calls = %d", calls)
	}
	if len(clock.slept) != 0 {
		t.Fatalf("no backoff expected: %v", clock.slept)
	}
}

func TestRetry_ExhaustionEscalatesToUnavailable(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{}
	calls := 0
	err := policy(3, clock).Do(context.Background(), func(context.Context) error {
		calls++
		return perr.Unavailablef("still down")
	})
	if calls != 3 {
		t.Fatalf("calls = %d", calls)
	}
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("exhaustion must classify unavailable: %v", err)
	}
	if len(clock.slept) != 2 {
		t.Fatalf("two backoffs expected before giving up: %v", clock.slept)
	}
}

func TestRetry_RespectsDeadlineDuringBackoff(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	calls := 0
	err := policy(3, clock).Do(ctx, func(context.Context) error {
		calls++
		return perr.Unavailablef("down")
	})
	// first backoff would be 2s, far beyond the 500ms budget
	if !perr.IsCode(err, perr.ErrorCodeTimeout) {
		t.Fatalf("overrunning the budget must classify timeout: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d", calls)
	}
	if len(clock.slept) != 0 {
		t.Fatalf("must not sleep past the deadline: %v", clock.slept)
	}
}

func TestRetry_CanceledContextStopsBeforeAttempt(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := policy(3, &fakeClock{}).Do(ctx, func(context.Context) error {
		calls++
		return nil
	})
	if !perr.IsCode(err, perr.ErrorCodeTimeout) {
		t.Fatalf("canceled budget must classify timeout: %v", err)
	}
	if calls != 0 {
		t.Fatalf("no attempts expected after cancellation, calls = %d", calls)
	}
}

func TestRetry_ZeroAttemptsRunsOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	err := RetryPolicy{Sleep: (&fakeClock{}).Sleep}.Do(context.Background(), func(context.Context) error {
		calls++
		return nil
	})
	if err != nil || calls != 1 {
		t.Fatalf("zero-valued policy must still run once: calls=%d err=%v", calls, err)
	}
}
