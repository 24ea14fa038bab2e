package service

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	perr "reqmatch/internal/platform/errors"
)

// Sleeper blocks for d; injectable so tests can observe backoff delays
type Sleeper func(d time.Duration)

// RetryPolicy retries transient failures with exponential backoff
// attempt n waits Base*2^n before attempt n+1; fatal errors propagate
// immediately and exhaustion escalates to an unavailable error
type RetryPolicy struct {
	MaxAttempts int
	Base        time.Duration
	Sleep       Sleeper
}

// DefaultRetryPolicy matches the index client's stock settings
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Base: time.Second, Sleep: time.Sleep}
}

// delays returns a deterministic 2^attempt schedule: 2b, 4b, 8b, ...
func (p RetryPolicy) delays() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * p.Base
	b.RandomizationFactor = 0
	b.Multiplier = 2
	b.MaxInterval = 24 * time.Hour // never cap within MaxAttempts
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// Do runs op until it succeeds, fails fatally, or attempts run out.
// The context deadline is a hard budget: when the next backoff wait would
// overrun it, Do fails with a timeout error instead of sleeping
func (p RetryPolicy) Do(ctx context.Context, op func(context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	schedule := p.delays()

	var last error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeTimeout, "matching budget exhausted before attempt %d", attempt)
		}

		last = op(ctx)
		if last == nil {
			return nil
		}
		if !perr.Retryable(last) {
			return last
		}
		if attempt == attempts {
			break
		}

		wait := schedule.NextBackOff()
		if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < wait {
			return perr.Wrapf(last, perr.ErrorCodeTimeout, "matching budget exhausted during backoff after attempt %d", attempt)
		}
		sleep(wait)
	}

	return perr.Wrapf(last, perr.ErrorCodeUnavailable, "matching unavailable after %d attempts", attempts)
}
