package adapter

import (
	"context"
	"time"
)

// retryPolicy retries a remote call on transient failure with
// exponential backoff. Only the embedding call uses it; persistence
// writes are never retried here.
type retryPolicy struct {
	attempts int
	base     time.Duration
	max      time.Duration
	sleep    func(time.Duration)
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{
		attempts: 3,
		base:     4 * time.Second,
		max:      10 * time.Second,
		sleep:    time.Sleep,
	}
}

// Do runs f until it succeeds or attempts are exhausted. f reports
// whether its failure is transient; non-transient failures return
// immediately.
func (p retryPolicy) Do(ctx context.Context, f func(context.Context) (bool, error)) error {
	wait := p.base
	for attempt := 0; ; attempt++ {
		transient, err := f(ctx)
		if err == nil {
			return nil
		}
		if !transient || attempt >= p.attempts-1 {
			return err
		}
		p.sleep(wait)
		wait *= 2
		if wait > p.max {
			wait = p.max
		}
	}
}
