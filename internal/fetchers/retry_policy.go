package fetchers

import (
	"time"

	"github.com/cenkalti/backoff/v5"
)

// RetryPolicy bounds how often and how patiently a failed fetch is retried.
// MaxAttempts counts the first attempt.
type RetryPolicy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

// DefaultRetryPolicy: 3 attempts, 2s doubling, capped at 60s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     3,
		InitialInterval: 2 * time.Second,
		MaxInterval:     60 * time.Second,
		Multiplier:      2,
	}
}

// NewBackOff returns a fresh exponential backoff without jitter.
func (p RetryPolicy) NewBackOff() backoff.BackOff {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     p.InitialInterval,
		RandomizationFactor: 0,
		Multiplier:          p.Multiplier,
		MaxInterval:         p.MaxInterval,
	}
	b.Reset()
	return b
}

func (p RetryPolicy) maxTries() uint {
	if p.MaxAttempts < 1 {
		return 1
	}
	return uint(p.MaxAttempts)
}
