package notification

import "time"

type BackoffKind int

const (
	BackoffFixed BackoffKind = iota
	BackoffExponential
)

// RetryPolicy is an explicit retry configuration applied by callers around a
// delivery attempt, not hidden inside the strategy.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
	Backoff     BackoffKind
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Delay: 5 * time.Second, Backoff: BackoffFixed}
}

// Wait returns the delay before the next attempt, given how many attempts
// have already completed. Exponential backoff doubles per attempt, no jitter.
func (p RetryPolicy) Wait(completed int) time.Duration {
	if p.Delay <= 0 {
		return 0
	}
	if p.Backoff == BackoffExponential {
		if completed < 0 {
			completed = 0
		}
		return p.Delay * time.Duration(1<<uint(completed))
	}
	return p.Delay
}

func (p RetryPolicy) attempts() int {
	if p.MaxAttempts <= 0 {
		return 1
	}
	return p.MaxAttempts
}
