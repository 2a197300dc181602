package generate

import (
	"fmt"
	"time"
)

// ErrQuotaExceeded is returned when the outbound call budget is exhausted.
// It carries a retry hint so handlers can render a useful wait message.
type ErrQuotaExceeded struct {
	RetryAfter time.Duration
}

func (e *ErrQuotaExceeded) Error() string {
	secs := int(e.RetryAfter.Round(time.Second).Seconds())
	if secs < 1 {
		secs = 1
	}
	return fmt.Sprintf("AI call budget exhausted, try again in %ds", secs)
}

// ErrGenerationFailed is returned when the oracle call or contract parsing
// fails. The failed result is never cached.
type ErrGenerationFailed struct {
	Op  string
	Err error
}

func (e *ErrGenerationFailed) Error() string {
	return fmt.Sprintf("could not generate %s: %v", e.Op, e.Err)
}

func (e *ErrGenerationFailed) Unwrap() error {
	return e.Err
}
