package helper

import (
	"fmt"
)

// LoadTyped asserts the result of a lookup function to the expected type T.
// ok is false when the lookup missed or the stored value has another type.
func LoadTyped[T any](loadFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = loadFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// ErrMaxAttempts marks a retry loop that gave up.
var ErrMaxAttempts = fmt.Errorf("max attempts reached")

// Retry calls fn until it succeeds or maxAttempts calls have failed.
// The last failure is wrapped alongside ErrMaxAttempts.
func Retry(maxAttempts int, fn func() error) error {
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if attempt >= maxAttempts {
			return fmt.Errorf("%w: %d, %w", ErrMaxAttempts, attempt, err)
		}
	}
}
