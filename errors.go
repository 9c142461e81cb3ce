package brandgen

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoImage is returned when the image model responds without any image parts.
var ErrNoImage = errors.New("no image returned by model")

// ErrDecodeImage is returned when an image part cannot be decoded.
var ErrDecodeImage = errors.New("cannot decode image data")

// RateLimitError is returned when the remote service reports an exhausted quota.
type RateLimitError struct {
	// RetryAfter is the server-suggested delay; zero when none was sent
	RetryAfter time.Duration

	// LimitType names the exhausted quota when the server reports it
	LimitType string

	Model string
	Err   error // Underlying error from the provider
}

func (e *RateLimitError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rate limit exceeded for %s", e.Model)
	if e.LimitType != "" {
		fmt.Fprintf(&b, ": %s", e.LimitType)
	}
	if e.RetryAfter > 0 {
		fmt.Fprintf(&b, ", retry after %v", e.RetryAfter)
	}
	return b.String()
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// IsRateLimitError checks if an error is a RateLimitError.
func IsRateLimitError(err error) bool {
	var rlErr *RateLimitError
	return errors.As(err, &rlErr)
}

// ErrStorageNotConfigured is returned when storage operations are attempted
// without a configured storage backend.
var ErrStorageNotConfigured = errors.New("storage not configured")
