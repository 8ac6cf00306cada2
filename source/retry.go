package source

import (
	"context"
	"log/slog"
	"time"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// BackoffDelays returns n exponential backoff delays starting at 1s:
// 1s, 2s, 4s, ... Zero or negative n returns no delays.
func BackoffDelays(n int) []time.Duration {
	if n <= 0 {
		return nil
	}
	delays := make([]time.Duration, n)
	d := time.Second
	for i := range delays {
		delays[i] = d
		d *= 2
	}
	return delays
}

// FetchWithRetryDelays calls fetch once, then once more after each delay
// until it succeeds. The logger, if provided, records each retry.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger.Warn("retry fetch",
				"url", url,
				"attempt", attempt+2,
				"delay", delays[attempt],
				"err", err,
			)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
