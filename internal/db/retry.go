package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/playstack/game-catalog-service/internal/logging"
)

type backoffFunc func(attempt int) time.Duration

// retrier repeats a startup step with linear backoff until it succeeds,
// attempts run out, or the context is canceled.
type retrier struct {
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

func newRetrier(logger *slog.Logger, maxAttempts int, backoff time.Duration) retrier {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return retrier{
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r retrier) do(ctx context.Context, step string, fn func(context.Context) error) error {
	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		logging.Warn(r.logger, "database step failed, retrying",
			"step", step, "attempt", attempt, "max_attempts", r.maxAttempts, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}
	logging.Error(r.logger, "database step gave up", lastErr, "step", step, "attempts", r.maxAttempts)
	return lastErr
}
