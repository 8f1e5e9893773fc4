//go:build !windows && !linux && !darwin

package debug

import (
	"context"
	"log/slog"
	"time"
)

// StartMemLogger is not supported on this platform; the goroutine logger
// still reports heap usage.
func StartMemLogger(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	logger.Debug("memlog unavailable on this platform")
}
