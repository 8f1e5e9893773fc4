package debug

import (
	"context"
	"log/slog"
	"time"
)

// Probe returns key/value pairs for one stats line, or nil to skip the line.
// It is called from the logger goroutine and must be safe for that.
type Probe func() []any

// StartStatsLogger logs the probe's snapshot every interval until ctx is done.
func StartStatsLogger(ctx context.Context, interval time.Duration, logger *slog.Logger, probe Probe) {
	if interval <= 0 {
		interval = time.Second
	}
	if probe == nil {
		return
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if kv := probe(); kv != nil {
					logger.Info("pacing.stats", kv...)
				}
			}
		}
	}()
}
