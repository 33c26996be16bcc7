// Package latency simulates the round trip of a remote reference-data source.
package latency

import (
	"context"
	"time"
)

// Wait blocks for d, or until ctx ends, in which case it returns ctx.Err().
// A non-positive d only reports whether ctx has already ended.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
