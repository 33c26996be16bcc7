package latency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitElapses(t *testing.T) {
	start := time.Now()
	assert.NoError(t, Wait(context.Background(), 20*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestWaitStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	assert.ErrorIs(t, Wait(ctx, time.Minute), context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestWaitZeroReportsCancelled(t *testing.T) {
	assert.NoError(t, Wait(context.Background(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Wait(ctx, 0), context.Canceled)
}
