package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSnapshotCapturesCurrentCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(Sources{
		ReadThisSec:  constant(5),
		EventThisSec: constant(3),
		BatchThisSec: constant(1),
		QueueSize:    constantInt(7),
		SentTotal:    constant(10),
	}, reg, zap.NewNop())

	m.snapshot()

	assert.EqualValues(t, 5, m.LatestReadPerSec())
	assert.EqualValues(t, 3, m.LatestEventPerSec())
	assert.EqualValues(t, 1, m.LatestBatchPerSec())
	assert.EqualValues(t, 10, m.TotalProcessedEvents())
}

func TestTotalProcessedEventsMirrorsSentTotal(t *testing.T) {
	reg := prometheus.NewRegistry()
	calls := []int64{4, 9, 9, 15}
	i := 0
	m := New(Sources{
		ReadThisSec:  constant(0),
		EventThisSec: constant(0),
		BatchThisSec: constant(0),
		SentTotal: func() int64 {
			v := calls[i]
			if i < len(calls)-1 {
				i++
			}
			return v
		},
	}, reg, zap.NewNop())

	m.snapshot()
	assert.EqualValues(t, 4, m.TotalProcessedEvents())
	m.snapshot()
	assert.EqualValues(t, 9, m.TotalProcessedEvents())
}

func TestRunStopsOnContextCancel(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(Sources{
		ReadThisSec:  constant(0),
		EventThisSec: constant(0),
		BatchThisSec: constant(0),
	}, reg, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func constant(v int64) func() int64 {
	return func() int64 { return v }
}

func constantInt(v int) func() int {
	return func() int { return v }
}
