package queue

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MasLazu/suricata-sensor-agent/pkg/sensorpb"
)

func newEvent(hash string, metrics ...*sensorpb.Metric) *sensorpb.SensorEvent {
	return &sensorpb.SensorEvent{EventHashSha256: hash, Metrics: metrics}
}

func TestAddInsertsDistinctKeys(t *testing.T) {
	q := New(0)
	q.Add(newEvent("a"))
	q.Add(newEvent("b"))
	assert.Equal(t, 2, q.Size())
}

func TestAddMergesMetricsInArrivalOrder(t *testing.T) {
	q := New(0)
	q.Add(newEvent("a", &sensorpb.Metric{SnortSrcAddress: "1"}))
	q.Add(newEvent("a", &sensorpb.Metric{SnortSrcAddress: "2"}))

	events := q.Drain()
	require.Len(t, events, 1)
	require.Len(t, events[0].Metrics, 2)
	assert.Equal(t, "1", events[0].Metrics[0].SnortSrcAddress)
	assert.Equal(t, "2", events[0].Metrics[1].SnortSrcAddress)
}

func TestImmediateDrainEmptiesQueue(t *testing.T) {
	q := New(0)
	q.Add(newEvent("a"))
	q.Add(newEvent("b"))

	events := q.Drain()
	assert.Len(t, events, 2)
	assert.Zero(t, q.Size())
	assert.Empty(t, q.Drain())
}

func TestWindowedDrainOnlyYieldsExpiredEntries(t *testing.T) {
	q := New(1)
	q.Add(newEvent("a"))

	assert.Empty(t, q.Drain())
	assert.Equal(t, 1, q.Size())

	// Timestamps are whole unix seconds and drain needs now > updated_at+1,
	// so only a wait past two second boundaries is guaranteed to expire it.
	time.Sleep(2100 * time.Millisecond)

	events := q.Drain()
	require.Len(t, events, 1)
	assert.Zero(t, q.Size())
}

func TestWindowedDrainLeavesFreshEntriesPending(t *testing.T) {
	q := New(100)
	q.Add(newEvent("a"))
	assert.Empty(t, q.Drain())
	assert.Equal(t, 1, q.Size())
}

func TestConcurrentAddAndDrainNeverDuplicatesOrLoses(t *testing.T) {
	q := New(0)
	var wg sync.WaitGroup
	total := 200

	drained := make([]*sensorpb.SensorEvent, 0, total)
	var drainedMu sync.Mutex
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				drainedMu.Lock()
				drained = append(drained, q.Drain()...)
				drainedMu.Unlock()
				return
			default:
				batch := q.Drain()
				drainedMu.Lock()
				drained = append(drained, batch...)
				drainedMu.Unlock()
			}
		}
	}()

	for i := 0; i < total; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q.Add(newEvent(string(rune('a'+i%26)), &sensorpb.Metric{}))
		}(i)
	}
	wg.Wait()
	close(done)
	time.Sleep(10 * time.Millisecond)

	drainedMu.Lock()
	defer drainedMu.Unlock()
	assert.LessOrEqual(t, len(drained), total)
	assert.NotEmpty(t, drained)

	// Every Add carried exactly one metric, so the drained metric rows
	// count each Add once: fewer means one was lost, more means one was
	// drained twice.
	metricCount := 0
	for _, e := range drained {
		metricCount += len(e.Metrics)
	}
	assert.Equal(t, total, metricCount)
	assert.Zero(t, q.Size())
}
