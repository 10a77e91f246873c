// Package queue implements the coalescing queue that sits between the
// parser pool and the uploader: repeated hits that share a content hash
// (internal/normalize.Hash, which covers rule identity and timing but no
// flow or endpoint fields) merge into one pending record instead of one
// row per observation (spec.md §4.2).
package queue

import (
	"sync"
	"time"

	"github.com/MasLazu/suricata-sensor-agent/pkg/sensorpb"
)

type entry struct {
	event     *sensorpb.SensorEvent
	createdAt int64
	updatedAt int64
}

// Queue holds pending SensorEvents keyed by content hash, merging
// repeated hits and yielding them to the uploader on drain.
type Queue struct {
	mu           sync.Mutex
	pending      map[string]*entry
	deltaSeconds uint64
}

// New returns a Queue. deltaSeconds == 0 enables immediate-drain mode;
// deltaSeconds > 0 enables windowed mode, where a record must have sat
// unmodified for more than that many whole unix seconds before drain
// will yield it.
func New(deltaSeconds uint64) *Queue {
	return &Queue{
		pending:      make(map[string]*entry),
		deltaSeconds: deltaSeconds,
	}
}

// Add inserts event, or merges it onto an existing record sharing the
// same content hash. On merge, the incoming metric sequence is
// appended in arrival order and updated_at advances; event_metrics_count
// is deliberately left untouched here, so it keeps the value the
// normalizer set and does not track the merged metric count.
func (q *Queue) Add(event *sensorpb.SensorEvent) {
	now := time.Now().Unix()

	q.mu.Lock()
	defer q.mu.Unlock()

	existing, ok := q.pending[event.EventHashSha256]
	if !ok {
		q.pending[event.EventHashSha256] = &entry{event: event, createdAt: now, updatedAt: now}
		return
	}

	existing.event.Metrics = append(existing.event.Metrics, event.Metrics...)
	existing.updatedAt = now
}

// Drain removes and returns every event ready to leave the queue.
// In immediate mode (delta == 0) this is every pending event, via an
// O(1) map swap. In windowed mode, only entries whose updated_at is
// more than deltaSeconds in the past are removed and returned; the rest
// remain pending.
func (q *Queue) Drain() []*sensorpb.SensorEvent {
	if q.deltaSeconds == 0 {
		return q.drainImmediate()
	}
	return q.drainWindowed()
}

func (q *Queue) drainImmediate() []*sensorpb.SensorEvent {
	q.mu.Lock()
	pending := q.pending
	q.pending = make(map[string]*entry)
	q.mu.Unlock()

	return flatten(pending)
}

func (q *Queue) drainWindowed() []*sensorpb.SensorEvent {
	now := time.Now().Unix()
	threshold := int64(q.deltaSeconds)

	q.mu.Lock()
	defer q.mu.Unlock()

	var ready []*sensorpb.SensorEvent
	for key, e := range q.pending {
		if now > e.updatedAt+threshold {
			ready = append(ready, e.event)
			delete(q.pending, key)
		}
	}
	return ready
}

// Size reports the number of distinct pending records.
func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func flatten(pending map[string]*entry) []*sensorpb.SensorEvent {
	if len(pending) == 0 {
		return nil
	}
	out := make([]*sensorpb.SensorEvent, 0, len(pending))
	for _, e := range pending {
		out = append(out, e.event)
	}
	return out
}
