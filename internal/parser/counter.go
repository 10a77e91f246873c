package parser

import "go.uber.org/atomic"

// eventCounter is a lock-free per-second counter shared by every worker
// in the pool, mirroring the atomic.Int64 usage in grafana-tempo's
// cmd/tempo/app.
type eventCounter struct {
	n *atomic.Int64
}

func newEventCounter() *eventCounter {
	return &eventCounter{n: atomic.NewInt64(0)}
}

func (c *eventCounter) inc() {
	c.n.Inc()
}

func (c *eventCounter) swap() int64 {
	return c.n.Swap(0)
}
