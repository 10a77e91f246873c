// Package metrics tracks and reports the agent's per-second and
// cumulative counters (spec.md §4.6), additionally exposing them as
// Prometheus gauges the way cmd/tempo-vulture does for its own run
// counters.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Sources is everything Metrics samples once a second. Each *ThisSec
// field returns-and-resets its own counter, matching the contract
// internal/listener, internal/parser, and internal/uploader each expose;
// QueueSize and SentTotal are read without resetting.
type Sources struct {
	ReadThisSec  func() int64
	EventThisSec func() int64
	BatchThisSec func() int64
	QueueSize    func() int
	SentTotal    func() int64
}

// Metrics snapshots the *ThisSec counters once a second into
// latest_*_per_sec gauges, and logs everything once every five seconds.
type Metrics struct {
	sources Sources
	logger  *zap.Logger

	latestReadPerSec  *atomic.Int64
	latestEventPerSec *atomic.Int64
	latestBatchPerSec *atomic.Int64

	totalProcessedEvents *atomic.Int64
	lastSentTotal        int64

	readGauge   prometheus.Gauge
	eventGauge  prometheus.Gauge
	batchGauge  prometheus.Gauge
	queueGauge  prometheus.Gauge
	sentCounter prometheus.Counter
}

// New builds a Metrics instance sourcing its counters from sources, and
// registers its Prometheus collectors against reg.
func New(sources Sources, reg prometheus.Registerer, logger *zap.Logger) *Metrics {
	m := &Metrics{
		sources:              sources,
		logger:               logger,
		latestReadPerSec:     atomic.NewInt64(0),
		latestEventPerSec:    atomic.NewInt64(0),
		latestBatchPerSec:    atomic.NewInt64(0),
		totalProcessedEvents: atomic.NewInt64(0),
		readGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "suricata_agent_read_per_sec",
			Help: "Lines read from the ingestion socket in the last second.",
		}),
		eventGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "suricata_agent_events_per_sec",
			Help: "Events queued by the parser pool in the last second.",
		}),
		batchGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "suricata_agent_batches_per_sec",
			Help: "Non-empty batches drained from the coalescing queue in the last second.",
		}),
		queueGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "suricata_agent_queue_size",
			Help: "Number of distinct pending records in the coalescing queue.",
		}),
		sentCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "suricata_agent_sent_events_total",
			Help: "Cumulative count of metric rows in events drained for the egress RPC stream.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.readGauge, m.eventGauge, m.batchGauge, m.queueGauge, m.sentCounter)
	}

	return m
}

// LatestReadPerSec, LatestEventPerSec, LatestBatchPerSec return the
// most recent one-second snapshot of each counter.
func (m *Metrics) LatestReadPerSec() int64  { return m.latestReadPerSec.Load() }
func (m *Metrics) LatestEventPerSec() int64 { return m.latestEventPerSec.Load() }
func (m *Metrics) LatestBatchPerSec() int64 { return m.latestBatchPerSec.Load() }

// TotalProcessedEvents mirrors total_sent_events: it is intentionally
// driven from the same source (SentTotal) rather than tracked
// independently — see SPEC_FULL.md §9 on this being a preserved quirk,
// not a bug.
func (m *Metrics) TotalProcessedEvents() int64 {
	return m.totalProcessedEvents.Load()
}

// Run drives the one-second snapshot tick and the five-second logging
// tick until ctx is canceled.
func (m *Metrics) Run(ctx context.Context) {
	oneSec := time.NewTicker(time.Second)
	fiveSec := time.NewTicker(5 * time.Second)
	defer oneSec.Stop()
	defer fiveSec.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-oneSec.C:
			m.snapshot()
		case <-fiveSec.C:
			m.logSnapshot()
		}
	}
}

func (m *Metrics) snapshot() {
	read := m.sources.ReadThisSec()
	event := m.sources.EventThisSec()
	batch := m.sources.BatchThisSec()

	m.latestReadPerSec.Store(read)
	m.latestEventPerSec.Store(event)
	m.latestBatchPerSec.Store(batch)

	m.readGauge.Set(float64(read))
	m.eventGauge.Set(float64(event))
	m.batchGauge.Set(float64(batch))

	if m.sources.QueueSize != nil {
		m.queueGauge.Set(float64(m.sources.QueueSize()))
	}

	if m.sources.SentTotal != nil {
		total := m.sources.SentTotal()
		m.totalProcessedEvents.Store(total)
		if delta := total - m.lastSentTotal; delta > 0 {
			m.sentCounter.Add(float64(delta))
		}
		m.lastSentTotal = total
	}
}

func (m *Metrics) logSnapshot() {
	m.logger.Info("agent metrics",
		zap.Int64("read_per_sec", m.latestReadPerSec.Load()),
		zap.Int64("event_per_sec", m.latestEventPerSec.Load()),
		zap.Int64("batch_per_sec", m.latestBatchPerSec.Load()),
		zap.Int64("total_sent_events", m.totalProcessedEvents.Load()),
		zap.Int64("total_processed_events", m.totalProcessedEvents.Load()),
		zap.Int("queue_size", queueSizeOrZero(m.sources)),
	)
}

func queueSizeOrZero(s Sources) int {
	if s.QueueSize == nil {
		return 0
	}
	return s.QueueSize()
}
