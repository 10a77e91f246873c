// Package parser runs the pool of workers that turn raw EVE JSON lines
// into queued SensorEvents (spec.md §4.4).
package parser

import (
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/MasLazu/suricata-sensor-agent/internal/normalize"
	"github.com/MasLazu/suricata-sensor-agent/internal/queue"
	"github.com/MasLazu/suricata-sensor-agent/internal/suricata"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Pool runs N workers, each draining its own raw-line channel.
type Pool struct {
	sensorID string
	queue    *queue.Queue
	logger   *zap.Logger

	eventThisSec *eventCounter
}

// New returns a Pool that stamps every alert with sensorID and inserts
// normalized events into q.
func New(sensorID string, q *queue.Queue, logger *zap.Logger) *Pool {
	return &Pool{
		sensorID:     sensorID,
		queue:        q,
		logger:       logger,
		eventThisSec: newEventCounter(),
	}
}

// EventThisSec returns and resets the per-second count of events
// successfully queued across all workers.
func (p *Pool) EventThisSec() int64 {
	return p.eventThisSec.swap()
}

// Run starts one worker per channel in lines and blocks until they all
// exit, which happens once every channel is closed.
func (p *Pool) Run(lines []<-chan string) {
	done := make(chan struct{}, len(lines))
	for _, ch := range lines {
		go func(ch <-chan string) {
			p.worker(ch)
			done <- struct{}{}
		}(ch)
	}
	for range lines {
		<-done
	}
}

func (p *Pool) worker(lines <-chan string) {
	for line := range lines {
		p.handleLine(line)
	}
}

func (p *Pool) handleLine(line string) {
	var alert suricata.Alert
	if err := json.UnmarshalFromString(line, &alert); err != nil {
		p.logger.Error("parsing suricata alert line", zap.Error(err))
		return
	}

	alert.Metadata.SensorID = p.sensorID
	alert.ApplyDefaults()

	event, metric, ok := normalize.Normalize(&alert)
	if !ok {
		return
	}
	event.Metrics = append(event.Metrics, metric)

	p.queue.Add(event)
	p.eventThisSec.inc()
}
