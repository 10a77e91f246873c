package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MasLazu/suricata-sensor-agent/internal/queue"
)

const sampleAlertLine = `{"timestamp":"2025-12-15T07:46:41.123456+0000","src_ip":"10.0.0.1","src_port":1234,"dest_ip":"10.0.0.2","dest_port":80,"proto":"TCP","pkt_len":100,"alert":{"action":"allowed","gid":1,"signature_id":2100498,"rev":9,"signature":"ET POLICY test","category":"Potentially Bad Traffic","severity":2}}` + "\n"

func TestPoolQueuesNormalizedEvent(t *testing.T) {
	q := queue.New(0)
	p := New("sensor-xyz", q, zap.NewNop())

	ch := make(chan string, 1)
	ch <- sampleAlertLine
	close(ch)

	p.Run([]<-chan string{ch})

	events := q.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, "sensor-xyz", events[0].SensorID)
	assert.Equal(t, "1:2100498:9", events[0].SnortRule)
	require.Len(t, events[0].Metrics, 1)
}

func TestPoolOverwritesUpstreamSensorID(t *testing.T) {
	q := queue.New(0)
	p := New("agent-configured", q, zap.NewNop())

	line := `{"timestamp":"2025-12-15T07:46:41.123456+0000","metadata":{"sensor_id":"spoofed"},"alert":{"gid":1,"signature_id":1,"rev":1,"signature":"x","category":"y","severity":1,"action":"allowed"}}` + "\n"
	ch := make(chan string, 1)
	ch <- line
	close(ch)

	p.Run([]<-chan string{ch})

	events := q.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, "agent-configured", events[0].SensorID)
}

func TestPoolDropsMalformedJSON(t *testing.T) {
	q := queue.New(0)
	p := New("sensor1", q, zap.NewNop())

	ch := make(chan string, 1)
	ch <- "not json\n"
	close(ch)

	p.Run([]<-chan string{ch})

	assert.Empty(t, q.Drain())
}

func TestPoolDropsRecordsWithoutAlertSubRecord(t *testing.T) {
	q := queue.New(0)
	p := New("sensor1", q, zap.NewNop())

	ch := make(chan string, 1)
	ch <- `{"timestamp":"2025-12-15T07:46:41.123456+0000","event_type":"flow"}` + "\n"
	close(ch)

	p.Run([]<-chan string{ch})

	assert.Empty(t, q.Drain())
}

func TestPoolExitsWhenChannelsClose(t *testing.T) {
	q := queue.New(0)
	p := New("sensor1", q, zap.NewNop())

	ch := make(chan string)
	close(ch)

	done := make(chan struct{})
	go func() {
		p.Run([]<-chan string{ch})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pool did not exit after channel close")
	}
}

func TestPoolEventThisSecCounts(t *testing.T) {
	q := queue.New(0)
	p := New("sensor1", q, zap.NewNop())

	ch := make(chan string, 2)
	ch <- sampleAlertLine
	ch <- sampleAlertLine
	close(ch)

	p.Run([]<-chan string{ch})

	assert.EqualValues(t, 2, p.EventThisSec())
	assert.EqualValues(t, 0, p.EventThisSec())
}
