package uploader

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/MasLazu/suricata-sensor-agent/pkg/sensorpb"
)

type fakeDrainer struct {
	mu     sync.Mutex
	events [][]*sensorpb.SensorEvent
}

func (f *fakeDrainer) enqueue(events []*sensorpb.SensorEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, events)
}

func (f *fakeDrainer) Drain() []*sensorpb.SensorEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.events) == 0 {
		return nil
	}
	next := f.events[0]
	f.events = f.events[1:]
	return next
}

type fakeServer struct {
	mu       sync.Mutex
	received []*sensorpb.SensorEvent
}

func (s *fakeServer) StreamData(stream sensorpb.SensorService_StreamDataServer) error {
	for {
		event, err := stream.Recv()
		if err != nil {
			break
		}
		s.mu.Lock()
		s.received = append(s.received, event)
		s.mu.Unlock()
	}
	return stream.SendAndClose(&sensorpb.StreamAck{EventsReceived: 1})
}

func (s *fakeServer) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.received)
}

func startFakeServer(t *testing.T) (addr string, srv *fakeServer, stop func()) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	gs := grpc.NewServer()
	fs := &fakeServer{}
	sensorpb.RegisterSensorServiceServer(gs, fs)

	go func() { _ = gs.Serve(lis) }()

	return lis.Addr().String(), fs, func() {
		gs.Stop()
		lis.Close()
	}
}

func TestUploaderStreamsDrainedBatches(t *testing.T) {
	addr, fs, stop := startFakeServer(t)
	defer stop()

	drainer := &fakeDrainer{}
	drainer.enqueue([]*sensorpb.SensorEvent{
		{SensorID: "sensor1", EventHashSha256: "a"},
		{SensorID: "sensor1", EventHashSha256: "b"},
	})

	u := New(addr, true, drainer, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		u.Run(ctx)
		close(done)
	}()

	deadline := time.Now().Add(1500 * time.Millisecond)
	for time.Now().Before(deadline) && fs.count() < 2 {
		time.Sleep(10 * time.Millisecond)
	}

	assert.Equal(t, 2, fs.count())
	cancel()
	<-done
}

func TestUploaderCountsAtDrainNotOnSendSuccess(t *testing.T) {
	addr, fs, stop := startFakeServer(t)
	defer stop()

	drainer := &fakeDrainer{}
	drainer.enqueue([]*sensorpb.SensorEvent{
		{SensorID: "sensor1", EventHashSha256: "a", Metrics: []*sensorpb.Metric{{}, {}}},
		{SensorID: "sensor1", EventHashSha256: "b", Metrics: []*sensorpb.Metric{{}}},
	})

	u := New(addr, true, drainer, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		u.Run(ctx)
		close(done)
	}()

	deadline := time.Now().Add(1500 * time.Millisecond)
	for time.Now().Before(deadline) && fs.count() < 2 {
		time.Sleep(10 * time.Millisecond)
	}

	// The drain produced one batch of two events carrying three metrics
	// total; the counters must reflect that regardless of whether the
	// RPC send afterwards succeeded.
	assert.EqualValues(t, 3, u.TotalSentEvents())
	assert.EqualValues(t, 1, u.BatchThisSec())

	cancel()
	<-done
}

func TestUploaderDoesNotCountUndrainedBatches(t *testing.T) {
	drainer := &fakeDrainer{}
	u := New("127.0.0.1:1", true, drainer, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	u.Run(ctx)

	assert.Zero(t, u.TotalSentEvents())
	assert.Zero(t, u.BatchThisSec())
}

func TestUploaderDialUsesInsecureCredentials(t *testing.T) {
	u := New("127.0.0.1:0", true, &fakeDrainer{}, zap.NewNop())
	conn, err := u.dial()
	require.NoError(t, err)
	defer conn.Close()
	assert.NotNil(t, conn)
}
