// Command sensor-agent ingests Suricata EVE JSON alerts from a local
// Unix domain socket, normalizes and coalesces them, and streams the
// result to a remote collector over gRPC.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/grafana/dskit/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc/encoding"

	"github.com/MasLazu/suricata-sensor-agent/internal/agentconfig"
	"github.com/MasLazu/suricata-sensor-agent/internal/agentlog"
	"github.com/MasLazu/suricata-sensor-agent/internal/listener"
	"github.com/MasLazu/suricata-sensor-agent/internal/metrics"
	"github.com/MasLazu/suricata-sensor-agent/internal/parser"
	"github.com/MasLazu/suricata-sensor-agent/internal/queue"
	"github.com/MasLazu/suricata-sensor-agent/internal/uploader"
	"github.com/MasLazu/suricata-sensor-agent/pkg/gogocodec"
)

const rawLineChannelCapacity = 10000

func main() {
	// Register the gogocodec as early as possible.
	encoding.RegisterCodec(gogocodec.NewCodec())

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	cfg, err := agentconfig.Load(fs, os.Args[1:])
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := agentlog.New(cfg.Verbose)
	defer logger.Sync() //nolint:errcheck

	q := queue.New(0)

	workerCount := cfg.ResolveMaxClients()
	sendChans := make([]chan<- string, workerCount)
	recvChans := make([]<-chan string, workerCount)
	for i := 0; i < workerCount; i++ {
		ch := make(chan string, rawLineChannelCapacity)
		sendChans[i] = ch
		recvChans[i] = ch
	}

	lst := listener.New(cfg.File, sendChans, logger)
	pool := parser.New(cfg.SensorID, q, logger)
	up := uploader.New(cfg.Addr(), cfg.Insecure, q, logger)

	reg := prometheus.NewRegistry()
	mx := metrics.New(metrics.Sources{
		ReadThisSec:  lst.ReadThisSec,
		EventThisSec: pool.EventThisSec,
		BatchThisSec: up.BatchThisSec,
		QueueSize:    q.Size,
		SentTotal:    up.TotalSentEvents,
	}, reg, logger)

	listenerSvc := services.NewBasicService(nil, func(ctx context.Context) error {
		errCh := make(chan error, 1)
		go func() { errCh <- lst.Start() }()
		select {
		case <-ctx.Done():
			return nil
		case err := <-errCh:
			return err
		}
	}, nil)

	parserSvc := services.NewBasicService(nil, func(ctx context.Context) error {
		done := make(chan struct{})
		go func() {
			pool.Run(recvChans)
			close(done)
		}()
		select {
		case <-ctx.Done():
			return nil
		case <-done:
			return nil
		}
	}, nil)

	uploaderSvc := services.NewBasicService(nil, func(ctx context.Context) error {
		up.Run(ctx)
		return nil
	}, nil)

	metricsSvc := services.NewBasicService(nil, func(ctx context.Context) error {
		mx.Run(ctx)
		return nil
	}, nil)

	metricsServer := &http.Server{Addr: cfg.MetricsListenAddress}
	metricsHTTPSvc := services.NewBasicService(nil, func(ctx context.Context) error {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer.Handler = mux

		errCh := make(chan error, 1)
		go func() { errCh <- metricsServer.ListenAndServe() }()
		select {
		case <-ctx.Done():
			return nil
		case err := <-errCh:
			if err == http.ErrServerClosed {
				return nil
			}
			return err
		}
	}, func(_ error) error {
		return metricsServer.Close()
	})

	sm, err := services.NewManager(listenerSvc, parserSvc, uploaderSvc, metricsSvc, metricsHTTPSvc)
	if err != nil {
		return fmt.Errorf("building service manager: %w", err)
	}

	failed := make(chan error, 1)
	sm.AddListener(services.NewManagerListener(
		func() { logger.Info("sensor agent started") },
		func() { logger.Info("sensor agent stopped") },
		func(s services.Service) {
			failed <- s.FailureCase()
			sm.StopAsync()
		},
	))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("shutdown signal received")
		sm.StopAsync()
	}()

	if err := sm.StartAsync(context.Background()); err != nil {
		return fmt.Errorf("starting service manager: %w", err)
	}
	if err := sm.AwaitHealthy(context.Background()); err != nil {
		return fmt.Errorf("waiting for services to become healthy: %w", err)
	}

	sm.AwaitStopped(context.Background())

	select {
	case err := <-failed:
		if err != nil {
			return fmt.Errorf("service failed: %w", err)
		}
	default:
	}

	return nil
}
