// Package listener accepts the single inbound Suricata EVE connection
// and fans newline-delimited JSON lines out to the parser pool's raw
// line channels (spec.md §4.3).
package listener

import (
	"bufio"
	"errors"
	"io"
	"net"
	"os"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Listener binds a Unix domain socket and distributes incoming lines
// round-robin across a fixed set of worker channels.
type Listener struct {
	path     string
	logger   *zap.Logger
	channels []chan<- string

	readThisSec *atomic.Int64
}

// New returns a Listener bound to path (not yet listening) that will
// round-robin lines across channels.
func New(path string, channels []chan<- string, logger *zap.Logger) *Listener {
	return &Listener{
		path:        path,
		logger:      logger,
		channels:    channels,
		readThisSec: atomic.NewInt64(0),
	}
}

// ReadThisSec returns the current value of, and resets, the per-second
// read counter. Intended to be called once a second by internal/metrics.
func (l *Listener) ReadThisSec() int64 {
	return l.readThisSec.Swap(0)
}

// Start unlinks any stale socket file, binds a new Unix domain socket at
// l.path, widens its permissions, and then accepts and serves
// connections serially for the life of the process: once bound it never
// returns, and accept errors are logged and retried. The only error it
// returns is a bind failure, which is fatal to the caller (spec.md §7
// "Socket bind failure").
func (l *Listener) Start() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		l.logger.Warn("removing stale socket file", zap.String("path", l.path), zap.Error(err))
	}

	ln, err := net.Listen("unix", l.path)
	if err != nil {
		return err
	}
	defer ln.Close()

	if err := os.Chmod(l.path, 0o666); err != nil {
		l.logger.Warn("setting socket permissions", zap.String("path", l.path), zap.Error(err))
	}

	n := uint64(len(l.channels))
	var counter uint64

	for {
		conn, err := ln.Accept()
		if err != nil {
			l.logger.Error("accept failed", zap.Error(err))
			continue
		}
		counter = l.serve(conn, counter, n)
	}
}

// serve reads newline-delimited lines from conn until EOF or a send
// failure, distributing them round-robin starting at counter. It
// returns the updated counter.
func (l *Listener) serve(conn net.Conn, counter, n uint64) (ret uint64) {
	ret = counter
	defer conn.Close()

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				l.logger.Error("reading line", zap.Error(err))
				continue
			}
			return ret
		}
		if line == "" {
			continue
		}

		if !l.send(ret%n, line) {
			l.logger.Error("worker channel send failed, closing connection")
			return ret
		}
		l.readThisSec.Inc()
		ret++
	}
}

// send delivers line to the worker channel at idx. It blocks, which
// back-pressures the socket reader and transitively the sensor itself
// (spec.md §5 "Channels"); it reports false only if the channel has
// been closed out from under it, which the caller treats as a fatal
// send failure for the current connection.
func (l *Listener) send(idx uint64, line string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	l.channels[idx] <- line
	return true
}
