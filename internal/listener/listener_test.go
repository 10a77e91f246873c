package listener

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListenerRoundRobinsAcrossChannels(t *testing.T) {
	dir := t.TempDir()
	sockPath := filepath.Join(dir, "suricata.sock")

	ch0 := make(chan string, 10)
	ch1 := make(chan string, 10)
	l := New(sockPath, []chan<- string{ch0, ch1}, zap.NewNop())

	go func() {
		_ = l.Start()
	}()

	waitForSocket(t, sockPath)

	conn, err := net.Dial("unix", sockPath)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("line-a\nline-b\nline-c\nline-d\n"))
	require.NoError(t, err)

	assertReceived(t, ch0, "line-a")
	assertReceived(t, ch1, "line-b")
	assertReceived(t, ch0, "line-c")
	assertReceived(t, ch1, "line-d")
}

func TestListenerSetsSocketPermissions(t *testing.T) {
	dir := t.TempDir()
	sockPath := filepath.Join(dir, "suricata.sock")

	ch0 := make(chan string, 10)
	l := New(sockPath, []chan<- string{ch0}, zap.NewNop())

	go func() {
		_ = l.Start()
	}()

	waitForSocket(t, sockPath)

	info, err := os.Stat(sockPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o666), info.Mode().Perm())
}

func TestListenerReadThisSecCounts(t *testing.T) {
	dir := t.TempDir()
	sockPath := filepath.Join(dir, "suricata.sock")

	ch0 := make(chan string, 10)
	l := New(sockPath, []chan<- string{ch0}, zap.NewNop())

	go func() {
		_ = l.Start()
	}()
	waitForSocket(t, sockPath)

	conn, err := net.Dial("unix", sockPath)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("one\ntwo\n"))
	require.NoError(t, err)

	assertReceived(t, ch0, "one")
	assertReceived(t, ch0, "two")

	time.Sleep(10 * time.Millisecond)
	assert.EqualValues(t, 2, l.ReadThisSec())
	assert.EqualValues(t, 0, l.ReadThisSec())
}

func waitForSocket(t *testing.T, path string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); err == nil {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("socket %s never appeared", path)
}

func assertReceived(t *testing.T, ch <-chan string, want string) {
	t.Helper()
	select {
	case got := <-ch:
		assert.Equal(t, want+"\n", got)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %q", want)
	}
}
