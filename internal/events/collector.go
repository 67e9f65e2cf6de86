package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	ppotel "github.com/theslyprofessor/zellij-pane-tracker/internal/otel"
)

const (
	defaultMaxPayloadBytes = 256 * 1024
	readErrorBackoff       = 100 * time.Millisecond
)

// Collector receives notification datagrams on a unix socket and forwards
// the valid ones, in arrival order, to a channel.
type Collector struct {
	out  chan<- Notification
	path string

	MaxPayloadBytes int
	Logger          *slog.Logger
	Metrics         *ppotel.Metrics // nil-safe

	mu     sync.Mutex
	conn   *net.UnixConn
	closed bool
	done   chan struct{}
}

func NewCollector(out chan<- Notification, socketPath string) *Collector {
	return &Collector{
		out:             out,
		path:            socketPath,
		MaxPayloadBytes: defaultMaxPayloadBytes,
	}
}

func (c *Collector) SocketPath() string {
	return c.path
}

// Start binds the socket and begins forwarding. The socket is closed and
// removed when ctx is done.
func (c *Collector) Start(ctx context.Context) error {
	if c.out == nil {
		return fmt.Errorf("output channel is required")
	}
	if c.path == "" {
		return fmt.Errorf("socket path is required")
	}
	if c.MaxPayloadBytes <= 0 {
		c.MaxPayloadBytes = defaultMaxPayloadBytes
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}

	// Only a directory we create is restricted; a shared one like /tmp is left alone.
	dir := filepath.Dir(c.path)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create socket dir: %w", err)
		}
	}
	if err := os.Remove(c.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove stale socket: %w", err)
	}

	addr, err := net.ResolveUnixAddr("unixgram", c.path)
	if err != nil {
		return fmt.Errorf("resolve unix addr: %w", err)
	}
	conn, err := net.ListenUnixgram("unixgram", addr)
	if err != nil {
		return fmt.Errorf("listen unixgram: %w", err)
	}
	if err := os.Chmod(c.path, 0o600); err != nil {
		_ = conn.Close()
		return fmt.Errorf("chmod socket: %w", err)
	}
	// Let large manifests through; the kernel default is smaller than ours.
	_ = conn.SetReadBuffer(c.MaxPayloadBytes * 4)

	c.mu.Lock()
	c.conn = conn
	c.closed = false
	c.done = make(chan struct{})
	c.mu.Unlock()

	go func() {
		<-ctx.Done()
		c.close()
	}()

	go c.readLoop(ctx)

	return nil
}

// Done is closed once the read loop has exited.
func (c *Collector) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

func (c *Collector) readLoop(ctx context.Context) {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()
	defer close(done)

	// One spare byte so that an exactly-too-large datagram is detectable.
	buf := make([]byte, c.MaxPayloadBytes+1)
	for {
		c.mu.Lock()
		conn := c.conn
		c.mu.Unlock()
		if conn == nil {
			return
		}

		n, _, err := conn.ReadFromUnix(buf)
		if err != nil {
			if c.isClosed() {
				return
			}
			if errors.Is(err, net.ErrClosed) {
				c.Logger.Warn("notification socket closed unexpectedly", "socket", c.path)
				return
			}
			c.Logger.Debug("reading notification", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(readErrorBackoff):
			}
			continue
		}

		if n <= 0 || n > c.MaxPayloadBytes {
			c.reject(ctx, "oversized", fmt.Errorf("%d bytes exceeds limit of %d", n, c.MaxPayloadBytes))
			continue
		}

		var note Notification
		if err := json.Unmarshal(buf[:n], &note); err != nil {
			c.reject(ctx, "malformed", err)
			continue
		}
		if err := note.Validate(); err != nil {
			c.reject(ctx, "invalid", err)
			continue
		}

		select {
		case c.out <- note:
		case <-ctx.Done():
			return
		}
	}
}

func (c *Collector) reject(ctx context.Context, reason string, err error) {
	c.Metrics.RecordRejected(ctx, reason)
	c.Logger.Debug("dropping notification", "reason", reason, "error", err)
}

func (c *Collector) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Collector) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	_ = os.Remove(c.path)
}
