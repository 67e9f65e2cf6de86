package executor

import (
	"bytes"
	"context"
	"hash/fnv"
	"log/slog"
	"os/exec"
	"sync"
	"time"

	ppotel "github.com/theslyprofessor/zellij-pane-tracker/internal/otel"
)

const (
	defaultWorkers   = 4
	defaultQueueSize = 256
	defaultTimeout   = 10 * time.Second
)

// OSRunner runs scripts with "sh -c".
type OSRunner struct{}

func (OSRunner) Run(ctx context.Context, script string, stdin []byte) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", script)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	return cmd.Run()
}

// ShellConfig configures a Shell executor. Zero values pick defaults.
type ShellConfig struct {
	Workers   int
	QueueSize int
	Timeout   time.Duration
	Runner    Runner
	Logger    *slog.Logger
	Metrics   *ppotel.Metrics // nil-safe
}

// Shell executes commands on a fixed set of workers. Commands for the same
// path always land on the same worker, so two writes of one file run in
// submission order. A full queue drops the command instead of blocking the
// submitter.
type Shell struct {
	runner  Runner
	timeout time.Duration
	logger  *slog.Logger
	metrics *ppotel.Metrics
	queues  []chan Command

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewShell starts the workers. Call Close to stop them.
func NewShell(cfg ShellConfig) *Shell {
	if cfg.Workers < 1 {
		cfg.Workers = defaultWorkers
	}
	if cfg.QueueSize < 1 {
		cfg.QueueSize = defaultQueueSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Runner == nil {
		cfg.Runner = OSRunner{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	s := &Shell{
		runner:  cfg.Runner,
		timeout: cfg.Timeout,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		queues:  make([]chan Command, cfg.Workers),
	}
	for i := range s.queues {
		s.queues[i] = make(chan Command, cfg.QueueSize)
		s.wg.Add(1)
		go s.work(s.queues[i])
	}
	return s
}

// Submit queues cmd. It never blocks.
func (s *Shell) Submit(cmd Command) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return
	}

	select {
	case s.queues[s.shard(cmd.Path)] <- cmd:
		s.metrics.RecordCommand(context.Background(), string(cmd.Kind))
	default:
		s.metrics.RecordCommandDropped(context.Background(), string(cmd.Kind))
		s.logger.Warn("command queue full, dropping command", "kind", cmd.Kind, "path", cmd.Path)
	}
}

// Close stops accepting commands and waits for queued ones to finish.
func (s *Shell) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for _, q := range s.queues {
		close(q)
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Shell) work(queue <-chan Command) {
	defer s.wg.Done()
	for cmd := range queue {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		err := s.runner.Run(ctx, cmd.Script, cmd.Stdin)
		cancel()
		if err != nil {
			s.logger.Debug("command failed", "kind", cmd.Kind, "path", cmd.Path, "error", err)
		}
	}
}

func (s *Shell) shard(path string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(path))
	return int(h.Sum32() % uint32(len(s.queues)))
}
