// Package tracker reconciles pane manifests into flat name/command tables
// and republishes them as files other tools can read.
//
// A Tracker handles one notification at a time. A pane update rebuilds the
// state, exports the name snapshot and dumps every terminal pane; a capture
// request additionally writes per-pane metadata for the last manifest seen.
package tracker

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/theslyprofessor/zellij-pane-tracker/internal/events"
	"github.com/theslyprofessor/zellij-pane-tracker/internal/executor"
	"github.com/theslyprofessor/zellij-pane-tracker/internal/model"
	ppotel "github.com/theslyprofessor/zellij-pane-tracker/internal/otel"
)

var tracer = otel.Tracer("pane-tracker")

// Options wires a Tracker to its collaborators.
type Options struct {
	Executor executor.Executor
	Dumper   Dumper
	// Symlink decides which sanitized names get a symlink. Nil suppresses
	// names starting with DefaultSkipPrefix.
	Symlink SymlinkPolicy
	Clock   func() time.Time
	Logger  *slog.Logger
	Metrics *ppotel.Metrics // nil-safe
}

type Tracker struct {
	state    *State
	exporter *Exporter
	director *Director
	logger   *slog.Logger
	metrics  *ppotel.Metrics
}

func New(opts Options) *Tracker {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	state := NewState()
	return &Tracker{
		state:    state,
		exporter: NewExporter(opts.Executor, opts.Clock, logger),
		director: NewDirector(state, opts.Executor, opts.Dumper, opts.Symlink, logger),
		logger:   logger,
		metrics:  opts.Metrics,
	}
}

// State exposes the tracked tables for reading.
func (t *Tracker) State() *State {
	return t.state
}

// Run handles notifications from in until ctx is done or in is closed.
func (t *Tracker) Run(ctx context.Context, in <-chan events.Notification) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case n, ok := <-in:
			if !ok {
				return nil
			}
			t.Handle(ctx, n)
		}
	}
}

// Handle reacts to a single notification. Kinds other than pane_update and
// capture are ignored.
func (t *Tracker) Handle(ctx context.Context, n events.Notification) {
	switch n.Kind {
	case events.KindPaneUpdate:
		if n.Manifest == nil {
			return
		}
		t.Reconcile(ctx, *n.Manifest)
	case events.KindCapture:
		m, ok := t.state.Manifest()
		if !ok {
			t.logger.Info("capture requested before any pane update, ignoring")
			return
		}
		t.FullCapture(ctx, m)
	}
}

// Reconcile rebuilds the state from m, exports the snapshot, auto-captures
// and finally remembers m for later capture requests.
func (t *Tracker) Reconcile(ctx context.Context, m model.Manifest) {
	ctx, span := tracer.Start(ctx, "reconcile",
		trace.WithAttributes(attribute.Int("panes.count", m.Count())))
	defer span.End()

	t.state.Rebuild(m)
	t.exporter.Export(ctx, t.state)
	t.director.AutoCapture(ctx, m)
	t.state.SetManifest(m)

	t.metrics.RecordReconciliation(ctx, t.state.Len())
	t.logger.Debug("reconciled pane manifest", "panes", t.state.Len(), "tabs", len(m.Panes))
}

// FullCapture writes pane metadata for m and re-runs the auto-capture pass.
func (t *Tracker) FullCapture(ctx context.Context, m model.Manifest) {
	captureID := uuid.NewString()
	ctx, span := tracer.Start(ctx, "full_capture",
		trace.WithAttributes(
			attribute.String("capture.id", captureID),
			attribute.Int("panes.count", m.Count()),
		))
	defer span.End()

	t.director.FullCapture(ctx, m)

	t.metrics.RecordFullCapture(ctx)
	t.logger.Info("full capture issued", "capture_id", captureID, "panes", m.Count(), "info", model.InfoPath)
}
