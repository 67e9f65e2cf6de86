package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "pane-tracker"

// Metrics holds all OTEL metric instruments for pane-tracker.
// All methods are safe on a nil *Metrics.
type Metrics struct {
	// Reconciliation
	Reconciliations metric.Int64Counter
	PanesTracked    metric.Int64Gauge
	FullCaptures    metric.Int64Counter

	// Command executor (partitioned by command kind)
	Commands        metric.Int64Counter
	CommandsDropped metric.Int64Counter

	// Inbound notifications rejected by the collector (partitioned by reason)
	NotificationsRejected metric.Int64Counter
}

// NewMetrics creates all metric instruments. Returns no-op instruments
// when no MeterProvider is registered (safe to call unconditionally).
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.Reconciliations, err = meter.Int64Counter("tracker.reconciliations",
		metric.WithDescription("Number of pane manifests reconciled into the state store"))
	if err != nil {
		return nil, err
	}

	m.PanesTracked, err = meter.Int64Gauge("tracker.panes",
		metric.WithDescription("Number of panes in the most recent manifest"),
		metric.WithUnit("{pane}"))
	if err != nil {
		return nil, err
	}

	m.FullCaptures, err = meter.Int64Counter("tracker.captures.full",
		metric.WithDescription("Number of user-triggered full captures"))
	if err != nil {
		return nil, err
	}

	m.Commands, err = meter.Int64Counter("executor.commands",
		metric.WithDescription("Commands queued for execution, by kind (dump, symlink, write)"))
	if err != nil {
		return nil, err
	}

	m.CommandsDropped, err = meter.Int64Counter("executor.commands.dropped",
		metric.WithDescription("Commands dropped because the executor queue was full"))
	if err != nil {
		return nil, err
	}

	m.NotificationsRejected, err = meter.Int64Counter("events.rejected",
		metric.WithDescription("Inbound notifications dropped as oversized, malformed or invalid"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordReconciliation records one reconciliation of a manifest with panes panes.
func (m *Metrics) RecordReconciliation(ctx context.Context, panes int) {
	if m == nil {
		return
	}
	m.Reconciliations.Add(ctx, 1)
	m.PanesTracked.Record(ctx, int64(panes))
}

// RecordFullCapture records a user-triggered full capture.
func (m *Metrics) RecordFullCapture(ctx context.Context) {
	if m == nil {
		return
	}
	m.FullCaptures.Add(ctx, 1)
}

// RecordCommand records a queued command of the given kind.
func (m *Metrics) RecordCommand(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.Commands.Add(ctx, 1, metric.WithAttributes(attribute.String("command.kind", kind)))
}

// RecordCommandDropped records a command dropped on a full queue.
func (m *Metrics) RecordCommandDropped(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.CommandsDropped.Add(ctx, 1, metric.WithAttributes(attribute.String("command.kind", kind)))
}

// RecordRejected records a dropped inbound notification.
func (m *Metrics) RecordRejected(ctx context.Context, reason string) {
	if m == nil {
		return
	}
	m.NotificationsRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}
