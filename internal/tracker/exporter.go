package tracker

import (
	"context"
	"log/slog"
	"time"

	"github.com/theslyprofessor/zellij-pane-tracker/internal/executor"
	"github.com/theslyprofessor/zellij-pane-tracker/internal/model"
	"github.com/theslyprofessor/zellij-pane-tracker/internal/mux"
)

// Exporter publishes the name and command tables as a timestamped snapshot
// document.
type Exporter struct {
	exec    executor.Executor
	clock   func() time.Time
	marshal func(v any) ([]byte, error)
	logger  *slog.Logger
}

func NewExporter(exec executor.Executor, clock func() time.Time, logger *slog.Logger) *Exporter {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{exec: exec, clock: clock, marshal: marshalPretty, logger: logger}
}

// Export overwrites the snapshot file with the current tables, even when
// they are empty.
func (e *Exporter) Export(ctx context.Context, state *State) {
	payload, err := e.marshal(e.Snapshot(state))
	if err != nil {
		e.logger.Debug("skipping snapshot write", "error", err)
		return
	}
	e.exec.Submit(executor.Command{
		Kind:   executor.KindWrite,
		Script: mux.WriteScript(model.SnapshotPath),
		Stdin:  payload,
		Path:   model.SnapshotPath,
	})
}

// Snapshot builds the document Export would write.
func (e *Exporter) Snapshot(state *State) model.Snapshot {
	return model.Snapshot{
		Panes:     state.Names(),
		Commands:  state.Commands(),
		Timestamp: unixSeconds(e.clock()),
	}
}

// unixSeconds returns t as seconds since the epoch, or 0 for times before it.
func unixSeconds(t time.Time) uint64 {
	secs := t.Unix()
	if secs < 0 {
		return 0
	}
	return uint64(secs)
}
