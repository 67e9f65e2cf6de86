package tracker

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/theslyprofessor/zellij-pane-tracker/internal/executor"
	"github.com/theslyprofessor/zellij-pane-tracker/internal/model"
	"github.com/theslyprofessor/zellij-pane-tracker/internal/mux"
)

// Dumper builds the host script that dumps one pane's content to a file.
// mux.Multiplexer implementations satisfy it.
type Dumper interface {
	DumpScript(index int, path string) string
}

// Director turns a manifest into capture commands. It never touches the
// filesystem itself; every artifact is produced by a submitted command.
type Director struct {
	state   *State
	exec    executor.Executor
	dumper  Dumper
	allow   SymlinkPolicy
	marshal func(v any) ([]byte, error)
	logger  *slog.Logger
}

func NewDirector(state *State, exec executor.Executor, dumper Dumper, allow SymlinkPolicy, logger *slog.Logger) *Director {
	if allow == nil {
		allow = SkipPrefix(DefaultSkipPrefix)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Director{
		state:   state,
		exec:    exec,
		dumper:  dumper,
		allow:   allow,
		marshal: marshalPretty,
		logger:  logger,
	}
}

// AutoCapture dumps every terminal pane in m to its index-keyed file and,
// for panes with a usable name, links a name-keyed path to that dump.
// Plugin panes are skipped.
func (d *Director) AutoCapture(ctx context.Context, m model.Manifest) {
	m.Each(func(_ int, p model.PaneDescriptor) {
		if p.IsPlugin {
			return
		}
		dump := model.DumpPath(p.Index)
		d.exec.Submit(executor.Command{
			Kind:   executor.KindDump,
			Script: d.dumper.DumpScript(p.Index, dump),
			Pane:   p.Index,
			Path:   dump,
		})

		name, ok := d.state.Name(p.ID())
		if !ok {
			return
		}
		safe := SanitizeName(name)
		if safe == "" || !d.allow(safe) {
			return
		}
		link := model.LinkPath(safe)
		d.exec.Submit(executor.Command{
			Kind:   executor.KindSymlink,
			Script: mux.SymlinkScript(dump, link),
			Pane:   p.Index,
			Path:   link,
		})
	})
}

// FullCapture writes the metadata of every pane in m, plugins included,
// then runs AutoCapture.
func (d *Director) FullCapture(ctx context.Context, m model.Manifest) {
	entries := d.CaptureEntries(m)
	if payload, err := d.marshal(entries); err != nil {
		d.logger.Debug("skipping capture info write", "error", err)
	} else {
		d.exec.Submit(executor.Command{
			Kind:   executor.KindWrite,
			Script: mux.WriteScript(model.InfoPath),
			Stdin:  payload,
			Path:   model.InfoPath,
		})
	}

	d.AutoCapture(ctx, m)
}

// CaptureEntries builds the ordered metadata sequence for m. Names and
// commands come from the state tables, not from m.
func (d *Director) CaptureEntries(m model.Manifest) []model.CaptureEntry {
	entries := make([]model.CaptureEntry, 0, m.Count())
	m.Each(func(_ int, p model.PaneDescriptor) {
		id := p.ID()
		name, _ := d.state.Name(id)
		entry := model.CaptureEntry{
			PaneID:      id,
			Name:        name,
			IsFocused:   p.IsFocused,
			IsFloating:  p.IsFloating,
			Coordinates: p.Geometry(),
		}
		if cmd, ok := d.state.Command(id); ok {
			entry.Command = &cmd
		}
		entries = append(entries, entry)
	})
	return entries
}

func marshalPretty(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
