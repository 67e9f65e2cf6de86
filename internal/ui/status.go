// Package ui renders the tracker's published files for people: a plain
// listing for scripts and an interactive watch view.
package ui

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/theslyprofessor/zellij-pane-tracker/internal/model"
)

// FallbackCommand is shown for panes with no known command.
const FallbackCommand = "shell"

// Row is one tracked pane.
type Row struct {
	PaneID  string
	Name    string
	Command string
}

// Status is what the tracker last published.
type Status struct {
	Rows      []Row
	Timestamp uint64
	// HasCaptureInfo reports whether a full-capture metadata file was read.
	HasCaptureInfo bool
	// CapturedPanes is the number of panes described by that file.
	CapturedPanes int
}

// Load reads the name snapshot and, when present, the capture metadata.
// Commands come from the snapshot, which the daemon rewrites on every pane
// change; panes without one fall back to FallbackCommand. The metadata is
// only reported on, since it is as old as the last capture. A missing
// metadata file is not an error.
func Load(snapshotPath, infoPath string) (Status, error) {
	snap, err := model.ReadSnapshot(snapshotPath)
	if err != nil {
		return Status{}, fmt.Errorf("read pane names: %w", err)
	}

	st := Status{Timestamp: snap.Timestamp}
	if infoPath != "" {
		entries, err := model.ReadCaptureInfo(infoPath)
		switch {
		case err == nil:
			st.HasCaptureInfo = true
			st.CapturedPanes = len(entries)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Status{}, fmt.Errorf("read capture info: %w", err)
		}
	}

	st.Rows = make([]Row, 0, len(snap.Panes))
	for id, name := range snap.Panes {
		cmd := snap.Commands[id]
		if cmd == "" {
			cmd = FallbackCommand
		}
		st.Rows = append(st.Rows, Row{PaneID: id, Name: name, Command: cmd})
	}
	SortRows(st.Rows)
	return st, nil
}

// SortRows orders rows by pane kind, then numerically by index, so that
// terminal_10 follows terminal_9.
func SortRows(rows []Row) {
	sort.Slice(rows, func(i, j int) bool {
		ki, ni := splitPaneID(rows[i].PaneID)
		kj, nj := splitPaneID(rows[j].PaneID)
		if ki != kj {
			return ki < kj
		}
		if ni != nj {
			return ni < nj
		}
		return rows[i].PaneID < rows[j].PaneID
	})
}

func splitPaneID(id string) (string, int) {
	kind, num, ok := strings.Cut(id, "_")
	if !ok {
		return id, -1
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return id, -1
	}
	return kind, n
}

// WriteList prints one "id -> name (command)" line per row.
func WriteList(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s -> %s (%s)\n", r.PaneID, r.Name, r.Command); err != nil {
			return err
		}
	}
	return nil
}
