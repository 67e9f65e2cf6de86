package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_SnapshotOnly(t *testing.T) {
	dir := t.TempDir()
	snap := writeFile(t, dir, "names.json", `{"panes":{"terminal_2":"build","terminal_1":"editor"},"timestamp":99}`)

	st, err := Load(snap, filepath.Join(dir, "missing.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.HasCaptureInfo {
		t.Error("HasCaptureInfo should be false without an info file")
	}
	if st.Timestamp != 99 {
		t.Errorf("Timestamp: got %d", st.Timestamp)
	}
	want := []Row{
		{PaneID: "terminal_1", Name: "editor", Command: FallbackCommand},
		{PaneID: "terminal_2", Name: "build", Command: FallbackCommand},
	}
	if len(st.Rows) != len(want) {
		t.Fatalf("rows: got %+v", st.Rows)
	}
	for i := range want {
		if st.Rows[i] != want[i] {
			t.Errorf("row %d: got %+v, want %+v", i, st.Rows[i], want[i])
		}
	}
}

func TestLoad_CommandsFromSnapshot(t *testing.T) {
	dir := t.TempDir()
	snap := writeFile(t, dir, "names.json", `{
  "panes": {"terminal_1": "editor", "terminal_2": "logs", "plugin_0": "tab-bar"},
  "commands": {"terminal_1": "nvim"},
  "timestamp": 1
}`)
	// The capture file is older and still lists a command terminal_2 no
	// longer runs; it must not leak into the rows.
	info := writeFile(t, dir, "info.json", `[
  {"pane_id":"plugin_0","name":"tab-bar","command":null,"is_focused":false,"is_floating":false,"coordinates":"1x1 at (0,0)"},
  {"pane_id":"terminal_2","name":"logs","command":"tail -f app.log","is_focused":false,"is_floating":false,"coordinates":"80x24 at (0,1)"}
]`)

	st, err := Load(snap, info)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !st.HasCaptureInfo || st.CapturedPanes != 2 {
		t.Errorf("capture info: got has=%v panes=%d", st.HasCaptureInfo, st.CapturedPanes)
	}

	want := []Row{
		{PaneID: "plugin_0", Name: "tab-bar", Command: FallbackCommand},
		{PaneID: "terminal_1", Name: "editor", Command: "nvim"},
		{PaneID: "terminal_2", Name: "logs", Command: FallbackCommand},
	}
	if len(st.Rows) != len(want) {
		t.Fatalf("rows: got %+v", st.Rows)
	}
	for i := range want {
		if st.Rows[i] != want[i] {
			t.Errorf("row %d: got %+v, want %+v", i, st.Rows[i], want[i])
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json"), ""); err == nil {
		t.Error("expected error for a missing snapshot")
	}

	snap := writeFile(t, dir, "names.json", `{"panes":{}}`)
	info := writeFile(t, dir, "info.json", `{not json`)
	if _, err := Load(snap, info); err == nil {
		t.Error("expected error for malformed capture info")
	}
}

func TestSortRows_NumericIndex(t *testing.T) {
	rows := []Row{
		{PaneID: "terminal_10"},
		{PaneID: "terminal_9"},
		{PaneID: "plugin_3"},
		{PaneID: "terminal_1"},
	}
	SortRows(rows)

	want := []string{"plugin_3", "terminal_1", "terminal_9", "terminal_10"}
	for i, id := range want {
		if rows[i].PaneID != id {
			t.Errorf("position %d: got %s, want %s", i, rows[i].PaneID, id)
		}
	}
}

func TestWriteList(t *testing.T) {
	var buf bytes.Buffer
	err := WriteList(&buf, []Row{
		{PaneID: "terminal_1", Name: "editor", Command: "nvim"},
		{PaneID: "terminal_2", Name: "Pane #2", Command: "shell"},
	})
	if err != nil {
		t.Fatalf("WriteList: %v", err)
	}
	want := "terminal_1 -> editor (nvim)\nterminal_2 -> Pane #2 (shell)\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
