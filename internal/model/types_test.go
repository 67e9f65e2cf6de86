package model

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPaneID(t *testing.T) {
	tests := []struct {
		name   string
		plugin bool
		index  int
		want   string
	}{
		{name: "terminal", plugin: false, index: 7, want: "terminal_7"},
		{name: "plugin", plugin: true, index: 7, want: "plugin_7"},
		{name: "zero index", plugin: false, index: 0, want: "terminal_0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PaneID(tt.plugin, tt.index); got != tt.want {
				t.Errorf("PaneID(%v, %d) = %q, want %q", tt.plugin, tt.index, got, tt.want)
			}
		})
	}
}

func TestPaneDescriptor_Geometry(t *testing.T) {
	d := PaneDescriptor{Columns: 120, Rows: 40, X: 0, Y: 1}
	if got := d.Geometry(); got != "120x40 at (0,1)" {
		t.Errorf("Geometry: got %q, want %q", got, "120x40 at (0,1)")
	}
}

func TestManifest_EachVisitsTabsInOrder(t *testing.T) {
	m := Manifest{Panes: map[int][]PaneDescriptor{
		2: {{Index: 5}},
		0: {{Index: 1}, {Index: 2}},
		1: {{Index: 3, IsPlugin: true}},
	}}

	var got []string
	m.Each(func(tab int, d PaneDescriptor) {
		got = append(got, d.ID())
	})

	want := "terminal_1,terminal_2,plugin_3,terminal_5"
	if strings.Join(got, ",") != want {
		t.Errorf("Each order: got %v, want %s", got, want)
	}
	if m.Count() != 4 {
		t.Errorf("Count: got %d, want 4", m.Count())
	}
}

func TestManifest_DecodesHostPayload(t *testing.T) {
	raw := `{"panes":{"0":[{"id":3,"is_plugin":false,"is_focused":true,"title":"build","terminal_command":"make","pane_columns":80,"pane_rows":24,"pane_x":0,"pane_y":0}]}}`

	var m Manifest
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	panes := m.Panes[0]
	if len(panes) != 1 {
		t.Fatalf("expected 1 pane in tab 0, got %d", len(panes))
	}
	d := panes[0]
	if d.ID() != "terminal_3" || d.Title != "build" || !d.IsFocused {
		t.Errorf("unexpected descriptor: %+v", d)
	}
	if d.Command == nil || *d.Command != "make" {
		t.Errorf("Command: got %v, want make", d.Command)
	}
}

func TestCaptureEntry_NullCommand(t *testing.T) {
	b, err := json.Marshal(CaptureEntry{PaneID: "plugin_1"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"command":null`) {
		t.Errorf("expected null command, got %s", b)
	}
}

func TestReadSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.json")
	if err := os.WriteFile(path, []byte(`{"panes":{"terminal_1":"editor"},"timestamp":42}`), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := ReadSnapshot(path)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}
	if s.Timestamp != 42 || s.Panes["terminal_1"] != "editor" {
		t.Errorf("unexpected snapshot: %+v", s)
	}
	if s.Commands == nil || len(s.Commands) != 0 {
		t.Errorf("missing commands should decode to an empty table, got %v", s.Commands)
	}
}

func TestReadSnapshot_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.json")
	if err := os.WriteFile(path, []byte(`not-json`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadSnapshot(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestPaths(t *testing.T) {
	if got := DumpPath(7); got != "/tmp/zj-pane-7.txt" {
		t.Errorf("DumpPath: got %q", got)
	}
	if got := LinkPath("build"); got != "/tmp/zj-build.txt" {
		t.Errorf("LinkPath: got %q", got)
	}
}
