package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/theslyprofessor/zellij-pane-tracker/internal/model"
)

func TestValidate_PaneUpdate(t *testing.T) {
	n := PaneUpdate(model.Manifest{Panes: map[int][]model.PaneDescriptor{0: {{Index: 1, Title: "shell"}}}})
	if err := n.Validate(); err != nil {
		t.Fatalf("expected valid notification, got %v", err)
	}
}

func TestValidate_EmptyManifestIsValid(t *testing.T) {
	if err := PaneUpdate(model.Manifest{}).Validate(); err != nil {
		t.Fatalf("expected empty manifest to be valid, got %v", err)
	}
}

func TestValidate_CaptureNeedsNoManifest(t *testing.T) {
	if err := CaptureRequest().Validate(); err != nil {
		t.Fatalf("expected valid capture, got %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		n    Notification
	}{
		{name: "missing kind", n: Notification{}},
		{name: "unknown kind", n: Notification{Kind: "mode_update"}},
		{name: "padded kind", n: Notification{Kind: " capture"}},
		{name: "kind with trailing newline", n: Notification{Kind: "capture\n"}},
		{name: "pane update without manifest", n: Notification{Kind: KindPaneUpdate}},
		{name: "negative pane id", n: PaneUpdate(model.Manifest{Panes: map[int][]model.PaneDescriptor{0: {{Index: -1}}}})},
		{name: "negative geometry", n: PaneUpdate(model.Manifest{Panes: map[int][]model.PaneDescriptor{0: {{Index: 1, Columns: -4}}}})},
		{name: "negative tab", n: PaneUpdate(model.Manifest{Panes: map[int][]model.PaneDescriptor{-1: {{Index: 1}}}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.n.Validate(); err == nil {
				t.Fatalf("expected validation error for %+v", tt.n)
			}
		})
	}
}

func TestNotification_WireFormat(t *testing.T) {
	b, err := json.Marshal(Notification{Kind: KindCapture})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "manifest") || strings.Contains(string(b), "ts") {
		t.Errorf("capture notification should omit manifest and zero ts: %s", b)
	}
}

func TestDefaultSocketPath(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	if got := DefaultSocketPath(); got != "/run/user/1000/zellij-pane-tracker/events.sock" {
		t.Errorf("DefaultSocketPath: got %q", got)
	}

	t.Setenv("XDG_RUNTIME_DIR", "")
	if got := DefaultSocketPath(); !strings.Contains(got, "zellij-pane-tracker-") {
		t.Errorf("DefaultSocketPath fallback: got %q", got)
	}
}
