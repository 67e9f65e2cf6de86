package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestWatch(refresh time.Duration) *watchModel {
	w := &Watch{
		SnapshotPath:    "/nonexistent/names.json",
		InfoPath:        "/nonexistent/info.json",
		SocketPath:      "/nonexistent/events.sock",
		RefreshInterval: refresh,
	}
	return w.newModel()
}

func sampleStatus() Status {
	return Status{
		Timestamp: 1700000000,
		Rows: []Row{
			{PaneID: "terminal_1", Name: "editor", Command: "nvim"},
			{PaneID: "terminal_2", Name: "build", Command: "shell"},
		},
	}
}

func TestWatch_LoadedPopulatesTable(t *testing.T) {
	m := newTestWatch(0)

	_, cmd := m.Update(loadedMsg{status: sampleStatus()})
	if cmd != nil {
		t.Error("expected no tick when refresh is disabled")
	}
	if got := len(m.table.Rows()); got != 2 {
		t.Fatalf("table rows: got %d, want 2", got)
	}

	view := m.View()
	for _, want := range []string{"Pane Tracker", "Tracking 2 panes", "terminal_1", "editor", "nvim", "no capture yet", "capture all panes"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestWatch_LoadedSchedulesTick(t *testing.T) {
	m := newTestWatch(time.Second)

	_, cmd := m.Update(loadedMsg{status: sampleStatus(), periodic: true})
	if cmd == nil {
		t.Error("expected a refresh tick")
	}
}

func TestWatch_ManualLoadDoesNotScheduleTick(t *testing.T) {
	m := newTestWatch(time.Second)

	if _, cmd := m.Update(loadedMsg{status: sampleStatus()}); cmd != nil {
		t.Error("a manual reload must not start a second tick chain")
	}
}

func TestWatch_CaptureKeySendsRequest(t *testing.T) {
	m := newTestWatch(0)
	calls := 0
	m.requestCapture = func() error {
		calls++
		return nil
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if cmd == nil {
		t.Fatal("c should issue a capture command")
	}
	msg := cmd()
	if calls != 1 {
		t.Fatalf("expected one capture request, got %d", calls)
	}

	if _, next := m.Update(msg); next == nil {
		t.Error("expected a reload to be scheduled after the capture request")
	}
	if !strings.Contains(m.View(), "capture requested") {
		t.Error("view should confirm the capture request")
	}
}

func TestWatch_CaptureFailureShown(t *testing.T) {
	m := newTestWatch(0)
	m.requestCapture = func() error { return errors.New("dial: no such file") }

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if _, next := m.Update(cmd()); next != nil {
		t.Error("a failed capture should not schedule a reload")
	}
	if !strings.Contains(m.View(), "capture failed: dial: no such file") {
		t.Errorf("view should show the failure, got:\n%s", m.View())
	}
}

func TestWatch_CaptureInfoSummary(t *testing.T) {
	m := newTestWatch(0)
	st := sampleStatus()
	st.HasCaptureInfo = true
	st.CapturedPanes = 5
	m.Update(loadedMsg{status: st})

	if !strings.Contains(m.View(), "(5 panes)") {
		t.Error("view should summarize the last capture")
	}
}

func TestWatch_ErrorKeepsPreviousRows(t *testing.T) {
	m := newTestWatch(0)
	m.Update(loadedMsg{status: sampleStatus()})

	m.Update(loadedMsg{err: errors.New("read pane names: boom")})

	if got := len(m.table.Rows()); got != 2 {
		t.Errorf("rows should survive a failed reload, got %d", got)
	}
	if !strings.Contains(m.View(), "boom") {
		t.Error("view should show the load error")
	}
}

func TestWatch_EmptyStatus(t *testing.T) {
	m := newTestWatch(0)
	m.Update(loadedMsg{status: Status{}})

	if !strings.Contains(m.View(), "No panes tracked yet") {
		t.Error("expected empty-state message")
	}
}

func TestWatch_Keys(t *testing.T) {
	m := newTestWatch(0)

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}); cmd == nil {
		t.Error("r should trigger a reload")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
}

func TestWatch_ReloadReportsMissingFile(t *testing.T) {
	m := newTestWatch(0)
	msg := m.load(true)()
	loaded, ok := msg.(loadedMsg)
	if !ok {
		t.Fatalf("expected loadedMsg, got %T", msg)
	}
	if loaded.err == nil {
		t.Error("expected an error for a missing snapshot")
	}
}

func TestWatch_Resize(t *testing.T) {
	m := newTestWatch(0)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	cols := m.table.Columns()
	if cols[1].Width+cols[2].Width != 120-cols[0].Width-8 {
		t.Errorf("columns should fill the width, got %d+%d", cols[1].Width, cols[2].Width)
	}
}

func TestThemeByName(t *testing.T) {
	if ThemeByName("light") != LightTheme() {
		t.Error("light should select LightTheme")
	}
	if ThemeByName("unknown") != DarkTheme() {
		t.Error("unknown names should fall back to DarkTheme")
	}
}
