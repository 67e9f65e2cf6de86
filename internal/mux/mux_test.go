package mux

import "testing"

func TestDumpScript(t *testing.T) {
	tests := []struct {
		name string
		m    Multiplexer
		want string
	}{
		{
			name: "zellij",
			m:    NewZellij(),
			want: "zellij action dump-pane 7 > '/tmp/zj-pane-7.txt' 2>/dev/null || true",
		},
		{
			name: "tmux",
			m:    NewTmux(),
			want: "tmux capture-pane -p -J -t %7 > '/tmp/zj-pane-7.txt' 2>/dev/null || true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.DumpScript(7, "/tmp/zj-pane-7.txt"); got != tt.want {
				t.Errorf("DumpScript:\n got %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestSymlinkScript(t *testing.T) {
	got := SymlinkScript("/tmp/zj-pane-7.txt", "/tmp/zj-build.txt")
	want := "ln -sf '/tmp/zj-pane-7.txt' '/tmp/zj-build.txt' 2>/dev/null || true"
	if got != want {
		t.Errorf("SymlinkScript:\n got %q\nwant %q", got, want)
	}
}

func TestWriteScript(t *testing.T) {
	got := WriteScript("/tmp/zj-pane-names.json")
	want := "cat > '/tmp/zj-pane-names.json' 2>/dev/null || true"
	if got != want {
		t.Errorf("WriteScript:\n got %q\nwant %q", got, want)
	}
}

func TestQuote(t *testing.T) {
	if got := Quote("it's"); got != `'it'\''s'` {
		t.Errorf("Quote: got %q", got)
	}
}

func TestDefaultTitlePrefix(t *testing.T) {
	if NewZellij().DefaultTitlePrefix() != "Pane-" {
		t.Errorf("zellij prefix: got %q", NewZellij().DefaultTitlePrefix())
	}
	if NewTmux().DefaultTitlePrefix() != "" {
		t.Errorf("tmux prefix: got %q", NewTmux().DefaultTitlePrefix())
	}
}

func TestFromName(t *testing.T) {
	for _, name := range []string{"zellij", "tmux"} {
		m, err := FromName(name)
		if err != nil {
			t.Fatalf("FromName(%q): %v", name, err)
		}
		if m.Name() != name {
			t.Errorf("Name: got %q, want %q", m.Name(), name)
		}
	}
	if _, err := FromName("screen"); err == nil {
		t.Error("expected error for unknown multiplexer")
	}
}

func TestDetect(t *testing.T) {
	t.Setenv("ZELLIJ", "0")
	t.Setenv("ZELLIJ_SESSION_NAME", "")
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1,0")
	m, err := Detect()
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if m.Name() != "zellij" {
		t.Errorf("expected zellij to win over tmux, got %s", m.Name())
	}

	t.Setenv("ZELLIJ", "")
	m, err = Detect()
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if m.Name() != "tmux" {
		t.Errorf("expected tmux, got %s", m.Name())
	}

	t.Setenv("TMUX", "")
	if _, err := Detect(); err == nil {
		t.Error("expected error without any multiplexer")
	}
}
