package mux

import (
	"context"
	"fmt"
	"os/exec"
)

// Tmux implements the Multiplexer interface for tmux. Pane indexes are tmux
// pane ids without the "%" sigil.
type Tmux struct{}

// NewTmux creates a new tmux multiplexer.
func NewTmux() *Tmux {
	return &Tmux{}
}

// Name returns "tmux".
func (t *Tmux) Name() string {
	return "tmux"
}

// DumpScript captures the pane with -p (stdout) and -J (joined, unwraps lines).
func (t *Tmux) DumpScript(index int, path string) string {
	return redirect(fmt.Sprintf("tmux capture-pane -p -J -t %%%d", index), path)
}

// DefaultTitlePrefix returns "": tmux defaults pane titles to the host name,
// which has no stable prefix.
func (t *Tmux) DefaultTitlePrefix() string {
	return ""
}

// CapturePane captures the visible content of a tmux pane.
func (t *Tmux) CapturePane(ctx context.Context, index int) (string, error) {
	target := fmt.Sprintf("%%%d", index)
	out, err := t.run(ctx, "capture-pane", "-t", target, "-p", "-J")
	if err != nil {
		return "", fmt.Errorf("tmux capture-pane -t %s: %w", target, err)
	}
	return out, nil
}

// run executes a tmux command and returns its stdout.
func (t *Tmux) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "tmux", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("%w: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
