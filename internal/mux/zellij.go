package mux

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// Zellij implements the Multiplexer interface for zellij.
type Zellij struct{}

// NewZellij creates a new zellij multiplexer.
func NewZellij() *Zellij {
	return &Zellij{}
}

// Name returns "zellij".
func (z *Zellij) Name() string {
	return "zellij"
}

// DumpScript dumps a pane with "zellij action dump-pane".
func (z *Zellij) DumpScript(index int, path string) string {
	return redirect(fmt.Sprintf("zellij action dump-pane %d", index), path)
}

// DefaultTitlePrefix returns "Pane-": zellij titles unnamed panes "Pane #N".
func (z *Zellij) DefaultTitlePrefix() string {
	return "Pane-"
}

// CapturePane returns the content of a zellij pane.
func (z *Zellij) CapturePane(ctx context.Context, index int) (string, error) {
	cmd := exec.CommandContext(ctx, "zellij", "action", "dump-pane", strconv.Itoa(index))
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("zellij dump-pane %d: %w: %s", index, err, string(exitErr.Stderr))
		}
		return "", fmt.Errorf("zellij dump-pane %d: %w", index, err)
	}
	return string(out), nil
}
