// Package mux describes the terminal multiplexer hosts the tracker runs under.
//
// It owns the host command vocabulary: how a pane's content is dumped and
// which default titles the host assigns to unnamed panes. It never decides
// when to run anything; the tracker does that.
package mux

import "context"

// Multiplexer abstracts the host-specific commands the tracker issues.
// Implementations exist for zellij and tmux.
type Multiplexer interface {
	// Name returns the multiplexer name (e.g., "zellij", "tmux").
	Name() string

	// DumpScript returns a shell script that writes the content of pane index
	// to path. The script never exits non-zero.
	DumpScript(index int, path string) string

	// DefaultTitlePrefix is the sanitized prefix of titles the host assigns
	// to panes nobody named. Empty means the host has no such convention.
	DefaultTitlePrefix() string

	// CapturePane returns the current content of pane index.
	CapturePane(ctx context.Context, index int) (string, error)
}
