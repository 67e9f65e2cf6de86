package mux

import (
	"fmt"
	"os"
)

// Detect picks the multiplexer from the environment the tracker runs in.
// Zellij is checked first: the tracker is normally launched from a zellij
// session, and a tmux client may be nested inside it.
func Detect() (Multiplexer, error) {
	if os.Getenv("ZELLIJ") != "" || os.Getenv("ZELLIJ_SESSION_NAME") != "" {
		return NewZellij(), nil
	}
	if os.Getenv("TMUX") != "" {
		return NewTmux(), nil
	}
	return nil, fmt.Errorf("no supported terminal multiplexer detected (set $ZELLIJ or $TMUX, or pass --mux)")
}

// FromName creates a Multiplexer by name.
func FromName(name string) (Multiplexer, error) {
	switch name {
	case "zellij":
		return NewZellij(), nil
	case "tmux":
		return NewTmux(), nil
	default:
		return nil, fmt.Errorf("unknown multiplexer: %q (supported: zellij, tmux)", name)
	}
}
