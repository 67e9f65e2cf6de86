package events

import (
	"fmt"
	"os"
	"path/filepath"
)

func DefaultSocketPath() string {
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir != "" {
		return filepath.Join(runtimeDir, "zellij-pane-tracker", "events.sock")
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("zellij-pane-tracker-%d", os.Getuid()), "events.sock")
}
