package mux

import (
	"fmt"
	"strings"
)

// quiet is appended to every script so that failures stay invisible to the
// caller: stderr is discarded and the exit status is forced to zero.
const quiet = " 2>/dev/null || true"

// SymlinkScript returns a script that points link at target, replacing any
// existing link.
func SymlinkScript(target, link string) string {
	return fmt.Sprintf("ln -sf %s %s%s", Quote(target), Quote(link), quiet)
}

// WriteScript returns a script that copies its stdin to path, truncating it.
func WriteScript(path string) string {
	return fmt.Sprintf("cat > %s%s", Quote(path), quiet)
}

// redirect appends "> path" plus the quiet suffix to a command.
func redirect(command, path string) string {
	return fmt.Sprintf("%s > %s%s", command, Quote(path), quiet)
}

// Quote wraps s in single quotes for sh.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
