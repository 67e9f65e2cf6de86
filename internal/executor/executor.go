// Package executor runs the shell commands the tracker issues.
//
// Submission is fire-and-forget: callers hand a Command over and never learn
// whether it ran or failed. Every script the tracker builds already discards
// its own stderr and exit status, so there is nothing to report.
package executor

import "context"

// Kind classifies a command by the artifact it produces.
type Kind string

const (
	KindDump    Kind = "dump"
	KindSymlink Kind = "symlink"
	KindWrite   Kind = "write"
)

// Command is one shell script to run.
type Command struct {
	Kind Kind
	// Script is passed to "sh -c".
	Script string
	// Stdin, when set, is fed to the script (used by writes).
	Stdin []byte
	// Pane is the pane index a dump or symlink refers to.
	Pane int
	// Path is the artifact the command writes or links.
	Path string
}

// Executor accepts commands for asynchronous execution.
type Executor interface {
	Submit(cmd Command)
}

// Runner runs a single script to completion.
type Runner interface {
	Run(ctx context.Context, script string, stdin []byte) error
}
