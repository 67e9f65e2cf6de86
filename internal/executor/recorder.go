package executor

import "sync"

// Recorder is an Executor that only remembers what it was given.
type Recorder struct {
	mu   sync.Mutex
	cmds []Command
}

// Submit records cmd.
func (r *Recorder) Submit(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cmds = append(r.cmds, cmd)
}

// Commands returns the recorded commands in submission order.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Command(nil), r.cmds...)
}

// OfKind returns the recorded commands of one kind.
func (r *Recorder) OfKind(kind Kind) []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Command
	for _, c := range r.cmds {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cmds = nil
}
