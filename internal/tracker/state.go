package tracker

import (
	"maps"
	"slices"
	"sync"

	"github.com/theslyprofessor/zellij-pane-tracker/internal/model"
)

// Entry is one tracked pane as shown to readers.
type Entry struct {
	PaneID  string
	Name    string
	Command string // empty when the pane reports no command
}

// State holds the flat pane tables derived from the latest manifest and the
// manifest itself. Rebuild is the only mutator of the tables.
type State struct {
	mu       sync.RWMutex
	names    map[string]string
	commands map[string]string
	manifest *model.Manifest
}

func NewState() *State {
	return &State{
		names:    map[string]string{},
		commands: map[string]string{},
	}
}

// Rebuild replaces both tables with the contents of m. Nothing from the
// previous manifest survives. Duplicate ids resolve last-write-wins.
func (s *State) Rebuild(m model.Manifest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.names)
	clear(s.commands)
	m.Each(func(_ int, d model.PaneDescriptor) {
		id := d.ID()
		s.names[id] = d.Title
		if d.Command != nil {
			s.commands[id] = *d.Command
		} else {
			delete(s.commands, id)
		}
	})
}

// SetManifest remembers m as the last manifest seen.
func (s *State) SetManifest(m model.Manifest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manifest = &m
}

// Manifest returns the last manifest seen and whether there is one.
func (s *State) Manifest() (model.Manifest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.manifest == nil {
		return model.Manifest{}, false
	}
	return *s.manifest, true
}

func (s *State) Name(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	name, ok := s.names[id]
	return name, ok
}

func (s *State) Command(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cmd, ok := s.commands[id]
	return cmd, ok
}

// Names returns a copy of the id -> name table.
func (s *State) Names() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.names)
}

// Commands returns a copy of the id -> command table.
func (s *State) Commands() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.commands)
}

func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.names)
}

// Entries returns every tracked pane sorted by id.
func (s *State) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := slices.Sorted(maps.Keys(s.names))
	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		out = append(out, Entry{PaneID: id, Name: s.names[id], Command: s.commands[id]})
	}
	return out
}
