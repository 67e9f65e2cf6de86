package model

import (
	"fmt"
	"sort"
)

// PaneDescriptor is one pane as reported by the multiplexer host in a manifest.
// Field names follow the host's pane info payload.
type PaneDescriptor struct {
	// Index is the host's numeric pane id (unique per kind).
	Index int `json:"id"`
	// IsPlugin marks plugin panes; everything else is a terminal pane.
	IsPlugin   bool `json:"is_plugin"`
	IsFloating bool `json:"is_floating"`
	IsFocused  bool `json:"is_focused"`
	// Title is the display title, user- or host-assigned.
	Title string `json:"title"`
	// Command is the running command, when the host reports one.
	Command *string `json:"terminal_command,omitempty"`

	Columns int `json:"pane_columns"`
	Rows    int `json:"pane_rows"`
	X       int `json:"pane_x"`
	Y       int `json:"pane_y"`
}

// ID returns the synthetic pane identifier for the descriptor.
func (d PaneDescriptor) ID() string {
	return PaneID(d.IsPlugin, d.Index)
}

// Geometry formats the pane size and position as "WxH at (X,Y)".
func (d PaneDescriptor) Geometry() string {
	return fmt.Sprintf("%dx%d at (%d,%d)", d.Columns, d.Rows, d.X, d.Y)
}

// PaneID builds the key used for a pane across all derived tables:
// "plugin_<index>" or "terminal_<index>".
func PaneID(plugin bool, index int) string {
	if plugin {
		return fmt.Sprintf("plugin_%d", index)
	}
	return fmt.Sprintf("terminal_%d", index)
}

// Manifest is the host's snapshot of every pane across every tab,
// keyed by tab index.
type Manifest struct {
	Panes map[int][]PaneDescriptor `json:"panes"`
}

// Tabs returns the tab indexes in ascending order.
func (m Manifest) Tabs() []int {
	tabs := make([]int, 0, len(m.Panes))
	for tab := range m.Panes {
		tabs = append(tabs, tab)
	}
	sort.Ints(tabs)
	return tabs
}

// Each calls fn for every descriptor, tabs ascending, descriptors in host order.
func (m Manifest) Each(fn func(tab int, d PaneDescriptor)) {
	for _, tab := range m.Tabs() {
		for _, d := range m.Panes[tab] {
			fn(tab, d)
		}
	}
}

// Count returns the total number of descriptors across all tabs.
func (m Manifest) Count() int {
	n := 0
	for _, panes := range m.Panes {
		n += len(panes)
	}
	return n
}

// Snapshot is the exported name table written on every reconciliation.
// Commands holds the running command of the panes that report one.
type Snapshot struct {
	Panes    map[string]string `json:"panes"`
	Commands map[string]string `json:"commands,omitempty"`
	// Timestamp is the export time in seconds since the Unix epoch.
	Timestamp uint64 `json:"timestamp"`
}

// CaptureEntry is one pane's metadata in the full-capture document.
type CaptureEntry struct {
	PaneID      string  `json:"pane_id"`
	Name        string  `json:"name"`
	Command     *string `json:"command"`
	IsFocused   bool    `json:"is_focused"`
	IsFloating  bool    `json:"is_floating"`
	Coordinates string  `json:"coordinates"`
}
