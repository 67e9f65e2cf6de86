package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Well-known artifact locations. Other tools discover panes through these,
// so they are fixed rather than configurable.
const (
	SnapshotPath = "/tmp/zj-pane-names.json"
	InfoPath     = "/tmp/zj-panes-info.json"
)

// DumpPath is where the content of terminal pane index is dumped.
func DumpPath(index int) string {
	return fmt.Sprintf("/tmp/zj-pane-%d.txt", index)
}

// LinkPath is the name-keyed symlink pointing at a pane dump.
func LinkPath(safeName string) string {
	return fmt.Sprintf("/tmp/zj-%s.txt", safeName)
}

// ReadSnapshot decodes a snapshot document from path.
func ReadSnapshot(path string) (Snapshot, error) {
	var s Snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	if s.Panes == nil {
		s.Panes = map[string]string{}
	}
	if s.Commands == nil {
		s.Commands = map[string]string{}
	}
	return s, nil
}

// ReadCaptureInfo decodes a full-capture metadata document from path.
func ReadCaptureInfo(path string) ([]CaptureEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []CaptureEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode capture info %s: %w", path, err)
	}
	return entries, nil
}
