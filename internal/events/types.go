// Package events carries notifications from the multiplexer host to the
// tracker: one JSON document per unix datagram.
package events

import (
	"fmt"
	"time"

	"github.com/theslyprofessor/zellij-pane-tracker/internal/model"
)

// Notification kinds. The set is closed; anything else is rejected.
const (
	// KindPaneUpdate carries a fresh manifest after any pane change.
	KindPaneUpdate = "pane_update"
	// KindCapture is the user's request for a full capture.
	KindCapture = "capture"
)

// Notification is the payload a host sends to the tracker.
type Notification struct {
	Kind     string          `json:"kind"`
	Manifest *model.Manifest `json:"manifest,omitempty"`
	TS       time.Time       `json:"ts,omitzero"`
}

// PaneUpdate builds a pane_update notification for m.
func PaneUpdate(m model.Manifest) Notification {
	return Notification{Kind: KindPaneUpdate, Manifest: &m, TS: time.Now().UTC()}
}

// CaptureRequest builds a capture notification.
func CaptureRequest() Notification {
	return Notification{Kind: KindCapture, TS: time.Now().UTC()}
}

func (n Notification) Validate() error {
	switch n.Kind {
	case KindPaneUpdate:
		if n.Manifest == nil {
			return fmt.Errorf("manifest is required for %s", KindPaneUpdate)
		}
		return validateManifest(*n.Manifest)
	case KindCapture:
		return nil
	case "":
		return fmt.Errorf("kind is required")
	default:
		return fmt.Errorf("invalid kind %q", n.Kind)
	}
}

func validateManifest(m model.Manifest) error {
	for tab, panes := range m.Panes {
		if tab < 0 {
			return fmt.Errorf("invalid tab index %d", tab)
		}
		for _, p := range panes {
			if p.Index < 0 {
				return fmt.Errorf("tab %d: invalid pane id %d", tab, p.Index)
			}
			if p.Columns < 0 || p.Rows < 0 || p.X < 0 || p.Y < 0 {
				return fmt.Errorf("tab %d: pane %s has negative geometry", tab, p.ID())
			}
		}
	}
	return nil
}
