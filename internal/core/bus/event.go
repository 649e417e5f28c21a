// If you are AI: This file defines Event, the unit published on the editor event bus.
// Events are immutable once published; every subscriber shares the same pointer.

package bus

import (
	"fmt"
	"time"
)

// EventType says what happened.
type EventType uint8

const (
	// EventPadAdded reports a new pad.
	EventPadAdded EventType = iota + 1
	// EventPadRemoved reports a removed pad.
	EventPadRemoved
	// EventPadLinked reports a pad that got a peer.
	EventPadLinked
	// EventPadUnlinked reports a pad that lost its peer.
	EventPadUnlinked
	// EventCommand reports an executed command line.
	EventCommand
	// EventCommandFailed reports a command line that failed.
	EventCommandFailed
	// EventGraphLoaded reports a graph document load.
	EventGraphLoaded
	// EventGraphSaved reports a graph document save.
	EventGraphSaved
)

var eventTypeNames = map[EventType]string{
	EventPadAdded:      "pad-added",
	EventPadRemoved:    "pad-removed",
	EventPadLinked:     "pad-linked",
	EventPadUnlinked:   "pad-unlinked",
	EventCommand:       "command",
	EventCommandFailed: "command-failed",
	EventGraphLoaded:   "graph-loaded",
	EventGraphSaved:    "graph-saved",
}

// String returns the event type name.
func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the type by name.
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a type name.
func (t *EventType) UnmarshalText(text []byte) error {
	for k, name := range eventTypeNames {
		if name == string(text) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown event type %q", text)
}

// Event is one editor notification.
type Event struct {
	Seq     uint64    `json:"seq"`
	Type    EventType `json:"type"`
	Session string    `json:"session,omitempty"`
	Pad     string    `json:"pad,omitempty"`  // pad path for pad events
	Peer    string    `json:"peer,omitempty"` // peer pad path for link events
	Command string    `json:"command,omitempty"`
	Detail  string    `json:"detail,omitempty"` // error text or file path
	Time    time.Time `json:"time"`
}
