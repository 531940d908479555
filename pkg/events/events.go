// Package events records the update tags and notifications emitted by
// outliner operators so the rest of the tool can react to scene edits.
package events

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/outliner/pkg/logging"
)

// Category groups notifications by the part of the data they concern.
type Category string

// Data narrows a notification within its category.
type Data string

const (
	CategoryScene Category = "scene"

	DataLayer        Data = "layer"
	DataLayerContent Data = "layer_content"
	DataObjectSelect Data = "object_select"
)

// Notification tells listeners that some part of the scene changed.
type Notification struct {
	Category  Category `json:"category"`
	Data      Data     `json:"data"`
	Reference string   `json:"reference,omitempty"`
}

func (n Notification) String() string {
	if n.Reference != "" {
		return fmt.Sprintf("%s|%s(%s)", n.Category, n.Data, n.Reference)
	}
	return fmt.Sprintf("%s|%s", n.Category, n.Data)
}

// Tagger marks derived data for re-evaluation.
type Tagger interface {
	// TagRelations marks the relations between data blocks as stale.
	TagRelations()
	// TagID marks a single data block as stale.
	TagID(id string)
}

// Notifier delivers notifications.
type Notifier interface {
	Notify(n Notification)
}

// EventKind distinguishes the entries recorded by a Bus.
type EventKind string

const (
	KindRelations    EventKind = "tag_relations"
	KindID           EventKind = "tag_id"
	KindNotification EventKind = "notify"
)

// Event is one entry recorded by a Bus.
type Event struct {
	Kind         EventKind     `json:"kind"`
	ID           string        `json:"id,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}

// Bus implements Tagger and Notifier by recording every call in order.
type Bus struct {
	mu     sync.Mutex
	events []Event
	logger zerolog.Logger
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{logger: logging.GetLogger("events")}
}

func (b *Bus) record(e Event) {
	b.mu.Lock()
	b.events = append(b.events, e)
	b.mu.Unlock()
}

// TagRelations implements Tagger.
func (b *Bus) TagRelations() {
	b.logger.Debug().Msg("Relations tagged for update")
	b.record(Event{Kind: KindRelations})
}

// TagID implements Tagger.
func (b *Bus) TagID(id string) {
	b.logger.Debug().Str("id", id).Msg("Data block tagged for update")
	b.record(Event{Kind: KindID, ID: id})
}

// Notify implements Notifier.
func (b *Bus) Notify(n Notification) {
	b.logger.Debug().Stringer("notification", n).Msg("Notification sent")
	b.record(Event{Kind: KindNotification, Notification: &n})
}

// Events returns a copy of the recorded events.
func (b *Bus) Events() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Event, len(b.events))
	copy(out, b.events)
	return out
}

// Notifications returns the recorded notifications in order.
func (b *Bus) Notifications() []Notification {
	var out []Notification
	for _, e := range b.Events() {
		if e.Notification != nil {
			out = append(out, *e.Notification)
		}
	}
	return out
}

// Drain returns the recorded events and clears the bus.
func (b *Bus) Drain() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.events
	b.events = nil
	return out
}
