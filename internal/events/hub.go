package events

import (
	"sync"
	"time"

	"github.com/claes/tabcast/internal/model"
)

// Kind names the payload of an Event.
type Kind string

const (
	KindAlert        Kind = "alert"
	KindNotification Kind = "notification"
	KindStatus       Kind = "status"
)

// Event is one message on the feed.
type Event struct {
	Kind         Kind                  `json:"kind"`
	At           time.Time             `json:"at"`
	Alert        *model.Alert          `json:"alert,omitempty"`
	Notification *model.Notification   `json:"notification,omitempty"`
	Status       *model.PlaybackStatus `json:"status,omitempty"`
}

const (
	defaultBuffer  = 32
	recentCapacity = 10
)

// Hub fans events out to subscribers. Publish never blocks: a subscriber
// whose buffer is full misses the event.
type Hub struct {
	mu     sync.Mutex
	subs   map[chan Event]struct{}
	recent []model.Alert
	now    func() time.Time
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{}), now: time.Now}
}

// Subscribe registers a new listener. Call the returned func to release it.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, defaultBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

func (h *Hub) Publish(e Event) {
	if e.At.IsZero() {
		e.At = h.now()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if e.Kind == KindAlert && e.Alert != nil {
		h.recent = append(h.recent, *e.Alert)
		if len(h.recent) > recentCapacity {
			h.recent = h.recent[len(h.recent)-recentCapacity:]
		}
	}
	for ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Alert publishes a user-visible acknowledgement.
func (h *Hub) Alert(a model.Alert) {
	h.Publish(Event{Kind: KindAlert, Alert: &a})
}

// Status publishes a playback snapshot.
func (h *Hub) Status(s model.PlaybackStatus) {
	h.Publish(Event{Kind: KindStatus, Status: &s})
}

// Deliver publishes a notification that has fired.
func (h *Hub) Deliver(n model.Notification) {
	h.Publish(Event{Kind: KindNotification, Notification: &n})
}

// Subscribers reports how many listeners are registered.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// RecentAlerts returns the latest alerts, oldest first.
func (h *Hub) RecentAlerts() []model.Alert {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]model.Alert, len(h.recent))
	copy(out, h.recent)
	return out
}
