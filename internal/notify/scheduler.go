package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/claes/tabcast/internal/model"
)

var (
	ErrPermissionDenied = errors.New("notify: permission not granted")
	ErrInvalidDelay     = errors.New("notify: delay must not be negative")
	ErrClosed           = errors.New("notify: scheduler closed")
)

// DefaultSound is the only sound the app requests.
const DefaultSound = "default"

// Content is what a notification shows once it fires.
type Content struct {
	Title string
	Body  string
	Sound string
}

// Scheduler requests delivery of a local notification after a delay.
type Scheduler interface {
	Schedule(ctx context.Context, c Content, delay time.Duration) (model.Notification, error)
}

// Sink receives notifications when they fire.
type Sink interface {
	Deliver(n model.Notification)
}

// Local schedules notifications in-process with timers.
type Local struct {
	sink      Sink
	permitted bool
	now       func() time.Time
	afterFunc func(time.Duration, func()) *time.Timer

	mu      sync.Mutex
	closed  bool
	pending map[string]*time.Timer
}

func NewLocal(sink Sink, permitted bool) *Local {
	return &Local{
		sink:      sink,
		permitted: permitted,
		now:       time.Now,
		afterFunc: time.AfterFunc,
		pending:   make(map[string]*time.Timer),
	}
}

func (l *Local) Schedule(ctx context.Context, c Content, delay time.Duration) (model.Notification, error) {
	if err := ctx.Err(); err != nil {
		return model.Notification{}, err
	}
	if !l.permitted {
		return model.Notification{}, ErrPermissionDenied
	}
	if delay < 0 {
		return model.Notification{}, fmt.Errorf("%w: %s", ErrInvalidDelay, delay)
	}
	if c.Sound == "" {
		c.Sound = DefaultSound
	}
	n := model.Notification{
		ID:     uuid.NewString(),
		Title:  c.Title,
		Body:   c.Body,
		Sound:  c.Sound,
		Delay:  delay,
		FireAt: l.now().Add(delay),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return model.Notification{}, ErrClosed
	}
	l.pending[n.ID] = l.afterFunc(delay, func() { l.fire(n) })
	return n, nil
}

func (l *Local) fire(n model.Notification) {
	l.mu.Lock()
	_, ok := l.pending[n.ID]
	delete(l.pending, n.ID)
	l.mu.Unlock()
	if ok {
		l.sink.Deliver(n)
	}
}

// Pending reports how many notifications have not fired yet.
func (l *Local) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Close stops undelivered timers. Later Schedule calls fail.
func (l *Local) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	for id, t := range l.pending {
		t.Stop()
		delete(l.pending, id)
	}
	return nil
}
