package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claes/tabcast/internal/model"
)

type recordingSink struct {
	mu  sync.Mutex
	got []model.Notification
	ch  chan model.Notification
}

func newRecordingSink() *recordingSink {
	return &recordingSink{ch: make(chan model.Notification, 8)}
}

func (s *recordingSink) Deliver(n model.Notification) {
	s.mu.Lock()
	s.got = append(s.got, n)
	s.mu.Unlock()
	s.ch <- n
}

func TestLocal_DeliversAfterDelay(t *testing.T) {
	sink := newRecordingSink()
	l := NewLocal(sink, true)
	defer l.Close()

	n, err := l.Schedule(context.Background(), Content{Title: "Hi", Body: "there"}, 10*time.Millisecond)
	require.NoError(t, err)
	_, err = uuid.Parse(n.ID)
	require.NoError(t, err)
	assert.Equal(t, DefaultSound, n.Sound)
	assert.Equal(t, 10*time.Millisecond, n.Delay)

	select {
	case got := <-sink.ch:
		assert.Equal(t, n, got)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not delivered")
	}
	assert.Zero(t, l.Pending())
}

func TestLocal_FireAtUsesClock(t *testing.T) {
	l := NewLocal(newRecordingSink(), true)
	defer l.Close()
	base := time.Unix(1700000000, 0)
	l.now = func() time.Time { return base }
	l.afterFunc = func(d time.Duration, f func()) *time.Timer { return time.NewTimer(time.Hour) }

	n, err := l.Schedule(context.Background(), Content{Title: "x"}, 3*time.Second)
	require.NoError(t, err)
	assert.Equal(t, base.Add(3*time.Second), n.FireAt)
	assert.Equal(t, 1, l.Pending())
}

func TestLocal_PermissionDenied(t *testing.T) {
	l := NewLocal(newRecordingSink(), false)
	_, err := l.Schedule(context.Background(), Content{Title: "x"}, time.Second)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestLocal_NegativeDelay(t *testing.T) {
	l := NewLocal(newRecordingSink(), true)
	_, err := l.Schedule(context.Background(), Content{Title: "x"}, -time.Second)
	assert.ErrorIs(t, err, ErrInvalidDelay)
}

func TestLocal_CancelledContext(t *testing.T) {
	l := NewLocal(newRecordingSink(), true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := l.Schedule(ctx, Content{Title: "x"}, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocal_CloseStopsPending(t *testing.T) {
	sink := newRecordingSink()
	l := NewLocal(sink, true)
	_, err := l.Schedule(context.Background(), Content{Title: "x"}, 50*time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, l.Close())
	assert.Zero(t, l.Pending())

	_, err = l.Schedule(context.Background(), Content{Title: "y"}, time.Millisecond)
	assert.ErrorIs(t, err, ErrClosed)

	time.Sleep(100 * time.Millisecond)
	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Empty(t, sink.got)
}
