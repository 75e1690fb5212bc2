package media

import (
	"context"
	"sync"
	"time"

	"github.com/claes/tabcast/internal/model"
)

// Virtual is an in-process engine driven by a playback clock. It stands in
// for a native player: it accepts the same commands and emits status
// snapshots on every tick and after every command.
type Virtual struct {
	interval  time.Duration
	durations map[string]time.Duration
	fallback  time.Duration
	now       func() time.Time

	mu         sync.Mutex
	closed     bool
	uri        string
	loaded     bool
	playing    bool
	muted      bool
	fullscreen bool
	position   time.Duration
	duration   time.Duration
	lastTick   time.Time

	updates chan Update
}

// Option configures a Virtual engine.
type Option func(*Virtual)

// WithInterval sets the status tick cadence.
func WithInterval(d time.Duration) Option {
	return func(v *Virtual) { v.interval = d }
}

// WithDurations sets known source durations keyed by URI.
func WithDurations(m map[string]time.Duration) Option {
	return func(v *Virtual) {
		for k, d := range m {
			v.durations[k] = d
		}
	}
}

// WithFallbackDuration sets the duration used for URIs not in the table.
func WithFallbackDuration(d time.Duration) Option {
	return func(v *Virtual) { v.fallback = d }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(v *Virtual) { v.now = now }
}

func NewVirtual(opts ...Option) *Virtual {
	v := &Virtual{
		interval:  500 * time.Millisecond,
		durations: map[string]time.Duration{},
		fallback:  10 * time.Minute,
		now:       time.Now,
		updates:   make(chan Update, 64),
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Updates returns the callback channel. It is closed when Run returns.
func (v *Virtual) Updates() <-chan Update { return v.updates }

// Run advances the playback clock until ctx is done.
func (v *Virtual) Run(ctx context.Context) error {
	t := time.NewTicker(v.interval)
	defer t.Stop()
	defer func() {
		v.mu.Lock()
		v.closed = true
		close(v.updates)
		v.mu.Unlock()
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			v.tick()
		}
	}
}

func (v *Virtual) tick() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || !v.loaded {
		return
	}
	v.advanceLocked()
	v.emitStatusLocked()
}

func (v *Virtual) Load(ctx context.Context, uri string, shouldPlay bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrClosed
	}
	d, ok := v.durations[uri]
	if !ok {
		d = v.fallback
	}
	v.uri = uri
	v.loaded = true
	v.position = 0
	v.duration = d
	v.playing = shouldPlay
	v.lastTick = v.now()
	v.emitStatusLocked()
	return nil
}

func (v *Virtual) Play(ctx context.Context) error {
	return v.command(func() {
		// Sources do not loop; play at the end is ignored.
		if v.position < v.duration {
			v.playing = true
		}
	})
}

func (v *Virtual) Pause(ctx context.Context) error {
	return v.command(func() { v.playing = false })
}

func (v *Virtual) SetPosition(ctx context.Context, millis int64) error {
	return v.command(func() {
		p := time.Duration(millis) * time.Millisecond
		if p < 0 {
			p = 0
		}
		if p > v.duration {
			p = v.duration
		}
		v.position = p
	})
}

func (v *Virtual) SetMuted(ctx context.Context, muted bool) error {
	return v.command(func() { v.muted = muted })
}

func (v *Virtual) PresentFullscreen(ctx context.Context) error {
	return v.setFullscreen(true)
}

func (v *Virtual) DismissFullscreen(ctx context.Context) error {
	return v.setFullscreen(false)
}

func (v *Virtual) setFullscreen(on bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.readyLocked(); err != nil {
		return err
	}
	v.fullscreen = on
	v.emitLocked(Update{Kind: FullscreenUpdate, Fullscreen: on})
	return nil
}

// Status returns the current snapshot without emitting it.
func (v *Virtual) Status() model.PlaybackStatus {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *Virtual) command(apply func()) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.readyLocked(); err != nil {
		return err
	}
	v.advanceLocked()
	apply()
	v.emitStatusLocked()
	return nil
}

func (v *Virtual) readyLocked() error {
	if v.closed {
		return ErrClosed
	}
	if !v.loaded {
		return ErrNotLoaded
	}
	return nil
}

func (v *Virtual) advanceLocked() {
	now := v.now()
	if v.playing {
		v.position += now.Sub(v.lastTick)
		if v.position >= v.duration {
			v.position = v.duration
			v.playing = false
		}
	}
	v.lastTick = now
}

func (v *Virtual) snapshotLocked() model.PlaybackStatus {
	if !v.loaded {
		return model.PlaybackStatus{}
	}
	return model.PlaybackStatus{
		IsLoaded:       true,
		IsPlaying:      v.playing,
		PositionMillis: v.position.Milliseconds(),
		DurationMillis: v.duration.Milliseconds(),
		DurationKnown:  true,
		IsMuted:        v.muted,
		URI:            v.uri,
	}
}

func (v *Virtual) emitStatusLocked() {
	v.emitLocked(Update{Kind: StatusUpdate, Status: v.snapshotLocked()})
}

// emitLocked never blocks; a full channel drops the update since the next
// tick carries a fresher snapshot anyway.
func (v *Virtual) emitLocked(u Update) {
	if v.closed {
		return
	}
	select {
	case v.updates <- u:
	default:
	}
}
