package video

import (
	"context"
	"fmt"
	"sync"

	"github.com/claes/tabcast/internal/media"
	"github.com/claes/tabcast/internal/model"
)

// SeekStep is how far the seek controls jump, in milliseconds.
const SeekStep int64 = 10000

// Publisher receives what the controller wants shown to the user.
type Publisher interface {
	Alert(a model.Alert)
	Status(s model.PlaybackStatus)
}

// Controller turns transport actions into engine commands and keeps the
// latest engine snapshot for display. Engine results are only observed
// through HandleStatus; the commands themselves just make requests.
type Controller struct {
	engine  media.Engine
	pub     Publisher
	streams []model.Stream

	// actions serialises user actions the way a UI event loop would.
	actions sync.Mutex

	mu           sync.Mutex
	status       model.PlaybackStatus
	hasStatus    bool
	isFullscreen bool
	isMuted      bool
	index        int
}

func NewController(engine media.Engine, pub Publisher) *Controller {
	return &Controller{engine: engine, pub: pub, streams: Streams}
}

// Mount binds the engine to the first stream without starting playback.
func (c *Controller) Mount(ctx context.Context) error {
	c.actions.Lock()
	defer c.actions.Unlock()
	if err := c.engine.Load(ctx, c.CurrentStream().URI, false); err != nil {
		return fmt.Errorf("load %s: %w", c.CurrentStream().Title, err)
	}
	return nil
}

func (c *Controller) TogglePlayback(ctx context.Context) error {
	c.actions.Lock()
	defer c.actions.Unlock()
	c.mu.Lock()
	playing := c.status.IsPlaying
	c.mu.Unlock()
	if playing {
		if err := c.engine.Pause(ctx); err != nil {
			return fmt.Errorf("pause: %w", err)
		}
		return nil
	}
	if err := c.engine.Play(ctx); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}

func (c *Controller) SeekBackward(ctx context.Context) error {
	c.actions.Lock()
	defer c.actions.Unlock()
	c.mu.Lock()
	pos := c.status.PositionMillis
	c.mu.Unlock()
	target := pos - SeekStep
	if target < 0 {
		target = 0
	}
	return c.seek(ctx, target)
}

// SeekForward jumps ahead unless that would reach the end of the source, in
// which case nothing is requested.
func (c *Controller) SeekForward(ctx context.Context) error {
	c.actions.Lock()
	defer c.actions.Unlock()
	c.mu.Lock()
	st, known := c.status, c.hasStatus
	c.mu.Unlock()
	if !known || !st.DurationKnown {
		return nil
	}
	target := st.PositionMillis + SeekStep
	if target >= st.DurationMillis {
		return nil
	}
	return c.seek(ctx, target)
}

// ToggleMute flips the local flag as soon as the request is made, whether or
// not the engine accepted it.
func (c *Controller) ToggleMute(ctx context.Context) error {
	c.actions.Lock()
	defer c.actions.Unlock()
	c.mu.Lock()
	target := !c.isMuted
	c.mu.Unlock()

	err := c.engine.SetMuted(ctx, target)

	c.mu.Lock()
	c.isMuted = target
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("set muted %t: %w", target, err)
	}
	return nil
}

// ToggleFullscreen has the same optimism as ToggleMute.
func (c *Controller) ToggleFullscreen(ctx context.Context) error {
	c.actions.Lock()
	defer c.actions.Unlock()
	c.mu.Lock()
	on := c.isFullscreen
	c.mu.Unlock()

	var err error
	if on {
		if err = c.engine.DismissFullscreen(ctx); err != nil {
			err = fmt.Errorf("dismiss fullscreen: %w", err)
		}
	} else {
		if err = c.engine.PresentFullscreen(ctx); err != nil {
			err = fmt.Errorf("present fullscreen: %w", err)
		}
	}

	c.mu.Lock()
	c.isFullscreen = !on
	c.mu.Unlock()
	return err
}

// RestartVideo seeks to the start and then plays. The two requests are not
// atomic.
func (c *Controller) RestartVideo(ctx context.Context) error {
	c.actions.Lock()
	defer c.actions.Unlock()
	if err := c.seek(ctx, 0); err != nil {
		return err
	}
	if err := c.engine.Play(ctx); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}

// SwitchStream advances to the next source, wrapping around, and rebinds the
// engine to it.
func (c *Controller) SwitchStream(ctx context.Context) error {
	c.actions.Lock()
	defer c.actions.Unlock()
	c.mu.Lock()
	c.index = (c.index + 1) % len(c.streams)
	next := c.streams[c.index]
	c.status = model.PlaybackStatus{}
	c.hasStatus = false
	c.mu.Unlock()

	c.pub.Alert(model.Alert{Title: "Stream Changed", Message: "Now playing: " + next.Title})

	if err := c.engine.Load(ctx, next.URI, false); err != nil {
		return fmt.Errorf("load %s: %w", next.Title, err)
	}
	return nil
}

func (c *Controller) seek(ctx context.Context, millis int64) error {
	if err := c.engine.SetPosition(ctx, millis); err != nil {
		return fmt.Errorf("seek to %d: %w", millis, err)
	}
	return nil
}

// HandleStatus records the latest engine snapshot. Snapshots for a source
// other than the bound one are stale and dropped.
func (c *Controller) HandleStatus(s model.PlaybackStatus) {
	c.mu.Lock()
	if s.URI != "" && s.URI != c.streams[c.index].URI {
		c.mu.Unlock()
		return
	}
	c.status = s
	c.hasStatus = true
	c.mu.Unlock()
	c.pub.Status(s)
}

// HandleFullscreenUpdate adopts the engine's fullscreen state, which covers
// dismissals that did not go through ToggleFullscreen.
func (c *Controller) HandleFullscreenUpdate(presented bool) {
	c.mu.Lock()
	c.isFullscreen = presented
	c.mu.Unlock()
}

// Run feeds engine updates into the controller until ctx is done or the
// channel closes.
func (c *Controller) Run(ctx context.Context, updates <-chan media.Update) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case u, ok := <-updates:
			if !ok {
				return nil
			}
			switch u.Kind {
			case media.StatusUpdate:
				c.HandleStatus(u.Status)
			case media.FullscreenUpdate:
				c.HandleFullscreenUpdate(u.Fullscreen)
			}
		}
	}
}

func (c *Controller) CurrentStream() model.Stream {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.streams[c.index]
}

func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Controller) IsMuted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isMuted
}

func (c *Controller) IsFullscreen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isFullscreen
}

// Status returns the latest snapshot and whether one has arrived since the
// current source was bound.
func (c *Controller) Status() (model.PlaybackStatus, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status, c.hasStatus
}
