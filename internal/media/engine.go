package media

import (
	"context"
	"errors"

	"github.com/claes/tabcast/internal/model"
)

var (
	// ErrNotLoaded is returned for commands issued before a source is loaded.
	ErrNotLoaded = errors.New("media: no source loaded")
	// ErrClosed is returned once the engine has stopped.
	ErrClosed = errors.New("media: engine closed")
)

// Engine is the command surface of a media-playback engine. Every call is a
// request; the resulting state is reported later through an Update.
type Engine interface {
	Load(ctx context.Context, uri string, shouldPlay bool) error
	Play(ctx context.Context) error
	Pause(ctx context.Context) error
	SetPosition(ctx context.Context, millis int64) error
	SetMuted(ctx context.Context, muted bool) error
	PresentFullscreen(ctx context.Context) error
	DismissFullscreen(ctx context.Context) error
}

// UpdateKind tells which field of an Update is set.
type UpdateKind int

const (
	StatusUpdate UpdateKind = iota
	FullscreenUpdate
)

func (k UpdateKind) String() string {
	switch k {
	case StatusUpdate:
		return "status"
	case FullscreenUpdate:
		return "fullscreen"
	}
	return "unknown"
}

// Update is one callback from the engine, delivered in chronological order.
type Update struct {
	Kind       UpdateKind
	Status     model.PlaybackStatus
	Fullscreen bool
}
