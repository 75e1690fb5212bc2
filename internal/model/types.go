package model

import "time"

// Stream identifies one selectable video source.
type Stream struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// PlaybackStatus is a snapshot reported by the media engine.
// DurationMillis is only meaningful when DurationKnown is true.
type PlaybackStatus struct {
	IsLoaded       bool   `json:"isLoaded"`
	IsPlaying      bool   `json:"isPlaying"`
	PositionMillis int64  `json:"positionMillis"`
	DurationMillis int64  `json:"durationMillis,omitempty"`
	DurationKnown  bool   `json:"-"`
	IsBuffering    bool   `json:"isBuffering"`
	IsMuted        bool   `json:"isMuted"`
	URI            string `json:"uri,omitempty"`
}

// Notification is a delayed local notification as accepted by a scheduler.
type Notification struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Body   string        `json:"body"`
	Sound  string        `json:"sound"`
	Delay  time.Duration `json:"delay"`
	FireAt time.Time     `json:"fireAt"`
}

// Alert is a user-visible acknowledgement.
type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}
