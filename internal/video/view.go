package video

import "fmt"

// Icon names for the play button.
const (
	IconPlay  = "play"
	IconPause = "pause"
)

// View is what the video tab renders.
type View struct {
	Title           string  `json:"title"`
	StreamIndex     int     `json:"streamIndex"`
	StreamCount     int     `json:"streamCount"`
	StreamLabel     string  `json:"streamLabel"`
	IsPlaying       bool    `json:"isPlaying"`
	PlayIcon        string  `json:"playIcon"`
	IsMuted         bool    `json:"isMuted"`
	MuteLabel       string  `json:"muteLabel"`
	IsFullscreen    bool    `json:"isFullscreen"`
	HasDuration     bool    `json:"hasDuration"`
	TimeLabel       string  `json:"timeLabel,omitempty"`
	ProgressPercent float64 `json:"progressPercent"`
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := View{
		Title:        c.streams[c.index].Title,
		StreamIndex:  c.index,
		StreamCount:  len(c.streams),
		StreamLabel:  fmt.Sprintf("Switch Stream (%d/%d)", c.index+1, len(c.streams)),
		IsPlaying:    c.status.IsPlaying,
		PlayIcon:     IconPlay,
		IsMuted:      c.isMuted,
		MuteLabel:    "Mute",
		IsFullscreen: c.isFullscreen,
	}
	if v.IsPlaying {
		v.PlayIcon = IconPause
	}
	if c.isMuted {
		v.MuteLabel = "Unmute"
	}
	st := c.status
	if c.hasStatus && st.DurationKnown && st.DurationMillis > 0 {
		v.HasDuration = true
		v.TimeLabel = FormatTime(st.PositionMillis) + " / " + FormatTime(st.DurationMillis)
		v.ProgressPercent = float64(st.PositionMillis) / float64(st.DurationMillis) * 100
	}
	return v
}
