package video

import (
	"time"

	"github.com/claes/tabcast/internal/model"
)

// Streams is the fixed, ordered list of selectable sources.
var Streams = []model.Stream{
	{
		Title: "Big Buck Bunny",
		URI:   "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
	},
	{
		Title: "Sintel Trailer",
		URI:   "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/Sintel.mp4",
	},
	{
		Title: "Tears of Steel",
		URI:   "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/TearsOfSteel.mp4",
	},
}

// KnownDurations are the lengths of the sample sources, keyed by URI.
var KnownDurations = map[string]time.Duration{
	Streams[0].URI: 9*time.Minute + 56*time.Second,
	Streams[1].URI: 14*time.Minute + 48*time.Second,
	Streams[2].URI: 12*time.Minute + 14*time.Second,
}
