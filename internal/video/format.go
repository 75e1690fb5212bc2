package video

import "fmt"

// FormatTime renders milliseconds as "M:SS". Minutes are not wrapped into
// hours.
func FormatTime(millis int64) string {
	if millis < 0 {
		millis = 0
	}
	total := millis / 1000
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
