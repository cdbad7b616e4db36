package util

import (
	"fmt"
	"time"
)

// FormatRate formats a frame rate as "30 fps", or "-- fps" before any
// frame has been measured.
func FormatRate(fps float64) string {
	if fps <= 0 {
		return "-- fps"
	}
	return fmt.Sprintf("%.0f fps", fps)
}

// FormatFrameTime formats a per-frame duration with microsecond precision,
// as "1.234ms".
func FormatFrameTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
}
