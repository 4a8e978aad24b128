package clock

import "fmt"

// FormatRemaining renders seconds as "M:SS": minutes unpadded, seconds
// padded to two digits. Negative input panics.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		panic(fmt.Sprintf("clock: negative seconds %d", seconds))
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
