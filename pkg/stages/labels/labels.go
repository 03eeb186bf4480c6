// Package labels formats millisecond timestamps for axis display.
package labels

import (
	"fmt"
)

// Format renders a timestamp as a display string at the precision tier
// implied by the marker interval.
//
// Timestamps with a whole hour render as H:MM:SS with truncated
// seconds. Below an hour, the interval picks the number of fractional
// digits on the seconds field: two below 250ms, one below 1000ms, none
// otherwise. The minutes field carries no leading zero; seconds are
// zero-padded to two digits. Fractional digits are never trimmed.
func Format(timestampMs, intervalMs int64) string {
	if timestampMs < 0 {
		timestampMs = 0
	}

	hours := timestampMs / 3600000
	if hours > 0 {
		minutes := (timestampMs / 60000) % 60
		seconds := (timestampMs / 1000) % 60
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}

	minutes := timestampMs / 60000
	secondsMs := timestampMs % 60000

	switch {
	case intervalMs > 0 && intervalMs < 250:
		hundredths := secondsMs / 10
		return fmt.Sprintf("%d:%02d.%02d", minutes, hundredths/100, hundredths%100)
	case intervalMs > 0 && intervalMs < 1000:
		tenths := secondsMs / 100
		return fmt.Sprintf("%d:%02d.%d", minutes, tenths/10, tenths%10)
	default:
		return fmt.Sprintf("%d:%02d", minutes, secondsMs/1000)
	}
}
