package labels

import (
	"testing"
)

// TestFormat_PrecisionTiers checks the fractional digits chosen per
// interval tier.
func TestFormat_PrecisionTiers(t *testing.T) {
	tests := []struct {
		name        string
		timestampMs int64
		intervalMs  int64
		expected    string
	}{
		// interval < 250 -> 2 fractional digits
		{"fine tier zero", 0, 100, "0:00.00"},
		{"fine tier half second", 500, 100, "0:00.50"},
		{"fine tier truncates", 1234, 50, "0:01.23"},
		{"fine tier minute boundary", 60050, 100, "1:00.05"},

		// interval < 1000 -> 1 fractional digit
		{"mid tier", 1500, 500, "0:01.5"},
		{"mid tier truncates", 2990, 250, "0:02.9"},
		{"mid tier zero fraction", 3000, 500, "0:03.0"},

		// interval >= 1000 -> integer seconds
		{"coarse tier", 5000, 1000, "0:05"},
		{"coarse tier truncates", 5999, 1000, "0:05"},
		{"coarse tier minutes", 65000, 5000, "1:05"},
		{"coarse tier many minutes", 599000, 30000, "9:59"},
		{"no leading zero on minutes", 600000, 60000, "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.timestampMs, tt.intervalMs)
			if got != tt.expected {
				t.Errorf("Format(%d, %d): expected %q, got %q", tt.timestampMs, tt.intervalMs, tt.expected, got)
			}
		})
	}
}

// TestFormat_Hours checks the H:MM:SS form used above one hour,
// regardless of interval tier.
func TestFormat_Hours(t *testing.T) {
	tests := []struct {
		timestampMs int64
		intervalMs  int64
		expected    string
	}{
		{3600000, 300000, "1:00:00"},
		{3661000, 300000, "1:01:01"},
		{3661999, 300000, "1:01:01"}, // seconds truncated, no fraction
		{3661000, 100, "1:01:01"},    // hours override the fine tier
		{7322000, 300000, "2:02:02"},
		{36000000, 3600000, "10:00:00"},
	}

	for _, tt := range tests {
		got := Format(tt.timestampMs, tt.intervalMs)
		if got != tt.expected {
			t.Errorf("Format(%d, %d): expected %q, got %q", tt.timestampMs, tt.intervalMs, tt.expected, got)
		}
	}
}

// TestFormat_Monotonic verifies labels never decrease for ascending
// timestamps at a fixed tier within the same hour bucket.
func TestFormat_Monotonic(t *testing.T) {
	intervals := []int64{100, 500, 1000}
	for _, interval := range intervals {
		var prev string
		for ts := int64(0); ts < 120000; ts += interval {
			got := Format(ts, interval)
			if prev != "" && len(got) == len(prev) && got < prev {
				t.Fatalf("interval %d: label %q at %dms sorts before %q", interval, got, ts, prev)
			}
			prev = got
		}
	}
}

// TestFormat_NegativeClamped verifies negative input is floored to zero.
func TestFormat_NegativeClamped(t *testing.T) {
	if got := Format(-100, 1000); got != "0:00" {
		t.Errorf("expected 0:00 for negative timestamp, got %q", got)
	}
}
