package datetime

import "testing"

// Scan is a left inverse of Format on canonical strings: formatting a
// scanned canonical string reproduces it byte for byte.
func TestCanonicalRoundTrip(t *testing.T) {
	canon := []string{
		"2025",
		"-44",
		"Aug 2025",
		"24 Aug 2025",
		"24 Aug 2025 14",
		"24 Aug 2025 14:30",
		"24 Aug 2025 14:30:45",
		"24 Aug 2025 14:30:45.50",
		"24 Aug 2025 14:30:45 +0130",
		"24 Aug 2025 14:30:45.500000 -1200",
		"1 Jan 1 00:00:00",
		"31 Dec -1 23:59:59",
		"5 years",
		"2 years 3 months",
		"1 year 0 months",
		"1 day 6 hours",
		"1 day 0 hours 30 minutes",
		"30 minutes",
		"0 seconds",
		"1 second",
		"45.500 seconds",
		"2 hours 30 minutes",
		"-2 hours 30 minutes",
		"-1 day",
	}
	for _, s := range canon {
		t.Run(s, func(t *testing.T) {
			dt := mustScan(t, s)
			if got := mustFormat(t, dt); got != s {
				t.Errorf("Format(Scan(%q)) = %q", s, got)
			}
			// the value also survives a second pass
			again := mustScan(t, mustFormat(t, dt))
			if !IsSame(dt, again) {
				t.Errorf("second pass of %q differs: %v vs %v", s, dt, again)
			}
		})
	}
}
