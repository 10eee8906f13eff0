package datetime

import (
	"errors"
	"testing"
)

func TestDifference(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want string
	}{
		{"clock same day", "24 Aug 2025 12:00:00", "24 Aug 2025 10:30:00", "1 hour 30 minutes 0 seconds"},
		{"clock reversed", "24 Aug 2025 10:30:00", "24 Aug 2025 12:00:00", "-1 hour 30 minutes 0 seconds"},
		{"calendar months", "Aug 2025", "May 2023", "2 years 3 months"},
		{"calendar reversed", "May 2023", "Aug 2025", "-2 years 3 months"},
		{"years only", "2025", "2020", "5 years"},
		{"mixed precision truncates", "24 Aug 2025 14:30", "23 Aug 2025", "1 day"},
		{"across leap day", "1 Mar 2024", "28 Feb 2024", "2 days"},
		{"across non-leap", "1 Mar 2023", "28 Feb 2023", "1 day"},
		{"bc to ad", "1 Jan 1", "31 Dec -1", "1 day"},
		{"equal", "24 Aug 2025", "24 Aug 2025", "0 days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Difference(mustScan(t, tt.a), mustScan(t, tt.b))
			if err != nil {
				t.Fatalf("Difference: %v", err)
			}
			if got := mustFormat(t, d); got != tt.want {
				t.Errorf("%s - %s = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDifferenceRequiresAbsolute(t *testing.T) {
	abs := mustScan(t, "24 Aug 2025")
	rel := mustScan(t, "2 days")
	if _, err := Difference(abs, rel); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("Difference(abs, rel) error = %v, want ErrInvalidOperation", err)
	}
	if _, err := Difference(rel, rel); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("Difference(rel, rel) error = %v, want ErrInvalidOperation", err)
	}
}

// The difference of a and b, applied back to b, lands on a.
func TestDifferenceIncrementInverse(t *testing.T) {
	pairs := []struct {
		a string
		b string
	}{
		{"3 Jan 2024 03:00:00", "1 Jan 2024 00:00:00"},
		{"29 Feb 2024", "31 Jan 2024"},
		{"1 Jan 2024", "31 Dec 2023"},
		{"24 Aug 2025 00:15", "23 Aug 2025 23:45"},
	}
	for _, p := range pairs {
		a, b := mustScan(t, p.a), mustScan(t, p.b)
		d, err := Difference(a, b)
		if err != nil {
			t.Fatalf("Difference(%s, %s): %v", p.a, p.b, err)
		}
		got := b.Clone()
		if err := Increment(got, d); err != nil {
			t.Fatalf("Increment(%s, %s): %v", p.b, d, err)
		}
		c, err := Compare(got, a)
		if err != nil {
			t.Fatalf("Compare: %v", err)
		}
		if c != 0 {
			t.Errorf("%s + (%s) = %s, want %s", p.b, d, got, a)
		}
	}
}
