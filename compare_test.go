package datetime

import (
	"errors"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"equal absolute", "24 Aug 2025 14:30", "24 Aug 2025 14:30", 0},
		{"earlier hour", "24 Aug 2025 10:00", "24 Aug 2025 12:00", -1},
		{"later day", "25 Aug 2025", "24 Aug 2025", 1},
		{"bc before ad", "15 Jun -1", "15 Jun 1", -1},
		{"bc ordering", "15 Jun -2", "15 Jun -1", -1},
		{"relative equal totals", "90 minutes", "90 minutes", 0},
		{"relative carry-free", "2 hours 30 minutes", "2 hours 45 minutes", -1},
		{"negative below positive", "-30 minutes", "30 minutes", -1},
		{"calendar totals", "1 year 11 months", "2 years 0 months", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := mustScan(t, tt.a), mustScan(t, tt.b)
			got, err := Compare(a, b)
			if err != nil {
				t.Fatalf("Compare: %v", err)
			}
			if got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			// antisymmetry
			rev, err := Compare(b, a)
			if err != nil {
				t.Fatalf("Compare reversed: %v", err)
			}
			if rev != -got {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.b, tt.a, rev, -got)
			}
		})
	}
}

func TestCompareIncomparable(t *testing.T) {
	tests := []struct {
		a string
		b string
	}{
		{"2025", "Aug 2025"},
		{"24 Aug 2025", "2 days"},
		{"30 minutes", "2 hours 30 minutes"},
	}
	for _, tt := range tests {
		_, err := Compare(mustScan(t, tt.a), mustScan(t, tt.b))
		if !errors.Is(err, ErrIncomparableTypes) {
			t.Errorf("Compare(%s, %s) error = %v, want ErrIncomparableTypes", tt.a, tt.b, err)
		}
	}
}

func TestIsBetween(t *testing.T) {
	a := mustScan(t, "24 Aug 2025 10:00")
	b := mustScan(t, "24 Aug 2025 12:00")
	mid := mustScan(t, "24 Aug 2025 11:15")
	out := mustScan(t, "24 Aug 2025 13:00")

	ok, err := IsBetween(mid, a, b)
	if err != nil || !ok {
		t.Errorf("IsBetween(mid) = %v, %v", ok, err)
	}
	ok, err = IsBetween(a, a, b)
	if err != nil || !ok {
		t.Errorf("IsBetween(endpoint) = %v, %v", ok, err)
	}
	ok, err = IsBetween(out, a, b)
	if err != nil || ok {
		t.Errorf("IsBetween(out) = %v, %v", ok, err)
	}
}

func TestIsSame(t *testing.T) {
	a := mustScan(t, "24 Aug 2025 14:30:00 +0130")
	if !IsSame(a, a.Clone()) {
		t.Error("value differs from its clone")
	}

	naive := a.Clone()
	naive.UnsetTimezone()
	if IsSame(a, naive) {
		t.Error("timezone state ignored")
	}

	neg := mustScan(t, "-2 days")
	pos := mustScan(t, "2 days")
	if IsSame(neg, pos) {
		t.Error("sign ignored")
	}
}
