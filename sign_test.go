package datetime

import (
	"errors"
	"testing"
)

func TestSign(t *testing.T) {
	rel := mustScan(t, "2 days")
	if !rel.IsPositive() || rel.IsNegative() {
		t.Fatal("fresh relative value should be positive")
	}
	if err := rel.SetNegative(); err != nil {
		t.Fatal(err)
	}
	if got := mustFormat(t, rel); got != "-2 days" {
		t.Errorf("after SetNegative: %q", got)
	}
	if err := rel.InvertSign(); err != nil {
		t.Fatal(err)
	}
	if got := mustFormat(t, rel); got != "2 days" {
		t.Errorf("after InvertSign: %q", got)
	}

	abs := mustScan(t, "24 Aug 2025")
	if !abs.IsPositive() || abs.IsNegative() {
		t.Error("absolute values are always positive")
	}
	if err := abs.SetNegative(); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("SetNegative on absolute error = %v, want ErrInvalidOperation", err)
	}
	if err := abs.InvertSign(); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("InvertSign on absolute error = %v, want ErrInvalidOperation", err)
	}
}

func TestZeroSignFormatting(t *testing.T) {
	z := mustScan(t, "0 days")
	if err := z.SetNegative(); err != nil {
		t.Fatal(err)
	}
	// a zero magnitude never prints a sign
	if got := mustFormat(t, z); got != "0 days" {
		t.Errorf("negative zero = %q, want %q", got, "0 days")
	}
}
