package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	datetime "github.com/rasterworks/go-datetime"
)

func mustScan(t *testing.T, s string) *datetime.DateTime {
	t.Helper()
	dt, err := datetime.Scan(s)
	if err != nil {
		t.Fatalf("scan %q: %v", s, err)
	}
	return dt
}

func TestEncodePlain(t *testing.T) {
	for _, s := range []string{
		"24 Aug 2025 14:30:45 +0130",
		"2 hours 30 minutes",
		"Aug 2025",
	} {
		var buf bytes.Buffer
		if err := Encode(mustScan(t, s), &buf); err != nil {
			t.Fatalf("Encode(%q): %v", s, err)
		}
		if buf.String() != s {
			t.Errorf("Encode(%q) = %q", s, buf.String())
		}
	}
}

func TestEncodeUTC(t *testing.T) {
	dt := mustScan(t, "24 Aug 2025 14:30:00 +0130")
	var buf bytes.Buffer
	if err := Encode(dt, &buf, EncodeUTC(true)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "24 Aug 2025 13:00:00 +0000" {
		t.Errorf("utc output = %q", got)
	}
	// the input value is untouched
	if got := dt.String(); got != "24 Aug 2025 14:30:00 +0130" {
		t.Errorf("input mutated to %q", got)
	}

	// naive values pass through
	buf.Reset()
	if err := Encode(mustScan(t, "24 Aug 2025"), &buf, EncodeUTC(true)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "24 Aug 2025" {
		t.Errorf("naive output = %q", got)
	}
}

func TestEncodeColors(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	var buf bytes.Buffer
	err := Encode(mustScan(t, "24 Aug 2025 14:30:45 +0130"), &buf, EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("no escape sequences in %q", out)
	}
	stripped := stripANSI(out)
	if stripped != "24 Aug 2025 14:30:45 +0130" {
		t.Errorf("stripped output = %q", stripped)
	}

	// nil scheme leaves output plain
	buf.Reset()
	if err := Encode(mustScan(t, "Aug 2025"), &buf, EncodeColors(nil)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Aug 2025" {
		t.Errorf("nil colors output = %q", buf.String())
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(mustScan(t, "2 days")); got != "2 days" {
		t.Errorf("MustString = %q", got)
	}
}

func TestClassify(t *testing.T) {
	abs := mustScan(t, "24 Aug 2025 14:30:45 +0130")
	rel := mustScan(t, "2 hours 30 minutes")
	tests := []struct {
		dt   *datetime.DateTime
		tok  string
		want Part
	}{
		{abs, "24", DatePart},
		{abs, "Aug", DatePart},
		{abs, "14:30:45", TimePart},
		{abs, "+0130", ZonePart},
		{rel, "2", NumberPart},
		{rel, "hours", UnitPart},
	}
	for _, tt := range tests {
		if got := classify(tt.dt, tt.tok); got != tt.want {
			t.Errorf("classify(%q) = %v, want %v", tt.tok, got, tt.want)
		}
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
