package datetime

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Format renders the canonical text encoding of dt:
//
//	absolute: D Mon YYYY HH:MM:SS[.f] [+HHMM|-HHMM]
//	relative: [-]N unit(s) ...
//
// driven purely by the precision range and fracsec. Only in-range fields
// are emitted; zero-valued leading components of relative values are
// omitted.
func Format(dt *DateTime) (string, error) {
	if err := dt.typ.Check(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFormat, err)
	}
	// Printing rounds the second to Fracsec digits. When the stored
	// value rounds to 60 the carry has to happen before rendering, or
	// the output would not re-scan.
	if dt.typ.Includes(Second) && roundSecond(dt.second, dt.typ.Fracsec) >= 60 {
		dt = dt.Clone()
		dt.second = roundSecond(dt.second, dt.typ.Fracsec)
		if dt.IsAbsolute() {
			dt.normalizeAbsolute()
		} else {
			dt.setClockSeconds(dt.clockSeconds())
		}
	}
	if dt.IsAbsolute() {
		return formatAbsolute(dt), nil
	}
	return formatRelative(dt), nil
}

func roundSecond(sec float64, fracsec int) float64 {
	p := math.Pow(10, float64(fracsec))
	return math.Round(sec*p) / p
}

func formatAbsolute(dt *DateTime) string {
	var b strings.Builder
	if dt.typ.Includes(Day) {
		fmt.Fprintf(&b, "%d ", dt.day)
	}
	if dt.typ.Includes(Month) {
		fmt.Fprintf(&b, "%s ", monthNames[dt.month-1])
	}
	fmt.Fprintf(&b, "%d", dt.year)
	if dt.typ.Includes(Hour) {
		fmt.Fprintf(&b, " %02d", dt.hour)
	}
	if dt.typ.Includes(Minute) {
		fmt.Fprintf(&b, ":%02d", dt.minute)
	}
	if dt.typ.Includes(Second) {
		b.WriteByte(':')
		b.WriteString(formatSecond(dt.second, dt.typ.Fracsec))
	}
	if dt.tz != nil {
		h, m := DecomposeTimezone(*dt.tz)
		sign := "+"
		if *dt.tz < 0 {
			sign = "-"
			h, m = -h, -m
		}
		fmt.Fprintf(&b, " %s%02d%02d", sign, h, m)
	}
	return b.String()
}

// formatSecond pads the integer part to two digits and prints exactly
// fracsec fractional digits, rounding the stored value.
func formatSecond(sec float64, fracsec int) string {
	w := 2
	if fracsec > 0 {
		w = fracsec + 3
	}
	return fmt.Sprintf("%0*.*f", w, fracsec, sec)
}

func formatRelative(dt *DateTime) string {
	type comp struct {
		num  string
		unit string
	}
	var comps []comp
	leading := true
	for _, f := range Fields() {
		if !dt.typ.Includes(f) {
			continue
		}
		var num string
		var one bool
		if f == Second {
			num = strconv.FormatFloat(dt.second, 'f', dt.typ.Fracsec, 64)
			one = dt.second == 1
		} else {
			v := dt.intField(f)
			num = strconv.Itoa(v)
			one = v == 1
		}
		if leading && f != dt.typ.To && isZeroNum(num) {
			continue
		}
		leading = false
		unit := f.String()
		if !one {
			unit += "s"
		}
		comps = append(comps, comp{num: num, unit: unit})
	}
	var b strings.Builder
	if dt.IsNegative() && !isZeroRelative(dt) {
		b.WriteByte('-')
	}
	for i, c := range comps {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.num)
		b.WriteByte(' ')
		b.WriteString(c.unit)
	}
	return b.String()
}

func isZeroNum(num string) bool {
	for _, r := range num {
		if r != '0' && r != '.' {
			return false
		}
	}
	return true
}

func isZeroRelative(dt *DateTime) bool {
	return dt.year == 0 && dt.month == 0 && dt.day == 0 &&
		dt.hour == 0 && dt.minute == 0 && dt.second == 0
}
