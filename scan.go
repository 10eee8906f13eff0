package datetime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rasterworks/go-datetime/debug"
)

// Scan parses the canonical text encoding produced by Format, plus mild
// relaxations (missing leading zeros, optional fractional part, optional
// timezone suffix). The narrowest precision range consistent with the
// fields present is inferred; input that fits no layout is rejected
// rather than guessed at.
func Scan(s string) (*DateTime, error) {
	toks := strings.Fields(s)
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrScanMalformed)
	}
	if debug.Scan() {
		debug.Logf("scan %q\n", s)
	}
	mi := -1
	for i, tok := range toks {
		if _, ok := monthFromName(tok); ok {
			mi = i
			break
		}
	}
	if mi >= 0 {
		return scanAbsolute(toks, mi)
	}
	for _, tok := range toks {
		if _, ok := unitField(tok); ok {
			return scanRelative(toks)
		}
	}
	if len(toks) == 1 {
		return scanYearOnly(toks[0])
	}
	return nil, fmt.Errorf("%w: %q carries no month name or unit word", ErrScanAmbiguous, s)
}

func monthFromName(tok string) (int, bool) {
	for i, name := range monthNames {
		if strings.EqualFold(tok, name) {
			return i + 1, true
		}
	}
	return 0, false
}

func unitField(tok string) (Field, bool) {
	var f Field
	if err := f.UnmarshalText([]byte(strings.ToLower(strings.TrimSuffix(tok, "s")))); err != nil {
		return 0, false
	}
	return f, true
}

// mapFieldErr translates value-layer errors into scan errors.
func mapFieldErr(err error) error {
	if errors.Is(err, ErrOutOfRange) || errors.Is(err, ErrInvalidTimezone) {
		return fmt.Errorf("%w: %v", ErrScanOutOfRange, err)
	}
	return fmt.Errorf("%w: %v", ErrScanMalformed, err)
}

func scanYearOnly(tok string) (*DateTime, error) {
	year, err := strconv.Atoi(tok)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrScanMalformed, tok)
	}
	t, err := NewType(Absolute, Year, Year, 0)
	if err != nil {
		return nil, err
	}
	dt, err := New(t)
	if err != nil {
		return nil, err
	}
	if err := dt.SetYear(year); err != nil {
		return nil, mapFieldErr(err)
	}
	return dt, nil
}

func scanAbsolute(toks []string, mi int) (*DateTime, error) {
	if mi > 1 {
		return nil, fmt.Errorf("%w: month name after %q", ErrScanMalformed, toks[mi-1])
	}
	day := 0
	hasDay := mi == 1
	if hasDay {
		d, err := strconv.Atoi(toks[0])
		if err != nil {
			return nil, fmt.Errorf("%w: day %q", ErrScanMalformed, toks[0])
		}
		day = d
	}
	month, _ := monthFromName(toks[mi])
	if mi+1 >= len(toks) {
		return nil, fmt.Errorf("%w: missing year", ErrScanMalformed)
	}
	year, err := strconv.Atoi(toks[mi+1])
	if err != nil {
		return nil, fmt.Errorf("%w: year %q", ErrScanMalformed, toks[mi+1])
	}
	rest := toks[mi+2:]

	to := Month
	if hasDay {
		to = Day
	}
	var hour, minute int
	var second float64
	fracsec := 0
	if len(rest) > 0 && !isTimezoneToken(rest[0]) {
		if !hasDay {
			return nil, fmt.Errorf("%w: time of day without a day", ErrScanMalformed)
		}
		parts := strings.Split(rest[0], ":")
		if len(parts) > 3 {
			return nil, fmt.Errorf("%w: time %q", ErrScanMalformed, rest[0])
		}
		if hour, err = strconv.Atoi(parts[0]); err != nil {
			return nil, fmt.Errorf("%w: hour %q", ErrScanMalformed, parts[0])
		}
		to = Hour
		if len(parts) > 1 {
			if minute, err = strconv.Atoi(parts[1]); err != nil {
				return nil, fmt.Errorf("%w: minute %q", ErrScanMalformed, parts[1])
			}
			to = Minute
		}
		if len(parts) > 2 {
			if second, fracsec, err = parseSecond(parts[2]); err != nil {
				return nil, err
			}
			to = Second
		}
		rest = rest[1:]
	}
	tzMinutes, hasTz := 0, false
	if len(rest) > 0 && isTimezoneToken(rest[0]) {
		if to < Hour {
			return nil, fmt.Errorf("%w: timezone without time of day", ErrScanMalformed)
		}
		tzMinutes, err = parseTimezoneToken(rest[0])
		if err != nil {
			return nil, err
		}
		hasTz = true
		rest = rest[1:]
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: trailing %q", ErrScanMalformed, rest[0])
	}

	t, err := NewType(Absolute, Year, to, fracsec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanOutOfRange, err)
	}
	dt, err := New(t)
	if err != nil {
		return nil, err
	}
	if err := dt.SetYear(year); err != nil {
		return nil, mapFieldErr(err)
	}
	if err := dt.SetMonth(month); err != nil {
		return nil, mapFieldErr(err)
	}
	if hasDay {
		if err := dt.SetDay(day); err != nil {
			return nil, mapFieldErr(err)
		}
	}
	if to >= Hour {
		if err := dt.SetHour(hour); err != nil {
			return nil, mapFieldErr(err)
		}
	}
	if to >= Minute {
		if err := dt.SetMinute(minute); err != nil {
			return nil, mapFieldErr(err)
		}
	}
	if to >= Second {
		if err := dt.SetSecond(second); err != nil {
			return nil, mapFieldErr(err)
		}
	}
	if hasTz {
		if err := dt.SetTimezone(tzMinutes); err != nil {
			return nil, mapFieldErr(err)
		}
	}
	return dt, nil
}

func parseSecond(tok string) (float64, int, error) {
	sec, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: second %q", ErrScanMalformed, tok)
	}
	fracsec := 0
	if dot := strings.IndexByte(tok, '.'); dot >= 0 {
		fracsec = len(tok) - dot - 1
	}
	if fracsec > MaxFracsec {
		return 0, 0, fmt.Errorf("%w: %d fractional second digits", ErrScanOutOfRange, fracsec)
	}
	return sec, fracsec, nil
}

func isTimezoneToken(tok string) bool {
	if len(tok) != 5 || (tok[0] != '+' && tok[0] != '-') {
		return false
	}
	for _, r := range tok[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseTimezoneToken(tok string) (int, error) {
	h, _ := strconv.Atoi(tok[1:3])
	m, _ := strconv.Atoi(tok[3:5])
	minutes := h*60 + m
	if tok[0] == '-' {
		minutes = -minutes
	}
	return minutes, nil
}

func scanRelative(toks []string) (*DateTime, error) {
	if len(toks)%2 != 0 {
		return nil, fmt.Errorf("%w: want number/unit pairs", ErrScanMalformed)
	}
	negative := false
	type part struct {
		field Field
		num   string
	}
	var parts []part
	last := Field(-1)
	for i := 0; i < len(toks); i += 2 {
		num, unit := toks[i], toks[i+1]
		f, ok := unitField(unit)
		if !ok {
			return nil, fmt.Errorf("%w: unit %q", ErrScanMalformed, unit)
		}
		if f <= last {
			return nil, fmt.Errorf("%w: %s out of significance order", ErrScanMalformed, f)
		}
		if strings.HasPrefix(num, "-") {
			if i != 0 {
				return nil, fmt.Errorf("%w: interior sign on %q", ErrScanMalformed, num)
			}
			negative = true
			num = num[1:]
		}
		parts = append(parts, part{field: f, num: num})
		last = f
	}
	from, to := parts[0].field, parts[len(parts)-1].field
	if from.IsCalendar() != to.IsCalendar() {
		return nil, fmt.Errorf("%w: %s..%s spans the year-month and day-second groups",
			ErrScanMalformed, from, to)
	}
	fracsec := 0
	var second float64
	for _, p := range parts {
		if p.field != Second {
			continue
		}
		var err error
		if second, fracsec, err = parseSecond(p.num); err != nil {
			return nil, err
		}
	}
	t, err := NewType(Relative, from, to, fracsec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanMalformed, err)
	}
	dt, err := New(t)
	if err != nil {
		return nil, err
	}
	for _, p := range parts {
		if p.field == Second {
			err = dt.SetSecond(second)
		} else {
			v, convErr := strconv.Atoi(p.num)
			if convErr != nil {
				return nil, fmt.Errorf("%w: %s %q", ErrScanMalformed, p.field, p.num)
			}
			switch p.field {
			case Year:
				err = dt.SetYear(v)
			case Month:
				err = dt.SetMonth(v)
			case Day:
				err = dt.SetDay(v)
			case Hour:
				err = dt.SetHour(v)
			case Minute:
				err = dt.SetMinute(v)
			}
		}
		if err != nil {
			return nil, mapFieldErr(err)
		}
	}
	if negative {
		if err := dt.SetNegative(); err != nil {
			return nil, err
		}
	}
	return dt, nil
}
