package datetime

import (
	"fmt"

	"github.com/rasterworks/go-datetime/debug"
)

// civilDays counts days since 1970-01-01 in the proleptic Gregorian
// calendar. year is on the gapless axis produced by yearLinear.
func civilDays(year int64, month, day int) int64 {
	y := year
	if month <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	var m int64
	if month > 2 {
		m = int64(month) - 3
	} else {
		m = int64(month) + 9
	}
	doy := (153*m+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// Difference computes a - b as a relative value. Both operands must be
// absolute. When both ranges end within the year-month group the result
// is a year-month interval; otherwise it is a day-second interval ending
// at the coarser of the two To fields. The sign is positive when a >= b.
func Difference(a, b *DateTime) (*DateTime, error) {
	if err := a.typ.Check(); err != nil {
		return nil, err
	}
	if err := b.typ.Check(); err != nil {
		return nil, err
	}
	if !a.IsAbsolute() || !b.IsAbsolute() {
		return nil, fmt.Errorf("%w: difference requires absolute operands", ErrInvalidOperation)
	}
	to := a.typ.To
	if b.typ.To < to {
		to = b.typ.To
	}
	if debug.Diff() {
		debug.Logf("difference %s - %s at %s\n", a.typ, b.typ, to)
	}
	if to.IsCalendar() {
		t, err := NewType(Relative, Year, to, 0)
		if err != nil {
			return nil, err
		}
		res, err := New(t)
		if err != nil {
			return nil, err
		}
		res.setCalendarMonths(linearMonths(a, to) - linearMonths(b, to))
		return res, nil
	}
	fracsec := a.typ.Fracsec
	if b.typ.Fracsec < fracsec {
		fracsec = b.typ.Fracsec
	}
	if to != Second {
		fracsec = 0
	}
	t, err := NewType(Relative, Day, to, fracsec)
	if err != nil {
		return nil, err
	}
	res, err := New(t)
	if err != nil {
		return nil, err
	}
	res.setClockSeconds(linearSeconds(a, to) - linearSeconds(b, to))
	return res, nil
}

// linearMonths positions an absolute value on a gapless month axis,
// counting only fields up to the given precision.
func linearMonths(dt *DateTime, to Field) int {
	months := yearLinear(dt.year) * 12
	if to >= Month {
		months += dt.month - 1
	}
	return months
}

// linearSeconds positions an absolute value on a gapless second axis,
// counting only fields up to the given precision.
func linearSeconds(dt *DateTime, to Field) float64 {
	total := float64(civilDays(int64(yearLinear(dt.year)), dt.month, dt.day)) * 86400
	if to >= Hour {
		total += float64(dt.hour) * 3600
	}
	if to >= Minute {
		total += float64(dt.minute) * 60
	}
	if to >= Second {
		total += dt.second
	}
	return total
}
