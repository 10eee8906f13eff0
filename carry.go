package datetime

import "math"

// This file is the single carry/borrow engine behind Increment,
// Difference, ChangeTimezone and ChangeRange rounding. Absolute values
// normalize field by field with calendar-aware moduli; relative values
// convert to a signed total in their group's finest common unit and
// decompose back over the included fields.

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// addYears advances a civil year by n, skipping the nonexistent year 0.
func addYears(year, n int) int {
	r := year + n
	if year > 0 && r <= 0 {
		r--
	}
	if year < 0 && r >= 0 {
		r++
	}
	return r
}

// yearLinear maps civil years onto a gapless axis: ..., -1 -> 0 (1 BC),
// 1 -> 1. linearYear is its inverse.
func yearLinear(year int) int {
	if year < 0 {
		return year + 1
	}
	return year
}

func linearYear(l int) int {
	if l <= 0 {
		return l - 1
	}
	return l
}

// normalizeAbsolute resolves carries and borrows after raw field deltas
// have been applied to an absolute value. Carries run least significant
// field first; the day modulus is recomputed after month and year settle.
func (dt *DateTime) normalizeAbsolute() {
	t := dt.typ
	if t.Includes(Second) {
		n := math.Floor(dt.second / 60)
		dt.second -= n * 60
		dt.minute += int(n)
	}
	if t.Includes(Minute) {
		n := floorDiv(dt.minute, 60)
		dt.minute = floorMod(dt.minute, 60)
		dt.hour += n
	}
	if t.Includes(Hour) {
		n := floorDiv(dt.hour, 24)
		dt.hour = floorMod(dt.hour, 24)
		dt.day += n
	}
	if t.Includes(Month) {
		m0 := dt.month - 1
		n := floorDiv(m0, 12)
		dt.month = floorMod(m0, 12) + 1
		if n != 0 {
			dt.year = addYears(dt.year, n)
		}
	}
	if t.Includes(Day) {
		for dt.day > DaysInMonth(dt.year, dt.month) {
			dt.day -= DaysInMonth(dt.year, dt.month)
			dt.month++
			if dt.month > 12 {
				dt.month = 1
				dt.year = addYears(dt.year, 1)
			}
		}
		for dt.day < 1 {
			dt.month--
			if dt.month < 1 {
				dt.month = 12
				dt.year = addYears(dt.year, -1)
			}
			dt.day += DaysInMonth(dt.year, dt.month)
		}
	}
}

func fieldSeconds(f Field) float64 {
	switch f {
	case Day:
		return 86400
	case Hour:
		return 3600
	case Minute:
		return 60
	default:
		return 1
	}
}

// clockSeconds returns the signed total of a relative day-second value.
func (dt *DateTime) clockSeconds() float64 {
	total := 0.0
	if dt.typ.Includes(Day) {
		total += float64(dt.day) * 86400
	}
	if dt.typ.Includes(Hour) {
		total += float64(dt.hour) * 3600
	}
	if dt.typ.Includes(Minute) {
		total += float64(dt.minute) * 60
	}
	if dt.typ.Includes(Second) {
		total += dt.second
	}
	if !dt.positive {
		total = -total
	}
	return total
}

// setClockSeconds decomposes a signed total back over the included
// day-second fields; the coarsest included field absorbs the excess.
func (dt *DateTime) setClockSeconds(total float64) {
	dt.positive = total >= 0
	rem := math.Abs(total)
	dt.day, dt.hour, dt.minute, dt.second = 0, 0, 0, 0
	for _, f := range []Field{Day, Hour, Minute} {
		if !dt.typ.Includes(f) {
			continue
		}
		n := math.Floor(rem / fieldSeconds(f))
		rem -= n * fieldSeconds(f)
		switch f {
		case Day:
			dt.day = int(n)
		case Hour:
			dt.hour = int(n)
		case Minute:
			dt.minute = int(n)
		}
	}
	if dt.typ.Includes(Second) {
		dt.second = rem
	}
}

// calendarMonths returns the signed total of a relative year-month value.
func (dt *DateTime) calendarMonths() int {
	total := 0
	if dt.typ.Includes(Year) {
		total += dt.year * 12
	}
	if dt.typ.Includes(Month) {
		total += dt.month
	}
	if !dt.positive {
		total = -total
	}
	return total
}

func (dt *DateTime) setCalendarMonths(total int) {
	dt.positive = total >= 0
	if total < 0 {
		total = -total
	}
	dt.year, dt.month = 0, 0
	switch {
	case dt.typ.Includes(Year) && dt.typ.Includes(Month):
		dt.year = total / 12
		dt.month = total % 12
	case dt.typ.Includes(Year):
		dt.year = total / 12
	default:
		dt.month = total
	}
}
