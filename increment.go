package datetime

import (
	"fmt"

	"github.com/rasterworks/go-datetime/debug"
)

// CheckIncrement reports whether incr may be applied to src. incr must be
// relative, must not be finer than src, and for a relative src must live
// in the same field group.
func CheckIncrement(src, incr *DateTime) error {
	if err := src.typ.Check(); err != nil {
		return err
	}
	if err := incr.typ.Check(); err != nil {
		return err
	}
	if !incr.IsRelative() {
		return fmt.Errorf("%w: increment must be relative, got %s", ErrInvalidOperation, incr.typ)
	}
	if incr.typ.To > src.typ.To {
		return fmt.Errorf("%w: increment %s finer than base %s", ErrIncompatibleRanges, incr.typ, src.typ)
	}
	if src.IsRelative() && src.typ.From.IsCalendar() != incr.typ.From.IsCalendar() {
		return fmt.Errorf("%w: increment %s against base %s", ErrIncompatibleRanges, incr.typ, src.typ)
	}
	if src.IsAbsolute() && incr.typ.From.IsClock() && src.typ.To < Day {
		return fmt.Errorf("%w: day-second increment against %s", ErrIncompatibleRanges, src.typ)
	}
	return nil
}

// IsValidIncrement is the predicate form of CheckIncrement.
func IsValidIncrement(src, incr *DateTime) bool {
	return CheckIncrement(src, incr) == nil
}

// Increment applies the relative value incr to src in place. Additions
// land on the matching fields and carries propagate upward, least
// significant field first, with the day modulus recomputed after month
// and year settle. Fields outside src's range are untouched. Borrowing
// for a negative incr runs the same machinery in reverse.
func Increment(src, incr *DateTime) error {
	if err := CheckIncrement(src, incr); err != nil {
		return err
	}
	if debug.Incr() {
		debug.Logf("increment %s by %s\n", src.typ, incr.typ)
	}
	if src.IsAbsolute() {
		sign := 1
		if !incr.positive {
			sign = -1
		}
		if incr.typ.From.IsCalendar() {
			if incr.typ.Includes(Year) {
				src.year = addYears(src.year, sign*incr.year)
			}
			if incr.typ.Includes(Month) {
				src.month += sign * incr.month
			}
		} else {
			if incr.typ.Includes(Day) {
				src.day += sign * incr.day
			}
			if incr.typ.Includes(Hour) {
				src.hour += sign * incr.hour
			}
			if incr.typ.Includes(Minute) {
				src.minute += sign * incr.minute
			}
			if incr.typ.Includes(Second) {
				src.second += float64(sign) * incr.second
			}
		}
		src.normalizeAbsolute()
		return nil
	}
	if src.typ.From.IsCalendar() {
		src.setCalendarMonths(src.calendarMonths() + incr.calendarMonths())
	} else {
		src.setClockSeconds(src.clockSeconds() + incr.clockSeconds())
	}
	return nil
}

// IncrementType returns the natural increment type for dt: relative,
// ending at dt's finest field, beginning at the top of that field's
// group.
func IncrementType(dt *DateTime) (Type, error) {
	if err := dt.typ.Check(); err != nil {
		return Type{}, err
	}
	t := Type{Mode: Relative, To: dt.typ.To, Fracsec: dt.typ.Fracsec}
	if dt.typ.To.IsCalendar() {
		t.From = Year
	} else {
		t.From = Day
	}
	return t, nil
}

// NewIncrement constructs a zero increment of dt's natural increment
// type.
func NewIncrement(dt *DateTime) (*DateTime, error) {
	t, err := IncrementType(dt)
	if err != nil {
		return nil, err
	}
	return New(t)
}
