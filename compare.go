package datetime

import (
	"cmp"
	"fmt"
)

// Compare returns an integer comparing two values of the same shape.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b. Values are
// comparable only when mode and precision range coincide; otherwise
// ErrIncomparableTypes is returned.
func Compare(a, b *DateTime) (int, error) {
	if err := a.typ.Check(); err != nil {
		return 0, err
	}
	if err := b.typ.Check(); err != nil {
		return 0, err
	}
	if a.typ.Mode != b.typ.Mode || a.typ.From != b.typ.From || a.typ.To != b.typ.To {
		return 0, fmt.Errorf("%w: %s vs %s", ErrIncomparableTypes, a.typ, b.typ)
	}
	if a.IsAbsolute() {
		return compareAbsolute(a, b), nil
	}
	if a.typ.From.IsCalendar() {
		return cmp.Compare(a.calendarMonths(), b.calendarMonths()), nil
	}
	return cmp.Compare(a.clockSeconds(), b.clockSeconds()), nil
}

func compareAbsolute(a, b *DateTime) int {
	if c := cmp.Compare(yearLinear(a.year), yearLinear(b.year)); c != 0 {
		return c
	}
	for _, f := range []Field{Month, Day, Hour, Minute} {
		if !a.typ.Includes(f) {
			return 0
		}
		av, bv := a.intField(f), b.intField(f)
		if c := cmp.Compare(av, bv); c != 0 {
			return c
		}
	}
	if !a.typ.Includes(Second) {
		return 0
	}
	return cmp.Compare(a.second, b.second)
}

func (dt *DateTime) intField(f Field) int {
	switch f {
	case Year:
		return dt.year
	case Month:
		return dt.month
	case Day:
		return dt.day
	case Hour:
		return dt.hour
	default:
		return dt.minute
	}
}

// IsSame reports exact structural equality: same type, same fields, same
// sign, same timezone state.
func IsSame(a, b *DateTime) bool {
	if a.typ != b.typ {
		return false
	}
	if a.year != b.year || a.month != b.month || a.day != b.day {
		return false
	}
	if a.hour != b.hour || a.minute != b.minute || a.second != b.second {
		return false
	}
	if a.positive != b.positive {
		return false
	}
	if (a.tz == nil) != (b.tz == nil) {
		return false
	}
	if a.tz != nil && *a.tz != *b.tz {
		return false
	}
	return true
}

// IsBetween reports a <= x <= b in comparison order. It does not require
// a <= b.
func IsBetween(x, a, b *DateTime) (bool, error) {
	c1, err := Compare(a, x)
	if err != nil {
		return false, err
	}
	c2, err := Compare(x, b)
	if err != nil {
		return false, err
	}
	return c1 <= 0 && c2 <= 0, nil
}
