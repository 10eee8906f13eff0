package datetime

import (
	"math"

	"github.com/rasterworks/go-datetime/debug"
)

// ChangeRange produces a copy of dt carrying the range [from, to].
// Overlapping fields are copied; newly included fields start at their
// minima. When narrowing with round set, the retained finest field is
// rounded half away from zero by the dropped fields, with carries
// resolved through Increment.
func ChangeRange(dt *DateTime, from, to Field, round bool) (*DateTime, error) {
	if err := dt.typ.Check(); err != nil {
		return nil, err
	}
	fracsec := dt.typ.Fracsec
	if to != Second {
		fracsec = 0
	}
	nt, err := NewType(dt.typ.Mode, from, to, fracsec)
	if err != nil {
		return nil, err
	}
	if debug.Change() {
		debug.Logf("change range %s -> %s round=%v\n", dt.typ, nt, round)
	}
	res, err := New(nt)
	if err != nil {
		return nil, err
	}
	res.positive = dt.positive
	if dt.tz != nil && nt.IsAbsolute() && nt.To >= Hour {
		v := *dt.tz
		res.tz = &v
	}
	for _, f := range Fields() {
		if !nt.Includes(f) || !dt.typ.Includes(f) {
			continue
		}
		switch f {
		case Year:
			res.year = dt.year
		case Month:
			res.month = dt.month
		case Day:
			res.day = dt.day
		case Hour:
			res.hour = dt.hour
		case Minute:
			res.minute = dt.minute
		case Second:
			res.second = dt.second
		}
	}
	if round && to < dt.typ.To {
		if n := roundUnits(dt, to); n > 0 {
			if err := incrementUnits(res, to, n); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

// roundUnits counts how many whole units of the retained finest field
// the dropped finer fields amount to, half away from zero. Relative
// magnitudes are unnormalized, so the dropped fields may sum to several
// units.
func roundUnits(dt *DateTime, to Field) int {
	switch to {
	case Year:
		if !dt.typ.Includes(Month) {
			return 0
		}
		if dt.typ.IsAbsolute() {
			if dt.month > 6 {
				return 1
			}
			return 0
		}
		return (2*dt.month + 12) / 24
	case Month:
		if !dt.typ.Includes(Day) {
			return 0
		}
		// only reachable for absolute values; a relative range cannot
		// span month and day
		if 2*dt.day > DaysInMonth(dt.year, dt.month) {
			return 1
		}
		return 0
	default:
		dropped := 0.0
		if to < Hour && dt.typ.Includes(Hour) {
			dropped += float64(dt.hour) * 3600
		}
		if to < Minute && dt.typ.Includes(Minute) {
			dropped += float64(dt.minute) * 60
		}
		if dt.typ.Includes(Second) {
			dropped += dt.second
		}
		return int(math.Floor(dropped/fieldSeconds(to) + 0.5))
	}
}

// incrementUnits bumps dt by n units of field f, away from zero for
// negative relative values.
func incrementUnits(dt *DateTime, f Field, n int) error {
	var t Type
	var err error
	if f.IsCalendar() {
		t, err = NewType(Relative, f, f, 0)
	} else {
		t, err = NewType(Relative, Day, f, 0)
	}
	if err != nil {
		return err
	}
	unit, err := New(t)
	if err != nil {
		return err
	}
	switch f {
	case Year:
		err = unit.SetYear(n)
	case Month:
		err = unit.SetMonth(n)
	case Day:
		err = unit.SetDay(n)
	case Hour:
		err = unit.SetHour(n)
	case Minute:
		err = unit.SetMinute(n)
	default:
		err = unit.SetSecond(float64(n))
	}
	if err != nil {
		return err
	}
	if dt.IsNegative() {
		if err := unit.SetNegative(); err != nil {
			return err
		}
	}
	return Increment(dt, unit)
}
