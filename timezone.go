package datetime

import (
	"fmt"

	"github.com/rasterworks/go-datetime/debug"
)

// Timezone offsets are minutes east of UTC. The bounds below cover one
// calendar day of offset (UTC-12:00 through UTC+14:00); they are
// defaults, not an authoritative registry.
const (
	TimezoneMin = -720
	TimezoneMax = 840
)

// CheckTimezone validates an offset against the package bounds.
func CheckTimezone(minutes int) error {
	if !between(minutes, TimezoneMin, TimezoneMax) {
		return fmt.Errorf("%w: %+d minutes", ErrInvalidTimezone, minutes)
	}
	return nil
}

func (dt *DateTime) tzMutable() error {
	if err := dt.typ.Check(); err != nil {
		return err
	}
	if !dt.typ.IsAbsolute() || dt.typ.To < Hour {
		return fmt.Errorf("%w: timezone requires an absolute value with hour precision or finer",
			ErrInvalidOperation)
	}
	return nil
}

// SetTimezone attaches an offset to an absolute value whose range
// reaches Hour or finer.
func (dt *DateTime) SetTimezone(minutes int) error {
	if err := dt.tzMutable(); err != nil {
		return err
	}
	if err := CheckTimezone(minutes); err != nil {
		return err
	}
	v := minutes
	dt.tz = &v
	return nil
}

// Timezone returns the attached offset, or ErrInvalidOperation when the
// value is naive.
func (dt *DateTime) Timezone() (int, error) {
	if dt.tz == nil {
		return 0, fmt.Errorf("%w: no timezone set", ErrInvalidOperation)
	}
	return *dt.tz, nil
}

func (dt *DateTime) HasTimezone() bool { return dt.tz != nil }

// UnsetTimezone makes the value naive again.
func (dt *DateTime) UnsetTimezone() { dt.tz = nil }

// ChangeTimezone shifts the clock fields by the difference between the
// new offset and the current one, then stores the new offset. The value
// must already carry an offset.
func (dt *DateTime) ChangeTimezone(minutes int) error {
	cur, err := dt.Timezone()
	if err != nil {
		return err
	}
	if err := dt.tzMutable(); err != nil {
		return err
	}
	if err := CheckTimezone(minutes); err != nil {
		return err
	}
	shift := minutes - cur
	if debug.Tz() {
		debug.Logf("change timezone %+d -> %+d (shift %+d min)\n", cur, minutes, shift)
	}
	if shift != 0 {
		incr, err := minutesIncrement(shift)
		if err != nil {
			return err
		}
		if err := Increment(dt, incr); err != nil {
			return err
		}
	}
	v := minutes
	dt.tz = &v
	return nil
}

// ToUTC shifts the value to offset zero. Applying it twice is a no-op.
func (dt *DateTime) ToUTC() error {
	return dt.ChangeTimezone(0)
}

// DecomposeTimezone splits an offset into hour and minute components
// sharing the offset's sign.
func DecomposeTimezone(minutes int) (int, int) {
	return minutes / 60, minutes % 60
}

// minutesIncrement builds a relative hour[..minute] value for a signed
// shift of whole minutes.
func minutesIncrement(shift int) (*DateTime, error) {
	neg := shift < 0
	if neg {
		shift = -shift
	}
	to := Hour
	if shift%60 != 0 {
		to = Minute
	}
	t, err := NewType(Relative, Hour, to, 0)
	if err != nil {
		return nil, err
	}
	incr, err := New(t)
	if err != nil {
		return nil, err
	}
	if err := incr.SetHour(shift / 60); err != nil {
		return nil, err
	}
	if to == Minute {
		if err := incr.SetMinute(shift % 60); err != nil {
			return nil, err
		}
	}
	if neg {
		if err := incr.SetNegative(); err != nil {
			return nil, err
		}
	}
	return incr, nil
}
