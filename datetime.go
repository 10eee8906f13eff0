package datetime

import "fmt"

// DateTime is a calendar value bound to one Type for its lifetime. Only
// fields within the type's [From, To] range are meaningful; the rest are
// left at their zero values and ignored by every operation.
//
// Fields are reached through the typed accessors, which validate against
// calendar bounds and the precision range before storing anything.
type DateTime struct {
	typ    Type
	year   int
	month  int
	day    int
	hour   int
	minute int
	second float64

	// positive is the sign of relative values; absolute values are
	// implicitly positive.
	positive bool

	// tz is the UTC offset in minutes for absolute values, nil when the
	// value is naive.
	tz *int
}

// New constructs an empty value of the given type. In-range calendar
// fields of absolute values start at their minima (year 1, 1 Jan) so a
// fresh value is already valid.
func New(t Type) (*DateTime, error) {
	if err := t.Check(); err != nil {
		return nil, err
	}
	dt := &DateTime{typ: t, positive: true}
	if t.IsAbsolute() {
		dt.year = 1
		dt.month = 1
		dt.day = 1
	}
	return dt, nil
}

// Type returns the value's descriptor.
func (dt *DateTime) Type() Type { return dt.typ }

func (dt *DateTime) IsAbsolute() bool { return dt.typ.IsAbsolute() }
func (dt *DateTime) IsRelative() bool { return dt.typ.IsRelative() }

// Clone returns a deep, independent copy.
func (dt *DateTime) Clone() *DateTime {
	res := &DateTime{}
	return dt.CloneTo(res)
}

// CloneTo copies dt into dst and returns dst.
func (dt *DateTime) CloneTo(dst *DateTime) *DateTime {
	*dst = *dt
	if dt.tz != nil {
		v := *dt.tz
		dst.tz = &v
	}
	return dst
}

func (dt *DateTime) include(f Field) error {
	if err := dt.typ.Check(); err != nil {
		return err
	}
	if !dt.typ.Includes(f) {
		return fmt.Errorf("%w: %s not in %s", ErrPrecisionNotIncluded, f, dt.typ)
	}
	return nil
}

// CheckYear validates year against dt's mode without storing it.
// Absolute years are nonzero (1 BC is -1, there is no year 0); relative
// magnitudes are unsigned.
func (dt *DateTime) CheckYear(year int) error {
	if dt.typ.IsAbsolute() && year == 0 {
		return fmt.Errorf("%w: year 0", ErrOutOfRange)
	}
	if dt.typ.IsRelative() && year < 0 {
		return fmt.Errorf("%w: year %d (relative magnitudes carry no sign)", ErrOutOfRange, year)
	}
	return nil
}

func (dt *DateTime) CheckMonth(month int) error {
	if dt.typ.IsAbsolute() && !between(month, 1, 12) {
		return fmt.Errorf("%w: month %d", ErrOutOfRange, month)
	}
	if dt.typ.IsRelative() && month < 0 {
		return fmt.Errorf("%w: month %d", ErrOutOfRange, month)
	}
	return nil
}

// CheckDay validates day against the month currently stored in dt, so
// absolute values want year and month set first.
func (dt *DateTime) CheckDay(day int) error {
	if dt.typ.IsAbsolute() && !between(day, 1, DaysInMonth(dt.year, dt.month)) {
		return fmt.Errorf("%w: day %d of %d-%02d", ErrOutOfRange, day, dt.year, dt.month)
	}
	if dt.typ.IsRelative() && day < 0 {
		return fmt.Errorf("%w: day %d", ErrOutOfRange, day)
	}
	return nil
}

func (dt *DateTime) CheckHour(hour int) error {
	if dt.typ.IsAbsolute() && !between(hour, 0, 23) {
		return fmt.Errorf("%w: hour %d", ErrOutOfRange, hour)
	}
	if dt.typ.IsRelative() && hour < 0 {
		return fmt.Errorf("%w: hour %d", ErrOutOfRange, hour)
	}
	return nil
}

func (dt *DateTime) CheckMinute(minute int) error {
	if dt.typ.IsAbsolute() && !between(minute, 0, 59) {
		return fmt.Errorf("%w: minute %d", ErrOutOfRange, minute)
	}
	if dt.typ.IsRelative() && minute < 0 {
		return fmt.Errorf("%w: minute %d", ErrOutOfRange, minute)
	}
	return nil
}

// CheckSecond validates second. Absolute seconds live in [0, 60); 60 is
// reserved for a future leap second representation and rejected today.
func (dt *DateTime) CheckSecond(second float64) error {
	if dt.typ.IsAbsolute() && !(second >= 0 && second < 60) {
		return fmt.Errorf("%w: second %g", ErrOutOfRange, second)
	}
	if dt.typ.IsRelative() && second < 0 {
		return fmt.Errorf("%w: second %g", ErrOutOfRange, second)
	}
	return nil
}

func (dt *DateTime) SetYear(year int) error {
	if err := dt.include(Year); err != nil {
		return err
	}
	if err := dt.CheckYear(year); err != nil {
		return err
	}
	dt.year = year
	return nil
}

func (dt *DateTime) SetMonth(month int) error {
	if err := dt.include(Month); err != nil {
		return err
	}
	if err := dt.CheckMonth(month); err != nil {
		return err
	}
	dt.month = month
	return nil
}

func (dt *DateTime) SetDay(day int) error {
	if err := dt.include(Day); err != nil {
		return err
	}
	if err := dt.CheckDay(day); err != nil {
		return err
	}
	dt.day = day
	return nil
}

func (dt *DateTime) SetHour(hour int) error {
	if err := dt.include(Hour); err != nil {
		return err
	}
	if err := dt.CheckHour(hour); err != nil {
		return err
	}
	dt.hour = hour
	return nil
}

func (dt *DateTime) SetMinute(minute int) error {
	if err := dt.include(Minute); err != nil {
		return err
	}
	if err := dt.CheckMinute(minute); err != nil {
		return err
	}
	dt.minute = minute
	return nil
}

func (dt *DateTime) SetSecond(second float64) error {
	if err := dt.include(Second); err != nil {
		return err
	}
	if err := dt.CheckSecond(second); err != nil {
		return err
	}
	dt.second = second
	return nil
}

func (dt *DateTime) Year() (int, error) {
	if err := dt.include(Year); err != nil {
		return 0, err
	}
	return dt.year, nil
}

func (dt *DateTime) Month() (int, error) {
	if err := dt.include(Month); err != nil {
		return 0, err
	}
	return dt.month, nil
}

func (dt *DateTime) Day() (int, error) {
	if err := dt.include(Day); err != nil {
		return 0, err
	}
	return dt.day, nil
}

func (dt *DateTime) Hour() (int, error) {
	if err := dt.include(Hour); err != nil {
		return 0, err
	}
	return dt.hour, nil
}

func (dt *DateTime) Minute() (int, error) {
	if err := dt.include(Minute); err != nil {
		return 0, err
	}
	return dt.minute, nil
}

func (dt *DateTime) Second() (float64, error) {
	if err := dt.include(Second); err != nil {
		return 0, err
	}
	return dt.second, nil
}

// Fracsec returns the fractional second digit count of the type.
func (dt *DateTime) Fracsec() int { return dt.typ.Fracsec }

// SetFracsec changes the fractional second digit count; the range must
// end at Second.
func (dt *DateTime) SetFracsec(fracsec int) error {
	nt := dt.typ
	nt.Fracsec = fracsec
	if err := nt.Check(); err != nil {
		return err
	}
	dt.typ = nt
	return nil
}
