package datetime

// LocalTime carries wall-clock fields read by the host environment. The
// library never queries the operating system itself; a collaborator
// fills this in and the core only validates and stores it.
type LocalTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second float64

	// Offset is the local UTC offset in minutes east, nil when unknown.
	Offset *int
}

// FromLocalTime validates lt and stores it into a full-range absolute
// value with the given fractional second precision.
func FromLocalTime(lt LocalTime, fracsec int) (*DateTime, error) {
	t, err := NewType(Absolute, Year, Second, fracsec)
	if err != nil {
		return nil, err
	}
	dt, err := New(t)
	if err != nil {
		return nil, err
	}
	if err := dt.SetYear(lt.Year); err != nil {
		return nil, err
	}
	if err := dt.SetMonth(lt.Month); err != nil {
		return nil, err
	}
	if err := dt.SetDay(lt.Day); err != nil {
		return nil, err
	}
	if err := dt.SetHour(lt.Hour); err != nil {
		return nil, err
	}
	if err := dt.SetMinute(lt.Minute); err != nil {
		return nil, err
	}
	if err := dt.SetSecond(lt.Second); err != nil {
		return nil, err
	}
	if lt.Offset != nil {
		if err := dt.SetTimezone(*lt.Offset); err != nil {
			return nil, err
		}
	}
	return dt, nil
}
