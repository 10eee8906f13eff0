package datetime

import "fmt"

// Field identifies one precision field of a datetime value, ordered from
// most significant (Year) to least significant (Second).
type Field int

const (
	Year Field = iota
	Month
	Day
	Hour
	Minute
	Second
)

func (f Field) String() string {
	s, ok := map[Field]string{
		Year:   "year",
		Month:  "month",
		Day:    "day",
		Hour:   "hour",
		Minute: "minute",
		Second: "second",
	}[f]
	if ok {
		return s
	}
	return "<unknown field>"
}

func (f Field) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: field %d", ErrInvalidType, int(f))
	}
	return []byte(f.String()), nil
}

func (f *Field) UnmarshalText(d []byte) error {
	ff, ok := map[string]Field{
		"year":   Year,
		"month":  Month,
		"day":    Day,
		"hour":   Hour,
		"minute": Minute,
		"second": Second,
	}[string(d)]
	if !ok {
		return fmt.Errorf("%w: unrecognized field %q", ErrInvalidType, d)
	}
	*f = ff
	return nil
}

func Fields() []Field {
	return []Field{Year, Month, Day, Hour, Minute, Second}
}

func (f Field) Valid() bool {
	return between(int(f), int(Year), int(Second))
}

// IsCalendar reports whether f belongs to the year-month group.
func (f Field) IsCalendar() bool {
	return f == Year || f == Month
}

// IsClock reports whether f belongs to the day-second group.
func (f Field) IsClock() bool {
	return between(int(f), int(Day), int(Second))
}

// Mode distinguishes absolute datetimes (points in calendar time) from
// relative ones (signed durations).
type Mode int

const (
	Absolute Mode = iota + 1
	Relative
)

func (m Mode) String() string {
	switch m {
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	default:
		return "<unknown mode>"
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Absolute, Relative:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("%w: mode %d", ErrInvalidType, int(m))
	}
}

func (m *Mode) UnmarshalText(d []byte) error {
	switch string(d) {
	case "absolute":
		*m = Absolute
	case "relative":
		*m = Relative
	default:
		return fmt.Errorf("%w: unrecognized mode %q", ErrInvalidType, d)
	}
	return nil
}
