package datetime

import "fmt"

// MaxFracsec bounds the number of fractional second digits a type may
// carry. Types with To != Second must carry zero.
const MaxFracsec = 6

// Type describes the shape of a datetime value: its mode and the
// contiguous precision range [From, To] it carries, plus the number of
// fractional second digits when To == Second.
//
// A Type with exported fields is only trusted after Check; every
// operation on values re-checks the type it is handed.
type Type struct {
	Mode    Mode
	From    Field
	To      Field
	Fracsec int
}

// NewType builds a checked Type.
func NewType(mode Mode, from, to Field, fracsec int) (Type, error) {
	t := Type{Mode: mode, From: from, To: to, Fracsec: fracsec}
	if err := t.Check(); err != nil {
		return Type{}, err
	}
	return t, nil
}

// Check validates the type invariants:
//   - From and To are fields with From <= To
//   - absolute ranges begin at Year
//   - relative ranges stay within one of the year-month or day-second groups
//   - Fracsec is 0..MaxFracsec and nonzero only when To == Second
func (t Type) Check() error {
	switch t.Mode {
	case Absolute, Relative:
	default:
		return fmt.Errorf("%w: mode %d", ErrInvalidType, int(t.Mode))
	}
	if !t.From.Valid() {
		return fmt.Errorf("%w: from field %d", ErrInvalidType, int(t.From))
	}
	if !t.To.Valid() {
		return fmt.Errorf("%w: to field %d", ErrInvalidType, int(t.To))
	}
	if t.From > t.To {
		return fmt.Errorf("%w: from %s finer than to %s", ErrInvalidType, t.From, t.To)
	}
	if t.Mode == Absolute && t.From != Year {
		return fmt.Errorf("%w: absolute range must begin at year, not %s", ErrInvalidType, t.From)
	}
	if t.Mode == Relative && t.From.IsCalendar() != t.To.IsCalendar() {
		return fmt.Errorf("%w: relative range %s..%s spans the year-month and day-second groups",
			ErrInvalidType, t.From, t.To)
	}
	if !between(t.Fracsec, 0, MaxFracsec) {
		return fmt.Errorf("%w: fracsec %d", ErrInvalidType, t.Fracsec)
	}
	if t.Fracsec != 0 && t.To != Second {
		return fmt.Errorf("%w: fracsec set but range ends at %s", ErrInvalidType, t.To)
	}
	return nil
}

func (t Type) Valid() bool { return t.Check() == nil }

func (t Type) IsAbsolute() bool { return t.Mode == Absolute }
func (t Type) IsRelative() bool { return t.Mode == Relative }

// Includes reports whether f lies within [From, To].
func (t Type) Includes(f Field) bool {
	return between(int(f), int(t.From), int(t.To))
}

func (t Type) String() string {
	if t.Fracsec != 0 {
		return fmt.Sprintf("%s %s..%s.%d", t.Mode, t.From, t.To, t.Fracsec)
	}
	return fmt.Sprintf("%s %s..%s", t.Mode, t.From, t.To)
}
