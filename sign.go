package datetime

import "fmt"

// IsPositive reports the sign of dt. Absolute values are always
// positive.
func (dt *DateTime) IsPositive() bool {
	return dt.typ.IsAbsolute() || dt.positive
}

func (dt *DateTime) IsNegative() bool {
	return dt.typ.IsRelative() && !dt.positive
}

func (dt *DateTime) signMutable() error {
	if err := dt.typ.Check(); err != nil {
		return err
	}
	if !dt.typ.IsRelative() {
		return fmt.Errorf("%w: sign applies only to relative values", ErrInvalidOperation)
	}
	return nil
}

func (dt *DateTime) SetPositive() error {
	if err := dt.signMutable(); err != nil {
		return err
	}
	dt.positive = true
	return nil
}

func (dt *DateTime) SetNegative() error {
	if err := dt.signMutable(); err != nil {
		return err
	}
	dt.positive = false
	return nil
}

func (dt *DateTime) InvertSign() error {
	if err := dt.signMutable(); err != nil {
		return err
	}
	dt.positive = !dt.positive
	return nil
}
