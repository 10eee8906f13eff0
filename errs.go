package datetime

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidType          = errors.New("invalid datetime type")
	ErrOutOfRange           = errors.New("value out of range")
	ErrPrecisionNotIncluded = errors.New("field outside precision range")
	ErrIncompatibleRanges   = errors.New("incompatible precision ranges")
	ErrInvalidOperation     = errors.New("invalid operation")
	ErrInvalidTimezone      = errors.New("invalid timezone")
	ErrIncomparableTypes    = errors.New("incomparable types")
	ErrFormat               = errors.New("format error")

	ErrScan           = errors.New("scan error")
	ErrScanMalformed  = fmt.Errorf("%w: malformed", ErrScan)
	ErrScanOutOfRange = fmt.Errorf("%w: out of range", ErrScan)
	ErrScanAmbiguous  = fmt.Errorf("%w: ambiguous precision", ErrScan)
)
