// Package datetime implements calendar values over a configurable
// precision range, from year down to fractional seconds.
//
// A value is either absolute (a point in calendar time) or relative (a
// signed duration), and carries only the contiguous run of fields its
// [Type] names. Construction is validated, arithmetic is carry-correct
// across month lengths and leap years, and the one canonical text
// encoding round-trips through [Format] and [Scan].
//
// # Usage
//
//	t, err := datetime.NewType(datetime.Absolute, datetime.Year, datetime.Second, 0)
//	dt, err := datetime.New(t)
//	err = dt.SetYear(2025)
//	err = dt.SetMonth(8)
//	err = dt.SetDay(24)
//	// ...
//	s, err := datetime.Format(dt) // "24 Aug 2025 00:00:00"
//
//	// arithmetic
//	err = datetime.Increment(dt, oneDay)
//	delta, err := datetime.Difference(a, b)
//
// # Related Packages
//
//   - github.com/rasterworks/go-datetime/encode - option-driven rendering
//     with optional colors
//   - github.com/rasterworks/go-datetime/debug - env-gated tracing
package datetime
