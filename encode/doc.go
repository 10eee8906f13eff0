// Package encode renders datetime values for presentation on top of the
// canonical text encoding.
//
// # Usage
//
//	// Render a value
//	err := encode.Encode(dt, os.Stdout)
//
//	// Render with colors when stdout is a terminal
//	err := encode.Encode(dt, os.Stdout, encode.EncodeColors(encode.AutoColors(os.Stdout)))
//
//	// Normalize to UTC before rendering
//	err := encode.Encode(dt, os.Stdout, encode.EncodeUTC(true))
//
// The output is the canonical encoding; options only affect presentation
// around it, never the grammar.
//
// # Related Packages
//
//   - github.com/rasterworks/go-datetime - the value model and codec
package encode
