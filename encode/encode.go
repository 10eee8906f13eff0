package encode

import (
	"io"
	"strings"

	datetime "github.com/rasterworks/go-datetime"
)

type EncState struct {
	utc bool

	Color func(Part, string) string
}

// Encode writes the canonical encoding of dt to w, applying any
// presentation options.
func Encode(dt *datetime.DateTime, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	v := dt
	if es.utc && dt.HasTimezone() {
		v = dt.Clone()
		if err := v.ToUTC(); err != nil {
			return err
		}
	}
	s, err := datetime.Format(v)
	if err != nil {
		return err
	}
	if es.Color != nil {
		s = colorize(v, s, es.Color)
	}
	_, err = io.WriteString(w, s)
	return err
}

// colorize paints each token of the canonical encoding by part. The
// grammar is whitespace separated, so tokens classify independently.
func colorize(dt *datetime.DateTime, s string, paint func(Part, string) string) string {
	toks := strings.Split(s, " ")
	for i, tok := range toks {
		toks[i] = paint(classify(dt, tok), tok)
	}
	return strings.Join(toks, " ")
}

func classify(dt *datetime.DateTime, tok string) Part {
	switch {
	case isZone(tok):
		return ZonePart
	case strings.Contains(tok, ":"):
		return TimePart
	case isWord(tok):
		if dt.IsAbsolute() {
			return DatePart // month name
		}
		return UnitPart
	case dt.IsAbsolute():
		return DatePart
	default:
		return NumberPart
	}
}

func isZone(tok string) bool {
	if len(tok) != 5 || (tok[0] != '+' && tok[0] != '-') {
		return false
	}
	for _, r := range tok[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isWord(tok string) bool {
	for _, r := range tok {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return len(tok) > 0
}
