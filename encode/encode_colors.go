package encode

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Part classifies a token of the canonical encoding for coloring.
type Part int

const (
	DatePart Part = iota
	TimePart
	ZonePart
	NumberPart
	UnitPart
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Part]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Part]func(string, ...any) string{},
	}
	colors.Map[DatePart] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[TimePart] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[ZonePart] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[NumberPart] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[UnitPart] = color.BlueString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(p Part, s string) string {
	return c.Get(p)(s)
}

func (c *Colors) Get(p Part) func(string, ...any) string {
	f := c.Map[p]
	if f == nil {
		return c.Default
	}
	return f
}

// AutoColors returns a color scheme when f is a terminal, nil otherwise.
func AutoColors(f *os.File) *Colors {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return NewColors()
	}
	return nil
}
