package encode

import (
	"bytes"
	"strings"

	datetime "github.com/rasterworks/go-datetime"
)

func MustString(dt *datetime.DateTime, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(dt, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
