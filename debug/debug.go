package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Incr   bool
	Diff   bool
	Tz     bool
	Scan   bool
	Change bool
}

var d *debug

func init() {
	d = &debug{}
	d.Incr = boolEnv("DT_DEBUG_INCR")
	d.Diff = boolEnv("DT_DEBUG_DIFF")
	d.Tz = boolEnv("DT_DEBUG_TZ")
	d.Scan = boolEnv("DT_DEBUG_SCAN")
	d.Change = boolEnv("DT_DEBUG_CHANGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Incr() bool {
	return d.Incr
}
func Diff() bool {
	return d.Diff
}
func Tz() bool {
	return d.Tz
}
func Scan() bool {
	return d.Scan
}
func Change() bool {
	return d.Change
}
