package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Load bool
	Diff bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("ANVIL_DEBUG_LOAD")
	d.Diff = boolEnv("ANVIL_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Diff() bool {
	return d.Diff
}
