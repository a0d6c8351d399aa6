package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Plain  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("KER_DEBUG_PARSE")
	d.Encode = boolEnv("KER_DEBUG_ENCODE")
	d.Plain = boolEnv("KER_DEBUG_PLAIN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Plain() bool {
	return d.Plain
}
