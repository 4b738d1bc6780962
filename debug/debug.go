package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Verify bool
	Splice bool
	Write  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Verify = boolEnv("REPRINT_DEBUG_VERIFY")
	d.Splice = boolEnv("REPRINT_DEBUG_SPLICE")
	d.Write = boolEnv("REPRINT_DEBUG_WRITE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Verify() bool {
	return d.Verify
}
func Splice() bool {
	return d.Splice
}
func Write() bool {
	return d.Write
}
