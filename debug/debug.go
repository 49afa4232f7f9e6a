// Package debug provides env-gated debug logging for the solver bridge.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Script bool
	Solver bool
	Parse  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Script = boolEnv("NLAMBDA_DEBUG_SCRIPT")
	d.Solver = boolEnv("NLAMBDA_DEBUG_SOLVER")
	d.Parse = boolEnv("NLAMBDA_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Script() bool {
	return d.Script
}
func Solver() bool {
	return d.Solver
}
func Parse() bool {
	return d.Parse
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
