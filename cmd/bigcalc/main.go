// Command bigcalc evaluates arbitrary-precision integer operations from the command line.
//
//	bigcalc shr -- -3640 4                       # -228
//	bigcalc --calculator portable shl 3 128
//	bigcalc --rounding half-even div 5 2         # 2
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
