// Command roman converts integers into Roman numerals.
//
//	roman convert 1990 2008       # MCMXC, MMVIII
//	roman table 1 12 --format yaml
//	roman convert 4 --notation additive
package main

import (
	"os"

	"github.com/katalvlaran/roman/cmd/roman/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
