// Command upcastgen validates the numeric widening relation and generates
// package upcast from it.
//
// Usage:
//
//	upcastgen generate -o upcast_gen.go
//	upcastgen validate --facts facts.cue
//	upcastgen path uint8 float64
//	upcastgen table --format json
package main

import (
	"os"

	"github.com/roach88/upcast/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
