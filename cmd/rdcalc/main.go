// Package main is the entry point for the rdcalc CLI.
package main

import (
	"os"

	"github.com/rpgo/rd-calculator/cmd/rdcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
