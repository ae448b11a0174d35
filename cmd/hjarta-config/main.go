// Hjarta-config reads, edits and serves YAML configuration roots.
//
// Usage:
//
//	hjarta-config [command] [flags]
//
// Every command works on a root directory (--root) and can seed missing files
// from a directory of bundled defaults (--defaults). Configuration errors are
// printed to stderr as colored diagnostic blocks.
// See 'hjarta-config --help' for available commands.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
