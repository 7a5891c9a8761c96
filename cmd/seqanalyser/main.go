// Command seqanalyser analyses a local sequence file.
//
// Usage:
//
//	seqanalyser [command] [options]
//
// Commands:
//
//	analyze     Report length, composition, GC window and search for one sequence
//	summary     Show dataset statistics
//	chart       Write the composition chart of one sequence as SVG
//	export      Write the dataset as FASTA
//	version     Show version information
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
