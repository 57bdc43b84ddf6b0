// Command u01gen writes pseudo-random numbers in [0,1) to a text file, one
// per line, and can check such a file for uniformity.
//
//	u01gen [outputPath] [count] [seed]
//	u01gen check <file>
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, nil))
}
