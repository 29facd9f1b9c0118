// Command csv2lua converts a CSV file into a Lua table script.
//
// Usage:
//
//	csv2lua <input-path> <output-path> <global-name>
package main

import (
	"os"

	"github.com/mesh-intelligence/csv2lua/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
