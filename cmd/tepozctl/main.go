// tepozctl browses the built-in Tepoztlán directory from a terminal.
package main

import (
	"os"

	"tepoz_directory/cmd/tepozctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
