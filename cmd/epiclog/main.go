// main is the entry point for the epiclog CLI.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mbelabs/epiclog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
