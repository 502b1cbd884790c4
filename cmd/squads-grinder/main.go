package main

import (
	"os"

	"github.com/Hxs123/squads-grinder/cmd/squads-grinder/commands"
)

// Version information - set during build
var version = "0.1.0"

func main() {
	commands.SetVersion(version)

	// Errors are printed by the ui package before they reach here
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
