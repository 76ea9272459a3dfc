package main

import (
	"os"

	"ecieskem/cmd/ecieskem/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
