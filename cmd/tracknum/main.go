package main

import (
	"os"

	"tracknum/cmd/tracknum/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
