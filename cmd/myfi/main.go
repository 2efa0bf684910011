package main

import (
	"os"

	"github.com/myfi-dev/myfi/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
