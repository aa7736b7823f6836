package main

import (
	"os"

	"github.com/auditlens-dev/auditlens/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
