package main

import (
	"os"

	"github.com/VetSecItPro/styrby-app-sub006/cmd/styrby/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
