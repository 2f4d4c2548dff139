package main

import (
	"os"

	"coplot/cmd/coplot/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
