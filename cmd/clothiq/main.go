package main

import (
	"os"

	"clothiq/cmd/clothiq/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
