package main

import (
	"os"

	"github.com/example/storefront/cmd/storefront/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
