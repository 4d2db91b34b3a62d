package main

import (
	"os"

	"github.com/lyra-docs/lyra/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
