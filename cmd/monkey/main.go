package main

import (
	"os"

	"github.com/agenthands/monkey/cmd/monkey/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
