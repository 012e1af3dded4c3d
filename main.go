package main

import (
	"os"

	"github.com/flowbridge/flowbridge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
