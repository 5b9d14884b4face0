package main

import (
	"os"

	"github.com/Ju21000/planing-ia-2/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
