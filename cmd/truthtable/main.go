package main

import (
	"os"

	"github.com/woozymasta/truthtable/cmd/truthtable/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
