package main

import (
	"os"

	"github.com/labzen/tool/cmd/labzen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
