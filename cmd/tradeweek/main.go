package main

import (
	"os"

	"github.com/rvaldes/tradeweek/cmd/tradeweek/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
