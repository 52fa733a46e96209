package main

import (
	"os"

	"github.com/openride-labs/ridesync/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
