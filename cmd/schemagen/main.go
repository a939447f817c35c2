package main

import (
	"os"

	"github.com/flowdsl/schemagen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
