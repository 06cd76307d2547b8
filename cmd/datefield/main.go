package main

import (
	"os"

	"github.com/MikeBiancalana/datefield/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
