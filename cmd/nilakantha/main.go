package main

import (
	"os"

	"github.com/govalues/fraction/cmd/nilakantha/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		os.Exit(1)
	}
}
