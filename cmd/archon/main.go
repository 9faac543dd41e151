package main

import (
	"os"

	"github.com/dshills/archon/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
