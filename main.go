package main

import (
	"os"

	"dvm/src/cli"
)

func main() {
	os.Exit(cli.Execute())
}
