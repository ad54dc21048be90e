package main

import (
	"os"

	"github.com/rpggio/devtracker/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
