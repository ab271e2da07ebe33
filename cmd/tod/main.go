package main

import (
	"os"

	"github.com/msto63/tod/cmd/tod/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
