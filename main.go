package main

import (
	"os"

	"github.com/taskgene/arena/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
