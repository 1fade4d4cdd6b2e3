package main

import (
	"os"

	"github.com/recmetrics/fairprep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
