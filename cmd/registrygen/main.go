package main

import (
	"os"

	"github.com/soyeahso/registrygen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
