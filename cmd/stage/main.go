package main

import (
	"fmt"
	"os"

	"github.com/go-drift/stage/cmd/stage/cmd"
)

var version = "0.1.0-dev"

func main() {
	cmd.SetVersion(version)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
