package main

import (
	"fmt"
	"os"

	"github.com/BrandonDHaskell/fingerlock/internal/commands"
)

// version is reported by /health.  Override at build time with
// -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	if err := commands.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
