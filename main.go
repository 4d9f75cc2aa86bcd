package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/wishlist/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
)

func main() {
	if err := cli.NewRootCommand(Version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
