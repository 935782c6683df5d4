// Command docanalyzer runs the AI document analyzer demo.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version string

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
