// Command nvd manages the native NvDialog library for Go projects:
// fetching prebuilt binaries, inspecting the cache, and scaffolding
// project configuration.
package main

import (
	"fmt"
	"os"

	"github.com/go-nvdialog/nvdialog/cmd/nvd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
