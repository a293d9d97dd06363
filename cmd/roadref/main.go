// Command roadref connects the candidate paths of a location reference
// described by a scenario file.
//
//	roadref connect --scenario ref.yaml [--config roadref.yaml] [--json] [--trace]
package main

import (
	"fmt"
	"os"
)

// version is overridden at link time: -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "roadref:", err)
		os.Exit(1)
	}
}
