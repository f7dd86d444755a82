// Command omega-engine starts the Omega Engine under its Python runner
package main

import (
	"os"

	"github.com/arch-ops/omega-launcher/pkg/cli"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	os.Exit(cli.Main(version, os.Args[1:]))
}
