package main

import (
	"fmt"
	"os"

	"github.com/vmux-dev/vmux/internal/cli"
	"github.com/vmux-dev/vmux/internal/msg"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, msg.FormatError(err))
		os.Exit(1)
	}
}

func run() error {
	return cli.Execute(version)
}
