// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package main

import (
	"os"

	"github.com/complex-gh/eviltwin_go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		_ = cli.NewPrinter("text", os.Stderr).PrintError(err)
		os.Exit(1)
	}
}
