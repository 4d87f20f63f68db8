// themegen - theme gallery content generator
//
// themegen turns a directory of theme checkouts into content pages for a
// static site, one page and screenshot per theme.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/themegen/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
