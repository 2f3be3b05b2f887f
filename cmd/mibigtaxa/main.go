// Package main provides the mibigtaxa CLI application.
// mibigtaxa builds and queries a compact NCBI taxonomy cache scoped to
// the taxa referenced by a MIBiG entry directory.
package main

import (
	"github.com/mibig-secmet/mibigtaxa/cmd"
)

func main() {
	cmd.Execute()
}
