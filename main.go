package main

import (
	"github.com/dnakit/seqtax/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
