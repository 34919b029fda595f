package main

import (
	"fmt"
	"os"

	"github.com/typst/xmp-writer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "xmpgen: %v\n", err)
		os.Exit(1)
	}
}
