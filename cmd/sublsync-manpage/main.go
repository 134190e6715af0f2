package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/sublsync/cmd/sublsync"
	"github.com/arthur-debert/sublsync/internal/version"
)

func main() {
	rootCmd := sublsync.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SUBLSYNC",
		Section: "1",
		Source:  "sublsync " + version.Version,
		Manual:  "sublsync manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
