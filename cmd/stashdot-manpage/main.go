package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/stashdot/internal/cli"
	"github.com/arthur-debert/stashdot/internal/version"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "STASHDOT",
		Section: "1",
		Source:  "stashdot " + version.Version,
		Manual:  "stashdot manual",
	}

	if err := doc.GenMan(rootCmd, header, stdout); err != nil {
		fmt.Fprintf(stderr, "Error generating man page: %v\n", err)
		return 1
	}
	return 0
}
