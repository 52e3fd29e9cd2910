package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/gdot/internal/cli"
	"github.com/arthur-debert/gdot/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd(cli.DefaultDeps())

	header := &doc.GenManHeader{
		Title:   "SHRINKY",
		Section: "1",
		Source:  "shrinky " + version.Version,
		Manual:  "shrinky manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
