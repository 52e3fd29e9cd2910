package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/gdot/internal/cli"
	"github.com/arthur-debert/gdot/pkg/errors"
	"github.com/arthur-debert/gdot/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd(cli.DefaultDeps())
	if err := cli.Execute(rootCmd, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, style.Error(errors.Message(err)))
		os.Exit(1)
	}
}
