package main

import (
	"os"

	"github.com/cloudjanitor/cloudjanitor/internal/cli"
	"github.com/cloudjanitor/cloudjanitor/internal/errdefs"
	"github.com/cloudjanitor/cloudjanitor/pkg/ui"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		ui.PrintError(os.Stderr, err)
		os.Exit(errdefs.ExitCode(err))
	}
}
