package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudjanitor/cloudjanitor/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			info := version.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "cloudjanitor %s (built: %s, commit: %s, %s)\n",
				info.Version, info.BuildDate, info.GitCommit, info.GoVersion)
		},
	}
}
