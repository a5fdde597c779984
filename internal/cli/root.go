// Package cli wires the cloudjanitor command tree. Each audit gets its own
// subcommand; every command is a single fetch-filter-report pass with no
// retries and no state shared between runs.
package cli

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/cloudjanitor/cloudjanitor/internal/config"
	"github.com/cloudjanitor/cloudjanitor/internal/logging"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

type globalOptions struct {
	verbose bool
	output  string
}

func (g *globalOptions) jsonOutput() bool {
	return g.output == outputJSON
}

// NewRootCmd builds the root command with all audit subcommands attached
func NewRootCmd() *cobra.Command {
	global := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "cloudjanitor",
		Short: "Read-only auditor for unused or insecure cloud resources",
		Long: `cloudjanitor audits cloud and cluster resources for waste and insecure
configuration: unattached EBS volumes, aging snapshots, and pods running
with root privilege. It enumerates and reports, never mutates.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(global.verbose)
			if global.output != outputTable && global.output != outputJSON {
				return fmt.Errorf("unsupported output format %q (expected %s or %s)",
					global.output, outputTable, outputJSON)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVar(&global.verbose, "verbose", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&global.output, "output", "o", outputTable,
		fmt.Sprintf("Output format (%s or %s)", outputTable, outputJSON))

	defaults := config.Load()

	cmd.AddCommand(
		newFindUnusedEBSCmd(global, defaults),
		newFindOldSnapshotsCmd(global, defaults),
		newFindInsecureWorkloadsCmd(global, defaults),
		newVersionCmd(),
	)

	return cmd
}

// startScanSpinner creates and starts a spinner for the given resource kind
func startScanSpinner(resource string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[9], 200*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Analyzing %s ...", resource)
	s.Start()
	return s
}
