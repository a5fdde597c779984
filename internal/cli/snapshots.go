package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cloudjanitor/cloudjanitor/internal/config"
	"github.com/cloudjanitor/cloudjanitor/internal/logging"
	"github.com/cloudjanitor/cloudjanitor/pkg/aws"
	"github.com/cloudjanitor/cloudjanitor/pkg/formatter"
	"github.com/cloudjanitor/cloudjanitor/pkg/utils"
)

type findOldSnapshotsOptions struct {
	global *globalOptions
	region string
	days   int
}

func newFindOldSnapshotsCmd(global *globalOptions, defaults config.Defaults) *cobra.Command {
	o := &findOldSnapshotsOptions{global: global}

	cmd := &cobra.Command{
		Use:   "find-old-snapshots",
		Short: "Find EBS snapshots older than an age threshold",
		Long:  "Lists EBS snapshots owned by the caller whose creation time is older than the given number of days.",
		RunE:  o.run,
	}

	cmd.Flags().StringVarP(&o.region, "region", "r", defaults.Region, "AWS region to scan")
	cmd.Flags().IntVarP(&o.days, "days", "d", defaults.SnapshotAgeDays,
		"Age in days beyond which a snapshot is considered old")

	return cmd
}

func (o *findOldSnapshotsOptions) run(cmd *cobra.Command, _ []string) error {
	if !utils.IsValidRegion(o.region) {
		return fmt.Errorf("invalid region %q", o.region)
	}
	if o.days < 0 {
		return fmt.Errorf("days must not be negative, got %d", o.days)
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	logging.L().Debug().Str("region", o.region).Int("days", o.days).Msg("starting snapshot scan")

	client, err := aws.NewEBSClient(ctx, o.region)
	if err != nil {
		return err
	}

	if o.global.jsonOutput() {
		snapshots, err := client.GetOldSnapshots(ctx, o.days)
		if err != nil {
			return err
		}
		return formatter.PrintJSON(out, snapshots)
	}

	fmt.Fprintf(out, "Searching for snapshots older than %d days in %s (%s) ...\n",
		o.days, o.region, utils.GetRegionDescriptiveName(o.region))

	scanStartTime := time.Now()
	s := startScanSpinner("EBS snapshots")

	snapshots, err := client.GetOldSnapshots(ctx, o.days)
	if err != nil {
		s.Stop()
		return err
	}

	s.FinalMSG = fmt.Sprintf("✓ [%d snapshots found] EBS snapshots analyzed - Completed in %.2f seconds\n",
		len(snapshots), time.Since(scanStartTime).Seconds())
	s.Stop()

	formatter.PrintSnapshotsTable(out, snapshots, o.days)
	formatter.PrintSnapshotsSummary(out, snapshots)

	return nil
}
