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

type findUnusedEBSOptions struct {
	global *globalOptions
	region string
}

func newFindUnusedEBSCmd(global *globalOptions, defaults config.Defaults) *cobra.Command {
	o := &findUnusedEBSOptions{global: global}

	cmd := &cobra.Command{
		Use:   "find-unused-ebs",
		Short: "Find unattached EBS volumes",
		Long:  "Lists EBS volumes in the 'available' state, i.e. not attached to any instance.",
		RunE:  o.run,
	}

	cmd.Flags().StringVarP(&o.region, "region", "r", defaults.Region, "AWS region to scan")

	return cmd
}

func (o *findUnusedEBSOptions) run(cmd *cobra.Command, _ []string) error {
	if !utils.IsValidRegion(o.region) {
		return fmt.Errorf("invalid region %q", o.region)
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	logging.L().Debug().Str("region", o.region).Msg("starting EBS volume scan")

	client, err := aws.NewEBSClient(ctx, o.region)
	if err != nil {
		return err
	}

	if o.global.jsonOutput() {
		volumes, err := client.GetUnattachedVolumes(ctx)
		if err != nil {
			return err
		}
		return formatter.PrintJSON(out, volumes)
	}

	fmt.Fprintf(out, "Searching for unattached EBS volumes in %s (%s) ...\n",
		o.region, utils.GetRegionDescriptiveName(o.region))

	scanStartTime := time.Now()
	s := startScanSpinner("EBS volumes")

	volumes, err := client.GetUnattachedVolumes(ctx)
	if err != nil {
		s.Stop()
		return err
	}

	s.FinalMSG = fmt.Sprintf("✓ [%d volumes found] EBS volumes analyzed - Completed in %.2f seconds\n",
		len(volumes), time.Since(scanStartTime).Seconds())
	s.Stop()

	formatter.PrintVolumesTable(out, volumes)
	formatter.PrintVolumesSummary(out, volumes)

	return nil
}
