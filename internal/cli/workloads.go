package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cloudjanitor/cloudjanitor/internal/config"
	"github.com/cloudjanitor/cloudjanitor/internal/logging"
	"github.com/cloudjanitor/cloudjanitor/pkg/formatter"
	"github.com/cloudjanitor/cloudjanitor/pkg/kube"
)

type findInsecureWorkloadsOptions struct {
	global     *globalOptions
	kubeconfig string
}

func newFindInsecureWorkloadsCmd(global *globalOptions, defaults config.Defaults) *cobra.Command {
	o := &findInsecureWorkloadsOptions{global: global}

	cmd := &cobra.Command{
		Use:   "find-insecure-workloads",
		Short: "Find pods running as the root user",
		Long: "Lists pods across all namespaces whose containers either lack a security context " +
			"or explicitly run as user 0.",
		RunE: o.run,
	}

	cmd.Flags().StringVar(&o.kubeconfig, "kubeconfig", defaults.Kubeconfig, "Path to the kubeconfig file")

	return cmd
}

func (o *findInsecureWorkloadsOptions) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	logging.L().Debug().Str("kubeconfig", o.kubeconfig).Msg("starting workload scan")

	client, err := kube.NewClient(o.kubeconfig)
	if err != nil {
		return err
	}

	if o.global.jsonOutput() {
		workloads, err := client.GetRootWorkloads(ctx)
		if err != nil {
			return err
		}
		return formatter.PrintJSON(out, workloads)
	}

	fmt.Fprintln(out, "Scanning cluster for pods running as root ...")

	scanStartTime := time.Now()
	s := startScanSpinner("cluster workloads")

	workloads, err := client.GetRootWorkloads(ctx)
	if err != nil {
		s.Stop()
		return err
	}

	s.FinalMSG = fmt.Sprintf("✓ [%d pods found] Cluster workloads analyzed - Completed in %.2f seconds\n",
		len(workloads), time.Since(scanStartTime).Seconds())
	s.Stop()

	formatter.PrintWorkloadsTable(out, workloads)
	formatter.PrintWorkloadsSummary(out, workloads)

	return nil
}
