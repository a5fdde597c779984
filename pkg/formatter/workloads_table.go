package formatter

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/cloudjanitor/cloudjanitor/internal/models"
	"github.com/cloudjanitor/cloudjanitor/pkg/ui"
)

// PrintWorkloadsTable prints a formatted table of pods running as root
func PrintWorkloadsTable(w io.Writer, workloads []models.WorkloadInfo) {
	if len(workloads) == 0 {
		fmt.Fprintln(w, ui.Success("No pods found running as root. Your cluster workloads look secure!"))
		return
	}

	sort.Slice(workloads, func(i, j int) bool {
		if workloads[i].Namespace != workloads[j].Namespace {
			return workloads[i].Namespace < workloads[j].Namespace
		}
		return workloads[i].PodName < workloads[j].PodName
	})

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "NAMESPACE\tPOD\tCONTAINER\tREASON")

	for _, workload := range workloads {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			workload.Namespace,
			workload.PodName,
			workload.ContainerName,
			workload.Reason,
		)
	}

	fmt.Fprintf(tw, "Total:\t%d pod(s)\t\t\n", len(workloads))

	tw.Flush()
}

// PrintWorkloadsSummary displays flagged pod counts grouped by namespace
func PrintWorkloadsSummary(w io.Writer, workloads []models.WorkloadInfo) {
	if len(workloads) == 0 {
		return
	}

	perNamespace := make(map[string]int)
	for _, workload := range workloads {
		perNamespace[workload.Namespace]++
	}

	fmt.Fprintln(w, "\n## Insecure Workloads Summary")

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAMESPACE\tPODS RUNNING AS ROOT")

	namespaces := make([]string, 0, len(perNamespace))
	for namespace := range perNamespace {
		namespaces = append(namespaces, namespace)
	}
	sort.Strings(namespaces)

	for _, namespace := range namespaces {
		fmt.Fprintf(tw, "%s\t%d\n", namespace, perNamespace[namespace])
	}

	tw.Flush()
}
