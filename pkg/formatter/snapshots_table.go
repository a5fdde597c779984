package formatter

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/cloudjanitor/cloudjanitor/internal/models"
	"github.com/cloudjanitor/cloudjanitor/pkg/ui"
)

// maxDescriptionWidth caps the DESCRIPTION column; longer descriptions are
// truncated to 37 characters plus an ellipsis marker.
const maxDescriptionWidth = 40

// PrintSnapshotsTable prints a formatted table of aged EBS snapshots
func PrintSnapshotsTable(w io.Writer, snapshots []models.SnapshotInfo, thresholdDays int) {
	if len(snapshots) == 0 {
		fmt.Fprintln(w, ui.Success("No snapshots found older than %d days.", thresholdDays))
		return
	}

	// Oldest snapshots first
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].StartTime.Before(snapshots[j].StartTime)
	})

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "SNAPSHOT ID\tSIZE\tCREATED ON\tAGE\tDESCRIPTION")

	for _, snapshot := range snapshots {
		fmt.Fprintf(tw, "%s\t%d GB\t%s\t%s\t%s\n",
			snapshot.SnapshotID,
			snapshot.VolumeSize,
			formatTimestamp(snapshot.StartTime),
			formatAge(snapshot.StartTime),
			formatDescription(snapshot.Description),
		)
	}

	fmt.Fprintf(tw, "Total:\t%d GB\t\t\t\n", models.TotalSnapshotSize(snapshots))

	tw.Flush()
}

// formatDescription substitutes a placeholder for missing descriptions and
// truncates long ones for display. Rune-based so multi-byte text truncates
// cleanly.
func formatDescription(description string) string {
	if description == "" {
		return "N/A"
	}

	runes := []rune(description)
	if len(runes) <= maxDescriptionWidth {
		return description
	}
	return string(runes[:maxDescriptionWidth-3]) + "..."
}

// PrintSnapshotsSummary displays snapshot counts and sizes grouped by age
func PrintSnapshotsSummary(w io.Writer, snapshots []models.SnapshotInfo) {
	if len(snapshots) == 0 {
		return
	}

	buckets := []struct {
		label   string
		minDays int
	}{
		{"1 year+", 365},
		{"180-364 days", 180},
		{"90-179 days", 90},
		{"under 90 days", 0},
	}

	counts := make(map[string]struct {
		count int
		size  int
	})

	for _, snapshot := range snapshots {
		for _, bucket := range buckets {
			if snapshot.ElapsedDays >= bucket.minDays {
				info := counts[bucket.label]
				info.count++
				info.size += snapshot.VolumeSize
				counts[bucket.label] = info
				break
			}
		}
	}

	fmt.Fprintln(w, "\n## Aged EBS Snapshots Summary")

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "AGE\tCOUNT\tTOTAL SIZE")

	for _, bucket := range buckets {
		info, ok := counts[bucket.label]
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d GB\n", bucket.label, info.count, info.size)
	}

	tw.Flush()
}
