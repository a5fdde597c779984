package formatter

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/cloudjanitor/cloudjanitor/internal/models"
	"github.com/cloudjanitor/cloudjanitor/pkg/ui"
)

// PrintVolumesTable prints a formatted table of unattached EBS volumes
func PrintVolumesTable(w io.Writer, volumes []models.VolumeInfo) {
	if len(volumes) == 0 {
		fmt.Fprintln(w, ui.Success("No unattached EBS volumes found."))
		return
	}

	// Largest volumes first
	sort.Slice(volumes, func(i, j int) bool {
		return volumes[i].Size > volumes[j].Size
	})

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "VOLUME ID\tTYPE\tSIZE\tCREATED ON\tAGE")

	for _, volume := range volumes {
		fmt.Fprintf(tw, "%s\t%s\t%d GB\t%s\t%s\n",
			volume.VolumeID,
			volume.VolumeType,
			volume.Size,
			formatTimestamp(volume.CreationTime),
			formatAge(volume.CreationTime),
		)
	}

	fmt.Fprintf(tw, "Total:\t\t%d GB\t\t\n", models.TotalVolumeSize(volumes))

	tw.Flush()
}

// PrintVolumesSummary displays volume counts and sizes grouped by type
func PrintVolumesSummary(w io.Writer, volumes []models.VolumeInfo) {
	if len(volumes) == 0 {
		return
	}

	volumeTypes := make(map[string]struct {
		count int
		size  int
	})

	for _, volume := range volumes {
		typeInfo := volumeTypes[volume.VolumeType]
		typeInfo.count++
		typeInfo.size += volume.Size
		volumeTypes[volume.VolumeType] = typeInfo
	}

	fmt.Fprintln(w, "\n## Unattached EBS Volumes Summary")

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "VOLUME TYPE\tCOUNT\tTOTAL SIZE")

	types := make([]string, 0, len(volumeTypes))
	for volumeType := range volumeTypes {
		types = append(types, volumeType)
	}
	sort.Strings(types)

	for _, volumeType := range types {
		info := volumeTypes[volumeType]
		fmt.Fprintf(tw, "%s\t%d\t%d GB\n", volumeType, info.count, info.size)
	}

	tw.Flush()
}
