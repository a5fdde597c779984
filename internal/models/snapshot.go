package models

import "time"

// SnapshotInfo represents an EBS snapshot older than the age threshold
type SnapshotInfo struct {
	SnapshotID  string    `json:"snapshotId"`
	VolumeID    string    `json:"volumeId,omitempty"`
	VolumeSize  int       `json:"volumeSizeGB"`
	Description string    `json:"description,omitempty"`
	Region      string    `json:"region"`
	StartTime   time.Time `json:"startTime"`
	ElapsedDays int       `json:"elapsedDays"`
}

// TotalSnapshotSize returns the combined source-volume size in GB
func TotalSnapshotSize(snapshots []SnapshotInfo) int {
	total := 0
	for _, s := range snapshots {
		total += s.VolumeSize
	}
	return total
}
