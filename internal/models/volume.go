package models

import "time"

// VolumeInfo represents an unattached EBS volume
type VolumeInfo struct {
	VolumeID         string    `json:"volumeId"`
	Size             int       `json:"sizeGB"`
	VolumeType       string    `json:"volumeType"`
	State            string    `json:"state"`
	Region           string    `json:"region"`
	AvailabilityZone string    `json:"availabilityZone,omitempty"`
	CreationTime     time.Time `json:"creationTime"`
	ElapsedDays      int       `json:"elapsedDays"`
}

// TotalVolumeSize returns the combined size in GB of the given volumes
func TotalVolumeSize(volumes []VolumeInfo) int {
	total := 0
	for _, v := range volumes {
		total += v.Size
	}
	return total
}
