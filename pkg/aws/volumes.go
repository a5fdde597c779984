package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/cloudjanitor/cloudjanitor/internal/errdefs"
	"github.com/cloudjanitor/cloudjanitor/internal/models"
	"github.com/cloudjanitor/cloudjanitor/pkg/utils"
)

// GetUnattachedVolumes returns all EBS volumes in the 'available' state,
// i.e. not attached to any instance. Single fetch, no retries.
func (c *EBSClient) GetUnattachedVolumes(ctx context.Context) ([]models.VolumeInfo, error) {
	// Filter only volumes in 'available' state (unattached volumes)
	filter := types.Filter{
		Name:   aws.String("status"),
		Values: []string{"available"},
	}

	input := &ec2.DescribeVolumesInput{
		Filters: []types.Filter{filter},
	}

	result, err := c.api.DescribeVolumes(ctx, input)
	if err != nil {
		return nil, errdefs.ClassifyAWS("querying EBS volumes", err)
	}

	return buildVolumeInfos(result.Volumes, c.region), nil
}

// buildVolumeInfos converts SDK volumes to VolumeInfo, keeping only
// volumes whose state is 'available'.
func buildVolumeInfos(volumes []types.Volume, region string) []models.VolumeInfo {
	infos := []models.VolumeInfo{}

	for _, volume := range volumes {
		if volume.State != types.VolumeStateAvailable {
			continue
		}

		info := models.VolumeInfo{
			VolumeID:         aws.ToString(volume.VolumeId),
			Size:             int(aws.ToInt32(volume.Size)),
			VolumeType:       string(volume.VolumeType),
			State:            string(volume.State),
			Region:           region,
			AvailabilityZone: aws.ToString(volume.AvailabilityZone),
		}

		if volume.CreateTime != nil {
			info.CreationTime = *volume.CreateTime
			info.ElapsedDays = utils.CalculateElapsedDays(*volume.CreateTime)
		}

		infos = append(infos, info)
	}

	return infos
}
