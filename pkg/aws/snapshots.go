package aws

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/cloudjanitor/cloudjanitor/internal/errdefs"
	"github.com/cloudjanitor/cloudjanitor/internal/models"
	"github.com/cloudjanitor/cloudjanitor/pkg/utils"
)

// snapshotOwnerSelf limits the listing to snapshots owned by the caller
const snapshotOwnerSelf = "self"

// GetOldSnapshots returns all snapshots owned by the caller whose start
// time is strictly before now(UTC) minus thresholdDays. Single fetch,
// no retries.
func (c *EBSClient) GetOldSnapshots(ctx context.Context, thresholdDays int) ([]models.SnapshotInfo, error) {
	input := &ec2.DescribeSnapshotsInput{
		OwnerIds: []string{snapshotOwnerSelf},
	}

	result, err := c.api.DescribeSnapshots(ctx, input)
	if err != nil {
		return nil, errdefs.ClassifyAWS("querying EBS snapshots", err)
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -thresholdDays)
	return buildSnapshotInfos(result.Snapshots, cutoff, c.region), nil
}

// buildSnapshotInfos converts SDK snapshots to SnapshotInfo, keeping only
// snapshots created strictly before the cutoff.
func buildSnapshotInfos(snapshots []types.Snapshot, cutoff time.Time, region string) []models.SnapshotInfo {
	infos := []models.SnapshotInfo{}

	for _, snapshot := range snapshots {
		if snapshot.StartTime == nil || !snapshot.StartTime.Before(cutoff) {
			continue
		}

		infos = append(infos, models.SnapshotInfo{
			SnapshotID:  aws.ToString(snapshot.SnapshotId),
			VolumeID:    aws.ToString(snapshot.VolumeId),
			VolumeSize:  int(aws.ToInt32(snapshot.VolumeSize)),
			Description: aws.ToString(snapshot.Description),
			Region:      region,
			StartTime:   *snapshot.StartTime,
			ElapsedDays: utils.CalculateElapsedDays(*snapshot.StartTime),
		})
	}

	return infos
}
