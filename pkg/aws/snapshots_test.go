package aws

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cloudjanitor/cloudjanitor/internal/errdefs"
	"github.com/cloudjanitor/cloudjanitor/internal/models"
)

func testSnapshot(id string, size int32, started time.Time, description string) types.Snapshot {
	snap := types.Snapshot{
		SnapshotId: aws.String(id),
		VolumeId:   aws.String("vol-src"),
		VolumeSize: aws.Int32(size),
		StartTime:  aws.Time(started),
	}
	if description != "" {
		snap.Description = aws.String(description)
	}
	return snap
}

func TestGetOldSnapshots(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("returns only snapshots older than the threshold", func(t *testing.T) {
		api := new(mockEC2API)
		api.On("DescribeSnapshots", ctx, mock.MatchedBy(func(input *ec2.DescribeSnapshotsInput) bool {
			return len(input.OwnerIds) == 1 && input.OwnerIds[0] == "self"
		})).Return(&ec2.DescribeSnapshotsOutput{
			Snapshots: []types.Snapshot{
				testSnapshot("snap-old", 30, now.AddDate(0, 0, -100), "nightly backup"),
				testSnapshot("snap-new", 10, now.AddDate(0, 0, -10), ""),
			},
		}, nil)

		client := NewEBSClientFromAPI(api, "us-east-1")
		snapshots, err := client.GetOldSnapshots(ctx, 90)

		assert.NoError(t, err)
		assert.Len(t, snapshots, 1)
		assert.Equal(t, "snap-old", snapshots[0].SnapshotID)
		assert.Equal(t, 30, snapshots[0].VolumeSize)
		assert.Equal(t, "nightly backup", snapshots[0].Description)
		assert.Equal(t, 30, models.TotalSnapshotSize(snapshots))

		api.AssertExpectations(t)
	})

	t.Run("provider API error maps to provider client kind", func(t *testing.T) {
		api := new(mockEC2API)
		api.On("DescribeSnapshots", ctx, mock.Anything).Return(nil, &smithy.GenericAPIError{
			Code:    "AuthFailure",
			Message: "AWS was not able to validate the provided access credentials.",
		})

		client := NewEBSClientFromAPI(api, "us-east-1")
		_, err := client.GetOldSnapshots(ctx, 90)

		assert.Equal(t, errdefs.KindProviderClient, errdefs.KindOf(err))
	})
}

func TestBuildSnapshotInfos(t *testing.T) {
	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, -90)

	snaps := []types.Snapshot{
		testSnapshot("snap-1", 8, now.AddDate(0, 0, -200), "old one"),
		testSnapshot("snap-2", 16, now.AddDate(0, 0, -91), ""),
		testSnapshot("snap-3", 32, now.AddDate(0, 0, -89), "too recent"),
		testSnapshot("snap-4", 64, cutoff, "exactly at cutoff"),
	}

	infos := buildSnapshotInfos(snaps, cutoff, "us-east-1")

	assert.Len(t, infos, 2)
	assert.Equal(t, "snap-1", infos[0].SnapshotID)
	assert.Equal(t, "snap-2", infos[1].SnapshotID)
	assert.Equal(t, 24, models.TotalSnapshotSize(infos))
}

// Raising the threshold by a day can only shrink the result set.
func TestBuildSnapshotInfosMonotonicNarrowing(t *testing.T) {
	now := time.Now().UTC()

	var snaps []types.Snapshot
	for days := 1; days <= 365; days += 13 {
		snaps = append(snaps, testSnapshot("snap", 1, now.AddDate(0, 0, -days), ""))
	}

	previous := len(snaps) + 1
	for threshold := 0; threshold <= 400; threshold += 25 {
		cutoff := now.AddDate(0, 0, -threshold)
		matched := len(buildSnapshotInfos(snaps, cutoff, "us-east-1"))
		assert.LessOrEqual(t, matched, previous, "threshold %d grew the result set", threshold)
		previous = matched
	}
}
