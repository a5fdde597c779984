package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/cloudjanitor/cloudjanitor/internal/errdefs"
)

// EC2API is the subset of the EC2 client used by the auditors. Tests
// substitute a mock so no live provider is needed.
type EC2API interface {
	DescribeVolumes(ctx context.Context, params *ec2.DescribeVolumesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVolumesOutput, error)
	DescribeSnapshots(ctx context.Context, params *ec2.DescribeSnapshotsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSnapshotsOutput, error)
}

// EBSClient audits EBS volumes and snapshots in a single region
type EBSClient struct {
	api    EC2API
	region string
}

// NewEBSClient creates a region-scoped EBSClient from the default AWS
// credential chain. Credentials are resolved up front so a missing or
// partial credential setup is reported distinctly from API failures.
func NewEBSClient(ctx context.Context, region string) (*EBSClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, errdefs.Unexpected("loading AWS config", err)
	}

	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		return nil, errdefs.CredentialsMissing("resolving AWS credentials", err)
	}

	return &EBSClient{
		api:    ec2.NewFromConfig(cfg),
		region: region,
	}, nil
}

// NewEBSClientFromAPI creates an EBSClient over a pre-built API handle
func NewEBSClientFromAPI(api EC2API, region string) *EBSClient {
	return &EBSClient{api: api, region: region}
}

// Region returns the region this client is scoped to
func (c *EBSClient) Region() string {
	return c.region
}
