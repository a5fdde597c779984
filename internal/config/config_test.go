package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadBuiltinDefaults(t *testing.T) {
	defaults := Load()

	assert.Equal(t, "us-east-1", defaults.Region)
	assert.Equal(t, 90, defaults.SnapshotAgeDays)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CLOUDJANITOR_REGION", "eu-west-2")
	t.Setenv("CLOUDJANITOR_SNAPSHOT_AGE_DAYS", "30")
	t.Setenv("CLOUDJANITOR_KUBECONFIG", "/tmp/kubeconfig")

	defaults := Load()

	assert.Equal(t, "eu-west-2", defaults.Region)
	assert.Equal(t, 30, defaults.SnapshotAgeDays)
	assert.Equal(t, "/tmp/kubeconfig", defaults.Kubeconfig)
}
