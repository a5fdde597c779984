package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(args ...string) (string, error) {
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootRegistersAuditSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"find-unused-ebs", "find-old-snapshots", "find-insecure-workloads", "version"} {
		assert.True(t, names[want], "subcommand %s should be registered", want)
	}
}

func TestRejectsUnsupportedOutputFormat(t *testing.T) {
	_, err := executeCommand("version", "--output", "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand("version")

	require.NoError(t, err)
	assert.Contains(t, out, "cloudjanitor")
}

func TestInvalidRegionRejectedBeforeAnyAPICall(t *testing.T) {
	_, err := executeCommand("find-unused-ebs", "--region", "moon-base-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid region")

	_, err = executeCommand("find-old-snapshots", "--region", "moon-base-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid region")
}

func TestNegativeDaysRejected(t *testing.T) {
	_, err := executeCommand("find-old-snapshots", "--days=-5")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}
