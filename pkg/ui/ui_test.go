package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudjanitor/cloudjanitor/internal/errdefs"
)

func TestPrintError(t *testing.T) {
	t.Run("plain error gets ERROR prefix", func(t *testing.T) {
		var buf bytes.Buffer
		PrintError(&buf, errors.New("something broke"))

		assert.Contains(t, buf.String(), "ERROR:")
		assert.Contains(t, buf.String(), "something broke")
	})

	t.Run("taxonomy error includes remediation hint", func(t *testing.T) {
		var buf bytes.Buffer
		PrintError(&buf, errdefs.ClusterConfigMissing("loading kubeconfig", errors.New("no such file")))

		assert.Contains(t, buf.String(), "ERROR:")
		assert.Contains(t, buf.String(), "kubeconfig")
		assert.Contains(t, buf.String(), "--kubeconfig")
	})
}
