//go:build linux

package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemdUnitContent(t *testing.T) {
	unit := systemdUnitContent("/usr/local/bin/sweepmap", "")
	assert.Contains(t, unit, `ExecStart="/usr/local/bin/sweepmap" run`)
	assert.Contains(t, unit, "WorkingDirectory=/usr/local/bin\n")

	unit = systemdUnitContent("/opt/sweepmap/sweepmap", "/etc/sweepmap/config.yaml")
	assert.Contains(t, unit, `ExecStart="/opt/sweepmap/sweepmap" --config "/etc/sweepmap/config.yaml" run`)
	assert.True(t, strings.HasSuffix(unit, "WantedBy=multi-user.target\n"))
}
