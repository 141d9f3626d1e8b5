package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggingToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	cleanup, err := SetupLogging(path)
	require.NoError(t, err)
	assert.True(t, IsDebugMode())

	Debugf("zoom %d", 3)
	Warnf("careful")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DEBUG zoom 3")
	assert.Contains(t, string(data), "WARN careful")

	cleanup, err = SetupLogging("")
	require.NoError(t, err)
	defer cleanup()
	assert.False(t, IsDebugMode())
}

func TestSetupLoggingBadPath(t *testing.T) {
	_, err := SetupLogging(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	assert.Error(t, err)
}
