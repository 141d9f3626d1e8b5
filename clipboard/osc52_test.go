package clipboard

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOSC52(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeOSC52(&buf, "01.01.2024 | Level: 12"))
	assert.Equal(t, "\x1b]52;c;MDEuMDEuMjAyNCB8IExldmVsOiAxMg==\x07", buf.String())
}

func TestOSC52Supported(t *testing.T) {
	assert.True(t, osc52Supported("xterm-256color", true))
	assert.False(t, osc52Supported("xterm-256color", false))
	assert.False(t, osc52Supported("dumb", true))
	assert.False(t, osc52Supported("", true))
}
