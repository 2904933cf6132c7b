package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(&buf, "warn"))

	Debug("dates enumerated: %d", 3)
	Info("exported output to %s", "out.csv")
	Warn("invalid day of the week %c", 'X')
	Error("invalid date: %q", "2024-13-01")

	out := buf.String()
	assert.NotContains(t, out, "dates enumerated")
	assert.NotContains(t, out, "exported output")
	assert.Contains(t, out, "WARN\tinvalid day of the week X")
	assert.Contains(t, out, "ERROR\tinvalid date: \"2024-13-01\"")

	buf.Reset()
	require.NoError(t, Init(&buf, "debug"))
	Debug("dates enumerated: %d", 3)
	assert.Contains(t, buf.String(), "DEBUG\tdates enumerated: 3")
}

func TestInitInvalidLevel(t *testing.T) {
	err := Init(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}
