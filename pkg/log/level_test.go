package log_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruntwork-io/tfdeps/pkg/log"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		str      string
		expected log.Level
	}{
		{str: "trace", expected: log.TraceLevel},
		{str: "debug", expected: log.DebugLevel},
		{str: "info", expected: log.InfoLevel},
		{str: "warn", expected: log.WarnLevel},
		{str: "error", expected: log.ErrorLevel},
		{str: "DEBUG", expected: log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			t.Parallel()

			level, err := log.ParseLevel(tt.str)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestParseLevelInvalid(t *testing.T) {
	t.Parallel()

	_, err := log.ParseLevel("loud")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level")
}

func TestLogrusLevelRoundTrip(t *testing.T) {
	t.Parallel()

	for _, level := range log.AllLevels {
		assert.Equal(t, level, log.FromLogrusLevel(level.ToLogrusLevel()))
	}
}

func TestSetLevel(t *testing.T) {
	t.Parallel()

	logger := log.New()

	require.NoError(t, logger.SetLevel("debug"))
	assert.Equal(t, log.DebugLevel, logger.Level())

	require.Error(t, logger.SetLevel("loud"))
}
