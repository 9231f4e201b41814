package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	for _, format := range []string{FormatConsole, FormatJSON, ""} {
		logger, err := New("warn", format)
		require.NoError(t, err, format)
		assert.False(t, logger.Core().Enabled(zap.InfoLevel))
		assert.True(t, logger.Core().Enabled(zap.ErrorLevel))
	}
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("loud", FormatConsole)
	require.Error(t, err)

	_, err = New("info", "xml")
	require.Error(t, err)
}
