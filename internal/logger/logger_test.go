package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Anthya1104/coercion-quiz/internal/config"
	"github.com/Anthya1104/coercion-quiz/internal/logger"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	require.NoError(t, logger.InitLogger(config.LogLevelDebug))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	require.NoError(t, logger.InitLogger(config.LogLevelWarning))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	assert.Error(t, logger.InitLogger("chatty"))
}

func TestRedirectToFile(t *testing.T) {
	require.NoError(t, logger.InitLogger(config.LogLevelInfo))
	path := filepath.Join(t.TempDir(), "log", "out.txt")

	closer, err := logger.RedirectToFile(path)
	require.NoError(t, err)
	logrus.Infof("session %s started", "abc")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session abc started")
	assert.Equal(t, os.Stderr, logrus.StandardLogger().Out)
}
