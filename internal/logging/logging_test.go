package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	out := logrus.StandardLogger().Out
	level := logrus.GetLevel()
	formatter := logrus.StandardLogger().Formatter
	t.Cleanup(func() {
		logrus.SetOutput(out)
		logrus.SetLevel(level)
		logrus.SetFormatter(formatter)
	})
}

func TestSetupWritesToFile(t *testing.T) {
	restoreLogger(t)
	path := filepath.Join(t.TempDir(), "nested", "fbrowse.log")

	closer, err := Setup("debug", path)
	require.NoError(t, err)

	logrus.WithField("path", "/music/").Debug("directory scanned")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=debug")
	assert.Contains(t, string(data), `msg="directory scanned"`)
	assert.Contains(t, string(data), "path=/music/")
	assert.NotContains(t, string(data), "\x1b[", "colors are disabled")
}

func TestSetupLevelFilters(t *testing.T) {
	restoreLogger(t)
	path := filepath.Join(t.TempDir(), "fbrowse.log")

	closer, err := Setup("warn", path)
	require.NoError(t, err)
	logrus.Info("hidden")
	logrus.Warn("shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestSetupDefaultsAndErrors(t *testing.T) {
	restoreLogger(t)

	closer, err := Setup("", "")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.NoError(t, closer.Close())

	_, err = Setup("loud", "")
	assert.Error(t, err)
}
