package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestInitLogger_Levels(t *testing.T) {
	chdir(t, t.TempDir())

	log := InitLogger(false)
	require.NotNil(t, log)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log = InitLogger(true)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestInitLogger_WritesLogFile(t *testing.T) {
	chdir(t, t.TempDir())

	log := InitLogger(false)
	log.Info("hello")

	data, err := os.ReadFile(LogFileName)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
