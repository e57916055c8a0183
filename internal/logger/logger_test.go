package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestSetup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overtime.log")

	logger, err := Setup("debug", path)
	require.NoError(t, err)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.InfoLevel)
	})

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	logger.WithField("date", "2025-09-01").Info("record saved")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "record saved")
	assert.Contains(t, string(data), "date=2025-09-01")
}

func TestSetup_InvalidLevel(t *testing.T) {
	_, err := Setup("loud", "")
	assert.Error(t, err)
}

func TestNewGormLogger(t *testing.T) {
	logger := logrus.New()

	logger.SetLevel(logrus.DebugLevel)
	assert.NotNil(t, NewGormLogger(logger))

	logger.SetLevel(logrus.ErrorLevel)
	gl := NewGormLogger(logger)
	assert.NotNil(t, gl.LogMode(gormlogger.Silent))
}
