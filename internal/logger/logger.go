package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
	gormlogger "gorm.io/gorm/logger"
)

// Setup configures the standard logrus logger and returns it. When file is
// set, output also goes to a rotating log file.
func Setup(level, file string) (*logrus.Logger, error) {
	logger := logrus.StandardLogger()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(lvl)

	if file != "" {
		logWriter := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		logger.SetOutput(io.MultiWriter(os.Stderr, logWriter))
	} else {
		logger.SetOutput(os.Stderr)
	}

	return logger, nil
}

// NewGormLogger routes gorm's SQL logging through logger. SQL statements are
// only traced at debug level.
func NewGormLogger(logger *logrus.Logger) gormlogger.Interface {
	level := gormlogger.Warn
	switch {
	case logger.IsLevelEnabled(logrus.DebugLevel):
		level = gormlogger.Info
	case !logger.IsLevelEnabled(logrus.WarnLevel):
		level = gormlogger.Error
	}

	return gormlogger.New(logger, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
