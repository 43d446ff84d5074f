// Package logging configures the application logrus logger.
package logging

import (
	"io"
	"os"

	"github.com/franciscosanchezn/pizza-shop-api/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a JSON logger for the given configuration. When a log file is
// configured output goes to a rotating file, mirrored to stderr in development.
// The returned closer releases the log file and must be called on shutdown.
func New(cfg *config.Config) (*logrus.Logger, io.Closer) {
	output, closer := outputFor(cfg)

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(levelFor(cfg))
	logger.SetOutput(output)
	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func levelFor(cfg *config.Config) logrus.Level {
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		return level
	}
	switch cfg.Environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func outputFor(cfg *config.Config) (io.Writer, io.Closer) {
	if cfg.LogFile == "" {
		return os.Stderr, nopCloser{}
	}

	fileLogger := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB, // megabytes
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAgeDays, // days
		Compress:   cfg.LogCompression,
	}
	if cfg.Environment == "development" {
		return io.MultiWriter(fileLogger, os.Stderr), fileLogger
	}
	return fileLogger, fileLogger
}
