package mcp

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger creates the process logger. Stdout carries the protocol, so logs
// go to stderr unless LOG_FILE names a file. The returned cleanup closes it.
func NewLogger() (*logrus.Entry, func(), error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", DefaultLogLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	cleanup := func() {}
	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		logger.SetOutput(f)
		cleanup = func() { _ = f.Close() }
	}

	return logger.WithField("component", ServerName), cleanup, nil
}
