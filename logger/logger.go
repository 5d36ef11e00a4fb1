package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"socialapi/config"
)

// Init configures the global logrus logger. It returns a closer for the log
// file, which is a no-op when logging to stdout.
func Init(cfg config.LogConfig) (io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	logrus.SetLevel(level)

	if cfg.Format == "text" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	var closer io.Closer = nopCloser{}
	logrus.SetOutput(os.Stdout)
	if cfg.File != "" {
		logFile, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logrus.Warnf("Failed to open log file (%s), using stdout: %v", cfg.File, err)
		} else {
			logrus.SetOutput(logFile)
			closer = logFile
		}
	}

	logrus.WithField("level", level.String()).Info("Logger initialized")
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
