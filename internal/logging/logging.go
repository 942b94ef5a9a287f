package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging builds the JSON logger used across the client. An unknown
// level falls back to info.
func SetupLogging(level string) *logrus.Logger {
	return setupLogging(level, os.Stderr)
}

func setupLogging(level string, out io.Writer) *logrus.Logger {
	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		parsedLevel = logrus.InfoLevel
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   out,
		Hooks: make(logrus.LevelHooks),
		Level: parsedLevel,
	}

	return &logger
}
