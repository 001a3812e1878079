package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger shared by every listener. Production
// emits JSON lines; other environments keep the text formatter for
// readability. Unknown levels fall back to info instead of failing startup.
func NewLogger(level, environment string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	if environment == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}
