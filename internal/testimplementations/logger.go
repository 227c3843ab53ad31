package testimplementations

import (
	"github.com/sirupsen/logrus"
)

// Logger is a minimal structured logger for test output, e.g. to report
// progress of the larger batch-construction tests.
type Logger struct {
	logger *logrus.Logger
}

func NewLogger() *Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	return &Logger{
		logger,
	}
}

func (l *Logger) Debug(msg string, fields map[string]any) {
	l.logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *Logger) Info(msg string, fields map[string]any) {
	l.logger.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *Logger) Warn(msg string, fields map[string]any) {
	l.logger.WithFields(logrus.Fields(fields)).Warn(msg)
}
