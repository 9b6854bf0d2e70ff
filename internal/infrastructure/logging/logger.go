package logging

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FieldRunID correlates every log line of one invocation.
const FieldRunID = "run_id"

// NewLogger creates the process logger writing text lines to w.
func NewLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	return logger
}

// NewRunEntry returns an entry carrying a fresh run id.
func NewRunEntry(logger *logrus.Logger) *logrus.Entry {
	return logger.WithField(FieldRunID, uuid.NewString())
}
