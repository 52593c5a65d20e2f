package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// logger is the shared module logger. Adapters log through the package
// level helpers so callers can swap level and output in one place.
var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLevel adjusts the global logging level
func SetLevel(level logrus.Level) {
	logger.SetLevel(level)
}

// SetOutput redirects log output, used by tests to silence adapter warns
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debugf logs at debug level
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Infof logs at info level
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warnf logs at warn level
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Errorf logs at error level
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
