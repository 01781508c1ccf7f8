package contract

import (
	"os"

	"github.com/sirupsen/logrus"
)

// logger is the diagnostic logger. User-facing messages go through
// LogFatal and LogWarn instead.
var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l
}

// Logger returns the process-wide diagnostic logger.
func Logger() *logrus.Logger {
	return logger
}

// SetVerbose switches diagnostic logging between warnings only and debug output.
func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
		return
	}
	logger.SetLevel(logrus.WarnLevel)
}
