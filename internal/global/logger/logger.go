package logger

import (
	"os"

	"gitlab.com/bhajan-roster.net/internal/adapter/logging"
)

// Logger is the process-wide logger used before configuration is loaded.
var Logger = logging.NewZapLogger(os.Getenv("LOG_LEVEL"))

func Info(msg string, args ...interface{}) {
	Logger.Info(msg, args...)
}

func Error(msg string, args ...interface{}) {
	Logger.Error(msg, args...)
}

func Debug(msg string, args ...interface{}) {
	Logger.Debug(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	Logger.Warn(msg, args...)
}
