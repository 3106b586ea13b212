package config

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogFileName receives a copy of everything logged to the console.
const LogFileName = "fximport.log"

// InitLogger builds the run's logger: colorized console output mirrored to
// the import log file. When the file cannot be opened the import still
// runs, console-only.
func InitLogger(isDebug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   true,
	})

	file, err := os.OpenFile(LogFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logger.SetOutput(os.Stdout)
		logger.Warnf("⚠️ Failed to open %s, logging to console only", LogFileName)
	} else {
		logger.SetOutput(io.MultiWriter(os.Stdout, file))
	}

	if isDebug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger
}
