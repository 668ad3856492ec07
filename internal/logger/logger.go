// Package logger provides the process-wide structured logger used by the
// bt and bs engines and the kvidx CLI.
package logger

import (
	"os"

	logger "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// L is the shared logger instance. Engines log lifecycle events
// (open/split/build) at Debug and failures at Warn/Error; nothing in
// this package's default configuration writes at Info or above during
// normal operation, so embedding it in a library stays quiet by default.
var L = &logger.Logger{
	Out:   os.Stderr,
	Level: logger.InfoLevel,
	Formatter: &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	},
}
