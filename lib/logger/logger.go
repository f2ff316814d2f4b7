package logger

import (
	"github.com/Pocket/global-utils/common/environment"
	logger "github.com/sirupsen/logrus"
)

var (
	logLevel = environment.GetString("LOG_LEVEL", "info")

	Log = logger.New()
)

func init() {
	// Log as JSON instead of the default ASCII formatter.
	Log.SetFormatter(&logger.JSONFormatter{})
	Log.SetLevel(ParseLevel(logLevel))
}

// ParseLevel returns the logrus level for the given name, falling back to
// info when the name is not a valid level
func ParseLevel(name string) logger.Level {
	level, err := logger.ParseLevel(name)
	if err != nil {
		return logger.InfoLevel
	}
	return level
}
