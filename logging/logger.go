package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

// BoostrapLogger installs a debug-level text logger on stdout. It runs before
// the config is read so that config errors are logged too.
func BoostrapLogger() {
	Log = &logrus.Logger{
		Out:   os.Stdout,
		Hooks: make(logrus.LevelHooks),
		Formatter: &logrus.TextFormatter{
			DisableColors: false,
			FullTimestamp: true,
		},
		ReportCaller: true,
		Level:        logrus.DebugLevel,
		ExitFunc:     os.Exit,
	}
}

// Configure applies the level and format from config. Lambda output goes to
// CloudWatch, where the json format is easier to query.
func Configure(level string, format string) {
	if Log == nil {
		BoostrapLogger()
	}

	if lvl, err := logrus.ParseLevel(level); err == nil {
		Log.SetLevel(lvl)
	} else if level != "" {
		Log.Warnf("unknown log level '%s', keeping %s", level, Log.GetLevel())
	}

	if strings.EqualFold(format, "json") {
		Log.SetFormatter(&logrus.JSONFormatter{})
	}
}
