package log

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stationhealth/onboarding-api/conf"
)

var (
	API     logrus.FieldLogger
	Request logrus.FieldLogger
	Station logrus.FieldLogger
)

func init() {
	SetupLoggers()
}

// SetupLoggers (re)creates the package loggers from the current conf values.
func SetupLoggers() {
	env := conf.GetEnv("NODE_ENV")
	API = Logger(logrus.New(), conf.GetEnv("ONBOARDING_API_LOG"), "api", env)
	Request = Logger(logrus.New(), conf.GetEnv("ONBOARDING_REQUEST_LOG"), "api", env)
	Station = Logger(logrus.New(), conf.GetEnv("ONBOARDING_STATION_LOG"), "station", env)
}

func Logger(logger *logrus.Logger, outputFile string,
	application, environment string) logrus.FieldLogger {

	logger.Formatter = &logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano}
	logger.SetLevel(level(conf.GetEnv("LOG_LEVEL")))

	if outputFile != "" {
		/* #nosec -- 0640 permissions required for log shipping */
		if file, err := os.OpenFile(filepath.Clean(outputFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640); err == nil {
			logger.SetOutput(file)
		} else {
			logger.Infof("Failed to open output file %s. Will use stderr. %s",
				outputFile, err.Error())
		}
	}

	return logger.WithFields(logrus.Fields{
		"application": application,
		"environment": environment})
}

func level(s string) logrus.Level {
	if s == "" {
		return logrus.InfoLevel
	}
	l, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel
	}
	return l
}

// WithArgs attaches the request arguments to the logger when
// LOG_INCLUDE_EXTENDED_DATA is enabled. Otherwise the logger is returned as is.
func WithArgs(logger logrus.FieldLogger, args interface{}) logrus.FieldLogger {
	if args == nil || !conf.GetEnvBool("LOG_INCLUDE_EXTENDED_DATA", false) {
		return logger
	}
	return logger.WithField("args", args)
}
