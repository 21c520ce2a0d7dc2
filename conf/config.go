package conf

/*
   This is a package that wraps viper, a package designed to handle config
   files, for the onboarding API.

   Values are looked up in a local.env file first (when one is found) and then
   in the process environment. Deployed environments do not ship a local.env,
   so there every lookup falls through to the environment.

   Assumptions:
   1. The configuration file is an env file named local.env
   2. The configuration file, once it is made available to the application,
   will stay immutable during the uptime of the application (exception is test)
*/

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// An instance of the viper struct containing the conf information. Only made
// accessible through public functions GetEnv, SetEnv, etc.
var envVars *viper.Viper

const (
	configgood    uint8 = 0
	configbad     uint8 = 1
	noconfigfound uint8 = 2
)

var state = noconfigfound

func setup(dir string) *viper.Viper {
	var v = viper.New()
	v.SetConfigName("local")
	v.SetConfigType("env")
	v.AddConfigPath(dir)

	// Viper is lazy, do the read and parse of the config file now
	if err := v.ReadInConfig(); err != nil {
		state = configbad
		return v
	}

	state = configgood
	return v
}

func init() {
	// Possible config file locations, checked in order.
	var locations = []string{
		"../shared_files/decrypted",
		".",
	}

	if loc, ok := findEnv(locations); ok {
		envVars = setup(loc)
	}
}

// findEnv returns the first location that holds a local.env file.
func findEnv(locations []string) (string, bool) {
	for _, loc := range locations {
		if _, err := os.Stat(loc + "/local.env"); err == nil {
			return loc, true
		}
	}
	return "", false
}

// GetEnv retrieves the value stored in conf, falling back to the environment.
// If it does not exist "" empty string is returned.
func GetEnv(key string) string {
	if state == configgood {
		if value := envVars.GetString(key); value != "" {
			return value
		}
	}

	return os.Getenv(key)
}

// LookupEnv acts like os.LookupEnv but looks in conf first.
func LookupEnv(key string) (string, bool) {
	if state == configgood {
		if value := envVars.GetString(key); value != "" {
			return value, true
		}
	}

	return os.LookupEnv(key)
}

// SetEnv adds a key value into conf. This function should only be used
// either in this package itself or testing. The protect parameter is there
// to ensure developers knowingly use it in the appropriate scope.
func SetEnv(protect *testing.T, key string, value string) error {
	if state == configgood {
		envVars.Set(key, value)
		return nil
	}

	return os.Setenv(key, value)
}

// UnsetEnv "unsets" a variable. Like SetEnv, this should only be used
// either in this package itself or testing.
func UnsetEnv(protect *testing.T, key string) error {
	if state == configgood {
		envVars.Set(key, "")
	}

	return os.Unsetenv(key)
}

// FromEnv always returns a string that is either a non-empty value from the
// config named by key or the string otherwise
func FromEnv(key, otherwise string) string {
	s := GetEnv(key)
	if s == "" {
		logrus.Infof(`No %s value; using %s instead.`, key, otherwise)
		return otherwise
	}
	return s
}

func GetEnvInt(key string, defaultVal int) int {
	v := GetEnv(key)
	if v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return defaultVal
}

func GetEnvBool(key string, defaultVal bool) bool {
	v := strings.TrimSpace(GetEnv(key))
	if v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return defaultVal
}
