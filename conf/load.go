package conf

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Config is the typed view of the settings the API needs at startup.
type Config struct {
	Port             string `conf:"PORT"`
	Environment      string `conf:"NODE_ENV"`
	DeploymentTarget string `conf:"DEPLOYMENT_TARGET"`

	StationConfig  `conf:",squash"`
	LogDNAConfig   `conf:",squash"`
	FeatureConfig  `conf:",squash"`
	QueryCacheConf `conf:",squash"`
}

type StationConfig struct {
	StationURL       string `conf:"STATION_URL"`
	StationVendor    string `conf:"STATION_ACCEPT_VENDOR"`
	StationTimeoutMS int    `conf:"STATION_TIMEOUT_MS"`
	// Retries stay off unless explicitly configured.
	StationRetryMax int `conf:"STATION_RETRY_MAX"`
}

type LogDNAConfig struct {
	LogDNAKey string `conf:"LOG_DNA_KEY"`
	LogDNAApp string `conf:"LOG_DNA_APP"`
	LogDNAEnv string `conf:"LOG_DNA_ENV"`
}

type FeatureConfig struct {
	SkipFeasibility    bool `conf:"FEATURE_SKIP_FEASIBILITY"`
	ExistingCardLookup bool `conf:"FEATURE_EXISTING_CARD_LOOKUP"`
}

type QueryCacheConf struct {
	QueryCacheTTLSeconds int    `conf:"QUERY_CACHE_TTL_SECONDS"`
	RedisURL             string `conf:"REDIS_URL"`
}

var defaults = map[string]string{
	"PORT":                         "3000",
	"NODE_ENV":                     "development",
	"DEPLOYMENT_TARGET":            "local",
	"STATION_ACCEPT_VENDOR":        "stationhealth",
	"STATION_TIMEOUT_MS":           "10000",
	"STATION_RETRY_MAX":            "0",
	"LOG_DNA_APP":                  "onboarding-web",
	"FEATURE_SKIP_FEASIBILITY":     "false",
	"FEATURE_EXISTING_CARD_LOOKUP": "false",
	"QUERY_CACHE_TTL_SECONDS":      "0",
}

var keys = []string{
	"PORT", "NODE_ENV", "DEPLOYMENT_TARGET",
	"STATION_URL", "STATION_ACCEPT_VENDOR", "STATION_TIMEOUT_MS", "STATION_RETRY_MAX",
	"LOG_DNA_KEY", "LOG_DNA_APP", "LOG_DNA_ENV",
	"FEATURE_SKIP_FEASIBILITY", "FEATURE_EXISTING_CARD_LOOKUP",
	"QUERY_CACHE_TTL_SECONDS", "REDIS_URL",
}

// Load reads every known key from conf (or its default) and decodes the
// result into a Config. STATION_URL is required.
func Load() (*Config, error) {
	values := make(map[string]interface{}, len(keys))
	for _, key := range keys {
		if v, ok := LookupEnv(key); ok && v != "" {
			values[key] = v
		} else if d, ok := defaults[key]; ok {
			values[key] = d
		}
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "conf",
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(values); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.StationURL == "" {
		return nil, &MissingKeyError{Key: "STATION_URL"}
	}
	if cfg.LogDNAEnv == "" {
		cfg.LogDNAEnv = cfg.Environment
	}

	return &cfg, nil
}

type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("required configuration %s is not set", e.Key)
}
