package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type LoadTestSuite struct {
	suite.Suite
	orig map[string]string
}

func (s *LoadTestSuite) SetupTest() {
	s.orig = make(map[string]string)
	for _, key := range keys {
		s.orig[key] = GetEnv(key)
		_ = UnsetEnv(s.T(), key)
	}
}

func (s *LoadTestSuite) TearDownTest() {
	for key, value := range s.orig {
		_ = SetEnv(s.T(), key, value)
	}
}

func (s *LoadTestSuite) TestLoadDefaults() {
	_ = SetEnv(s.T(), "STATION_URL", "http://station.test")

	cfg, err := Load()
	s.Require().NoError(err)
	assert.Equal(s.T(), "http://station.test", cfg.StationURL)
	assert.Equal(s.T(), "3000", cfg.Port)
	assert.Equal(s.T(), "stationhealth", cfg.StationVendor)
	assert.Equal(s.T(), 10000, cfg.StationTimeoutMS)
	assert.Equal(s.T(), 0, cfg.StationRetryMax)
	assert.False(s.T(), cfg.SkipFeasibility)
	assert.False(s.T(), cfg.ExistingCardLookup)
	assert.Equal(s.T(), "development", cfg.LogDNAEnv)
}

func (s *LoadTestSuite) TestLoadOverrides() {
	_ = SetEnv(s.T(), "STATION_URL", "http://station.test")
	_ = SetEnv(s.T(), "STATION_TIMEOUT_MS", "2500")
	_ = SetEnv(s.T(), "FEATURE_SKIP_FEASIBILITY", "true")
	_ = SetEnv(s.T(), "LOG_DNA_KEY", "abc123")
	_ = SetEnv(s.T(), "LOG_DNA_ENV", "qa")

	cfg, err := Load()
	s.Require().NoError(err)
	assert.Equal(s.T(), 2500, cfg.StationTimeoutMS)
	assert.True(s.T(), cfg.SkipFeasibility)
	assert.Equal(s.T(), "abc123", cfg.LogDNAKey)
	assert.Equal(s.T(), "qa", cfg.LogDNAEnv)
}

func (s *LoadTestSuite) TestLoadMissingStationURL() {
	cfg, err := Load()
	assert.Nil(s.T(), cfg)
	var missing *MissingKeyError
	s.Require().ErrorAs(err, &missing)
	assert.Equal(s.T(), "STATION_URL", missing.Key)
}

func (s *LoadTestSuite) TestLoadBadInt() {
	_ = SetEnv(s.T(), "STATION_URL", "http://station.test")
	_ = SetEnv(s.T(), "STATION_TIMEOUT_MS", "soon")

	_, err := Load()
	assert.Error(s.T(), err)
}

func TestLoadTestSuite(t *testing.T) {
	suite.Run(t, new(LoadTestSuite))
}
