package service

import (
	"github.com/stationhealth/onboarding-api/conf"
	"github.com/stationhealth/onboarding-api/onboarding/models"
)

// ClientConfigService hands browser clients the settings they need to ship
// their own logs.
type ClientConfigService struct {
	logDNA conf.LogDNAConfig
}

func NewClientConfigService(cfg conf.LogDNAConfig) *ClientConfigService {
	return &ClientConfigService{logDNA: cfg}
}

func (s *ClientConfigService) LogDNA() models.LogDNAConfig {
	return models.LogDNAConfig{
		ClientKey:   s.logDNA.LogDNAKey,
		App:         s.logDNA.LogDNAApp,
		Environment: s.logDNA.LogDNAEnv,
	}
}

// HasLogDNAKey reports whether the ingestion key is configured.
func (s *ClientConfigService) HasLogDNAKey() bool {
	return s.logDNA.LogDNAKey != ""
}
