package service

import (
	"github.com/stationhealth/onboarding-api/conf"
	"github.com/stationhealth/onboarding-api/onboarding/station"
)

// Services is the composition root handed to the router.
type Services struct {
	CareRequests        CareRequestService
	CreditCards         CreditCardService
	RiskAssessments     RiskAssessmentService
	MpoaConsents        MpoaConsentService
	SecondaryScreenings SecondaryScreeningService
	ShiftTeams          ShiftTeamService
	Markets             MarketService
	ClientConfig        *ClientConfigService
}

func New(st station.Requester, cfg *conf.Config) *Services {
	return &Services{
		CareRequests:        NewCareRequestService(st, cfg.FeatureConfig),
		CreditCards:         NewCreditCardService(st, cfg.FeatureConfig),
		RiskAssessments:     NewRiskAssessmentService(st),
		MpoaConsents:        NewMpoaConsentService(st),
		SecondaryScreenings: NewSecondaryScreeningService(st),
		ShiftTeams:          NewShiftTeamService(st),
		Markets:             NewMarketService(st),
		ClientConfig:        NewClientConfigService(cfg.LogDNAConfig),
	}
}
