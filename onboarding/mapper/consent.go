package mapper

import (
	"github.com/stationhealth/onboarding-api/onboarding/models"
	"github.com/stationhealth/onboarding-api/onboarding/station"
)

func MpoaConsentToStationMpoaConsent(c models.MpoaConsent) station.MpoaConsent {
	return station.MpoaConsent{
		ID:                  c.ID,
		CareRequestID:       c.CareRequestID,
		Consented:           c.Consented,
		PowerOfAttorneyID:   c.PowerOfAttorneyID,
		TimeOfConsentChange: c.TimeOfConsentChange,
		UserID:              c.UserID,
	}
}

func StationMpoaConsentToMpoaConsent(c station.MpoaConsent) models.MpoaConsent {
	return models.MpoaConsent{
		ID:                  c.ID,
		CareRequestID:       c.CareRequestID,
		Consented:           c.Consented,
		PowerOfAttorneyID:   c.PowerOfAttorneyID,
		TimeOfConsentChange: c.TimeOfConsentChange,
		UserID:              c.UserID,
	}
}

func SecondaryScreeningToStationSecondaryScreening(s models.SecondaryScreening) station.SecondaryScreening {
	return station.SecondaryScreening{
		ID:                       s.ID,
		CareRequestID:            s.CareRequestID,
		ApprovalStatus:           s.ApprovalStatus,
		ProviderID:               s.ProviderID,
		MustBeSeenToday:          s.MustBeSeenToday,
		Note:                     s.Note,
		TelepresentationEligible: s.TelepresentationEligible,
	}
}

func StationSecondaryScreeningToSecondaryScreening(s station.SecondaryScreening) models.SecondaryScreening {
	return models.SecondaryScreening{
		ID:                       s.ID,
		CareRequestID:            s.CareRequestID,
		ApprovalStatus:           s.ApprovalStatus,
		ProviderID:               s.ProviderID,
		MustBeSeenToday:          s.MustBeSeenToday,
		Note:                     s.Note,
		TelepresentationEligible: s.TelepresentationEligible,
	}
}

func StationSecondaryScreeningsToSecondaryScreenings(in []station.SecondaryScreening) []models.SecondaryScreening {
	out := make([]models.SecondaryScreening, 0, len(in))
	for _, s := range in {
		out = append(out, StationSecondaryScreeningToSecondaryScreening(s))
	}
	return out
}
