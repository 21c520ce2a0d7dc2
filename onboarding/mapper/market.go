package mapper

import (
	"github.com/stationhealth/onboarding-api/onboarding/models"
	"github.com/stationhealth/onboarding-api/onboarding/station"
)

func MarketToStationMarket(m models.Market) station.Market {
	var schedules []station.MarketSchedule
	if m.Schedules != nil {
		schedules = make([]station.MarketSchedule, 0, len(m.Schedules))
		for _, s := range m.Schedules {
			schedules = append(schedules, station.MarketSchedule{
				OpenAt:       s.OpenAt,
				CloseAt:      s.CloseAt,
				OpenDuration: s.OpenDuration,
				Days:         s.Days,
			})
		}
	}

	return station.Market{
		ID:                      m.ID,
		Name:                    m.Name,
		ShortName:               m.ShortName,
		StateLocale:             m.StateLocale,
		TZName:                  m.TZName,
		AutoAssignable:          m.AutoAssignable,
		AutoAssignTypeOrDefault: m.AutoAssignTypeOrDefault,
		Schedules:               schedules,
	}
}

func StationMarketToMarket(m station.Market) models.Market {
	var schedules []models.MarketSchedule
	if m.Schedules != nil {
		schedules = make([]models.MarketSchedule, 0, len(m.Schedules))
		for _, s := range m.Schedules {
			schedules = append(schedules, models.MarketSchedule{
				OpenAt:       s.OpenAt,
				CloseAt:      s.CloseAt,
				OpenDuration: s.OpenDuration,
				Days:         s.Days,
			})
		}
	}

	return models.Market{
		ID:                      m.ID,
		Name:                    m.Name,
		ShortName:               m.ShortName,
		StateLocale:             m.StateLocale,
		TZName:                  m.TZName,
		AutoAssignable:          m.AutoAssignable,
		AutoAssignTypeOrDefault: m.AutoAssignTypeOrDefault,
		Schedules:               schedules,
	}
}

func StationMarketsToMarkets(in []station.Market) []models.Market {
	out := make([]models.Market, 0, len(in))
	for _, m := range in {
		out = append(out, StationMarketToMarket(m))
	}
	return out
}
