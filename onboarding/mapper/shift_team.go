package mapper

import (
	"strconv"

	"github.com/stationhealth/onboarding-api/onboarding/models"
	"github.com/stationhealth/onboarding-api/onboarding/station"
)

func ShiftTeamToStationShiftTeam(st models.ShiftTeam) station.ShiftTeam {
	var members []station.ShiftTeamMember
	if st.Members != nil {
		members = make([]station.ShiftTeamMember, 0, len(st.Members))
		for _, m := range st.Members {
			members = append(members, station.ShiftTeamMember{
				ID:           m.ID,
				FirstName:    m.FirstName,
				LastName:     m.LastName,
				ProviderType: m.ProviderType,
			})
		}
	}

	return station.ShiftTeam{
		ID:        st.ID,
		MarketID:  st.MarketID,
		CarID:     st.CarID,
		CarName:   st.CarName,
		StartTime: st.StartTime,
		EndTime:   st.EndTime,
		Members:   members,
	}
}

func StationShiftTeamToShiftTeam(st station.ShiftTeam) models.ShiftTeam {
	var members []models.ShiftTeamMember
	if st.Members != nil {
		members = make([]models.ShiftTeamMember, 0, len(st.Members))
		for _, m := range st.Members {
			members = append(members, models.ShiftTeamMember{
				ID:           m.ID,
				FirstName:    m.FirstName,
				LastName:     m.LastName,
				ProviderType: m.ProviderType,
			})
		}
	}

	return models.ShiftTeam{
		ID:        st.ID,
		MarketID:  st.MarketID,
		CarID:     st.CarID,
		CarName:   st.CarName,
		StartTime: st.StartTime,
		EndTime:   st.EndTime,
		Members:   members,
	}
}

// AssignableShiftTeamToStationAssignableShiftTeam encodes the flattened
// fields back into tagged attributes, single-valued tags first.
func AssignableShiftTeamToStationAssignableShiftTeam(st models.AssignableShiftTeam) station.AssignableShiftTeam {
	attrs := []string{}
	for _, single := range []struct{ tag, value string }{
		{PresentationModalityTag, st.PresentationModality},
		{AssignmentTypeTag, st.AssignmentType},
		{ServiceNameTag, st.ServiceName},
	} {
		if single.value != "" {
			attrs = append(attrs, attribute(single.tag, single.value))
		}
	}
	for _, l := range st.Licenses {
		attrs = append(attrs, attribute(LicenseTag, l))
	}
	for _, i := range st.Insurances {
		attrs = append(attrs, attribute(InsuranceTag, i))
	}
	for _, id := range st.SkillIDs {
		attrs = append(attrs, attribute(SkillIDTag, strconv.FormatInt(id, 10)))
	}

	return station.AssignableShiftTeam{
		ShiftTeam:  ShiftTeamToStationShiftTeam(st.ShiftTeam),
		Attributes: attrs,
	}
}

func StationAssignableShiftTeamToAssignableShiftTeam(st station.AssignableShiftTeam) models.AssignableShiftTeam {
	return models.AssignableShiftTeam{
		ShiftTeam:            StationShiftTeamToShiftTeam(st.ShiftTeam),
		PresentationModality: FirstAttribute(st.Attributes, PresentationModalityTag),
		AssignmentType:       FirstAttribute(st.Attributes, AssignmentTypeTag),
		ServiceName:          FirstAttribute(st.Attributes, ServiceNameTag),
		Licenses:             FlattenAttribute(st.Attributes, LicenseTag),
		Insurances:           FlattenAttribute(st.Attributes, InsuranceTag),
		SkillIDs:             FlattenIntAttribute(st.Attributes, SkillIDTag),
	}
}

func StationAssignableShiftTeamsToAssignableShiftTeams(in []station.AssignableShiftTeam) []models.AssignableShiftTeam {
	out := make([]models.AssignableShiftTeam, 0, len(in))
	for _, st := range in {
		out = append(out, StationAssignableShiftTeamToAssignableShiftTeam(st))
	}
	return out
}

func ShiftTeamSearchToStationParams(s models.ShiftTeamSearch) map[string]interface{} {
	return map[string]interface{}{
		"care_request_id": s.CareRequestID,
		"market_id":       s.MarketID,
		"start":           s.Start,
		"end":             s.End,
	}
}
