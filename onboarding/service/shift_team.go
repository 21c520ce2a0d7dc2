package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/stationhealth/onboarding-api/onboarding/mapper"
	"github.com/stationhealth/onboarding-api/onboarding/models"
	"github.com/stationhealth/onboarding-api/onboarding/station"
)

var _ ShiftTeamService = &shiftTeamService{}

type ShiftTeamService interface {
	Fetch(ctx context.Context, id int64) (models.ShiftTeam, error)
	Search(ctx context.Context, q models.ShiftTeamSearch) ([]models.AssignableShiftTeam, error)
}

type shiftTeamService struct {
	station station.Requester
}

func NewShiftTeamService(st station.Requester) ShiftTeamService {
	return &shiftTeamService{station: st}
}

func (s *shiftTeamService) Fetch(ctx context.Context, id int64) (models.ShiftTeam, error) {
	var st station.ShiftTeam
	if err := s.station.Get(ctx, fmt.Sprintf("%s/%d", shiftTeamsPath, id), nil, &st); err != nil {
		return models.ShiftTeam{}, errors.Wrapf(err, "failed to fetch shift team %d", id)
	}
	return mapper.StationShiftTeamToShiftTeam(st), nil
}

func (s *shiftTeamService) Search(ctx context.Context, q models.ShiftTeamSearch) ([]models.AssignableShiftTeam, error) {
	var teams []station.AssignableShiftTeam
	if err := s.station.Get(ctx, shiftTeamsPath+"/assignable", mapper.ShiftTeamSearchToStationParams(q), &teams); err != nil {
		return nil, errors.Wrap(err, "failed to search shift teams")
	}
	return mapper.StationAssignableShiftTeamsToAssignableShiftTeams(teams), nil
}
