package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/stationhealth/onboarding-api/onboarding/mapper"
	"github.com/stationhealth/onboarding-api/onboarding/models"
	"github.com/stationhealth/onboarding-api/onboarding/station"
)

var _ SecondaryScreeningService = &secondaryScreeningService{}

type SecondaryScreeningService interface {
	List(ctx context.Context, careRequestID int64) ([]models.SecondaryScreening, error)
	Create(ctx context.Context, ss models.SecondaryScreening) (models.SecondaryScreening, error)
	Update(ctx context.Context, id int64, ss models.SecondaryScreening) (models.SecondaryScreening, error)
	Delete(ctx context.Context, careRequestID, id int64) error
}

type secondaryScreeningService struct {
	station station.Requester
}

func NewSecondaryScreeningService(st station.Requester) SecondaryScreeningService {
	return &secondaryScreeningService{station: st}
}

func secondaryScreeningPath(careRequestID, id int64) string {
	return fmt.Sprintf("%s/%d", careRequestResourcePath(careRequestID, "secondary_screenings"), id)
}

func (s *secondaryScreeningService) List(ctx context.Context, careRequestID int64) ([]models.SecondaryScreening, error) {
	var screenings []station.SecondaryScreening
	if err := s.station.Get(ctx, careRequestResourcePath(careRequestID, "secondary_screenings"), nil, &screenings); err != nil {
		return nil, errors.Wrapf(err, "failed to list secondary screenings for care request %d", careRequestID)
	}
	return mapper.StationSecondaryScreeningsToSecondaryScreenings(screenings), nil
}

func (s *secondaryScreeningService) Create(ctx context.Context, ss models.SecondaryScreening) (models.SecondaryScreening, error) {
	var created station.SecondaryScreening
	path := careRequestResourcePath(ss.CareRequestID, "secondary_screenings")
	if err := s.station.Post(ctx, path, mapper.SecondaryScreeningToStationSecondaryScreening(ss), &created); err != nil {
		return models.SecondaryScreening{}, errors.Wrap(err, "failed to create secondary screening")
	}
	return mapper.StationSecondaryScreeningToSecondaryScreening(created), nil
}

func (s *secondaryScreeningService) Update(ctx context.Context, id int64, ss models.SecondaryScreening) (models.SecondaryScreening, error) {
	ss.ID = id
	var updated station.SecondaryScreening
	if err := s.station.Patch(ctx, secondaryScreeningPath(ss.CareRequestID, id), mapper.SecondaryScreeningToStationSecondaryScreening(ss), &updated); err != nil {
		return models.SecondaryScreening{}, errors.Wrapf(err, "failed to update secondary screening %d", id)
	}
	return mapper.StationSecondaryScreeningToSecondaryScreening(updated), nil
}

func (s *secondaryScreeningService) Delete(ctx context.Context, careRequestID, id int64) error {
	if err := s.station.Delete(ctx, secondaryScreeningPath(careRequestID, id), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete secondary screening %d", id)
	}
	return nil
}
