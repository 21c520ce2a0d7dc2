package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	customErrors "github.com/stationhealth/onboarding-api/onboarding/errors"
	"github.com/stationhealth/onboarding-api/onboarding/mapper"
	"github.com/stationhealth/onboarding-api/onboarding/models"
	"github.com/stationhealth/onboarding-api/onboarding/station"
)

var _ MpoaConsentService = &mpoaConsentService{}

type MpoaConsentService interface {
	Create(ctx context.Context, c models.MpoaConsent) (models.MpoaConsent, error)
	// Get returns nil, nil when the care request has no consent yet.
	Get(ctx context.Context, careRequestID int64) (*models.MpoaConsent, error)
	Update(ctx context.Context, careRequestID, id int64, c models.MpoaConsent) (models.MpoaConsent, error)
}

type mpoaConsentService struct {
	station station.Requester
}

func NewMpoaConsentService(st station.Requester) MpoaConsentService {
	return &mpoaConsentService{station: st}
}

func (s *mpoaConsentService) Create(ctx context.Context, c models.MpoaConsent) (models.MpoaConsent, error) {
	var created station.MpoaConsent
	path := careRequestResourcePath(c.CareRequestID, "mpoa_consents")
	if err := s.station.Post(ctx, path, mapper.MpoaConsentToStationMpoaConsent(c), &created); err != nil {
		return models.MpoaConsent{}, errors.Wrap(err, "failed to create mpoa consent")
	}
	return mapper.StationMpoaConsentToMpoaConsent(created), nil
}

func (s *mpoaConsentService) Get(ctx context.Context, careRequestID int64) (*models.MpoaConsent, error) {
	var c station.MpoaConsent
	err := s.station.Get(ctx, careRequestResourcePath(careRequestID, "mpoa_consents"), nil, &c)
	if customErrors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get mpoa consent for care request %d", careRequestID)
	}

	consent := mapper.StationMpoaConsentToMpoaConsent(c)
	return &consent, nil
}

func (s *mpoaConsentService) Update(ctx context.Context, careRequestID, id int64, c models.MpoaConsent) (models.MpoaConsent, error) {
	c.ID = id
	c.CareRequestID = careRequestID
	var updated station.MpoaConsent
	path := fmt.Sprintf("%s/%d", careRequestResourcePath(careRequestID, "mpoa_consents"), id)
	if err := s.station.Patch(ctx, path, mapper.MpoaConsentToStationMpoaConsent(c), &updated); err != nil {
		return models.MpoaConsent{}, errors.Wrapf(err, "failed to update mpoa consent %d", id)
	}
	return mapper.StationMpoaConsentToMpoaConsent(updated), nil
}
