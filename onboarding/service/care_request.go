package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/stationhealth/onboarding-api/conf"
	"github.com/stationhealth/onboarding-api/onboarding/mapper"
	"github.com/stationhealth/onboarding-api/onboarding/models"
	"github.com/stationhealth/onboarding-api/onboarding/station"
)

var _ CareRequestService = &careRequestService{}

type CareRequestService interface {
	Create(ctx context.Context, cr models.CareRequest) (models.CareRequest, error)
	Get(ctx context.Context, id int64) (models.CareRequest, error)
	Update(ctx context.Context, id int64, cr models.CareRequest) (models.CareRequest, error)
	UpdateStatus(ctx context.Context, id int64, status models.CareRequestStatus) (models.CareRequestStatus, error)
}

type careRequestService struct {
	station  station.Requester
	features conf.FeatureConfig
}

func NewCareRequestService(st station.Requester, features conf.FeatureConfig) CareRequestService {
	return &careRequestService{station: st, features: features}
}

func (s *careRequestService) toStation(cr models.CareRequest) station.CareRequest {
	body := mapper.CareRequestToStationCareRequest(cr)
	if s.features.SkipFeasibility {
		body.SkipFeasibilityCheck = true
	}
	return body
}

func (s *careRequestService) Create(ctx context.Context, cr models.CareRequest) (models.CareRequest, error) {
	var created station.CareRequest
	if err := s.station.Post(ctx, careRequestsPath, s.toStation(cr), &created); err != nil {
		return models.CareRequest{}, errors.Wrap(err, "failed to create care request")
	}
	return mapper.StationCareRequestToCareRequest(created), nil
}

func (s *careRequestService) Get(ctx context.Context, id int64) (models.CareRequest, error) {
	var cr station.CareRequest
	if err := s.station.Get(ctx, careRequestPath(id), nil, &cr); err != nil {
		return models.CareRequest{}, errors.Wrapf(err, "failed to get care request %d", id)
	}
	return mapper.StationCareRequestToCareRequest(cr), nil
}

func (s *careRequestService) Update(ctx context.Context, id int64, cr models.CareRequest) (models.CareRequest, error) {
	cr.ID = id
	var updated station.CareRequest
	if err := s.station.Put(ctx, careRequestPath(id), s.toStation(cr), &updated); err != nil {
		return models.CareRequest{}, errors.Wrapf(err, "failed to update care request %d", id)
	}
	return mapper.StationCareRequestToCareRequest(updated), nil
}

// UpdateStatus forwards the transition. Station decides whether it is allowed.
func (s *careRequestService) UpdateStatus(ctx context.Context, id int64, status models.CareRequestStatus) (models.CareRequestStatus, error) {
	var updated station.CareRequestStatus
	err := s.station.Patch(ctx, careRequestPath(id)+"/status", mapper.CareRequestStatusToStationStatus(status), &updated)
	if err != nil {
		return models.CareRequestStatus{}, errors.Wrapf(err, "failed to update status of care request %d", id)
	}
	if updated.RequestStatus == "" {
		return status, nil
	}
	return mapper.StationStatusToCareRequestStatus(updated), nil
}
