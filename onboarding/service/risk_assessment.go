package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/stationhealth/onboarding-api/onboarding/mapper"
	"github.com/stationhealth/onboarding-api/onboarding/models"
	"github.com/stationhealth/onboarding-api/onboarding/station"
)

var _ RiskAssessmentService = &riskAssessmentService{}

type RiskAssessmentService interface {
	Create(ctx context.Context, ra models.RiskAssessment) (models.RiskAssessment, error)
	Get(ctx context.Context, careRequestID, id int64) (models.RiskAssessment, error)
	Update(ctx context.Context, id int64, ra models.RiskAssessment) (models.RiskAssessment, error)
	Delete(ctx context.Context, careRequestID, id int64) error
}

type riskAssessmentService struct {
	station station.Requester
}

func NewRiskAssessmentService(st station.Requester) RiskAssessmentService {
	return &riskAssessmentService{station: st}
}

func riskAssessmentPath(careRequestID, id int64) string {
	return fmt.Sprintf("%s/%d", careRequestResourcePath(careRequestID, "risk_assessments"), id)
}

func (s *riskAssessmentService) Create(ctx context.Context, ra models.RiskAssessment) (models.RiskAssessment, error) {
	var created station.RiskAssessment
	path := careRequestResourcePath(ra.CareRequestID, "risk_assessments")
	if err := s.station.Post(ctx, path, mapper.RiskAssessmentToStationRiskAssessment(ra), &created); err != nil {
		return models.RiskAssessment{}, errors.Wrap(err, "failed to create risk assessment")
	}
	return mapper.StationRiskAssessmentToRiskAssessment(created), nil
}

func (s *riskAssessmentService) Get(ctx context.Context, careRequestID, id int64) (models.RiskAssessment, error) {
	var ra station.RiskAssessment
	if err := s.station.Get(ctx, riskAssessmentPath(careRequestID, id), nil, &ra); err != nil {
		return models.RiskAssessment{}, errors.Wrapf(err, "failed to get risk assessment %d", id)
	}
	return mapper.StationRiskAssessmentToRiskAssessment(ra), nil
}

func (s *riskAssessmentService) Update(ctx context.Context, id int64, ra models.RiskAssessment) (models.RiskAssessment, error) {
	ra.ID = id
	var updated station.RiskAssessment
	if err := s.station.Patch(ctx, riskAssessmentPath(ra.CareRequestID, id), mapper.RiskAssessmentToStationRiskAssessment(ra), &updated); err != nil {
		return models.RiskAssessment{}, errors.Wrapf(err, "failed to update risk assessment %d", id)
	}
	return mapper.StationRiskAssessmentToRiskAssessment(updated), nil
}

func (s *riskAssessmentService) Delete(ctx context.Context, careRequestID, id int64) error {
	if err := s.station.Delete(ctx, riskAssessmentPath(careRequestID, id), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete risk assessment %d", id)
	}
	return nil
}
