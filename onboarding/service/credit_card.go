package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/stationhealth/onboarding-api/conf"
	"github.com/stationhealth/onboarding-api/log"
	"github.com/stationhealth/onboarding-api/onboarding/constants"
	customErrors "github.com/stationhealth/onboarding-api/onboarding/errors"
	"github.com/stationhealth/onboarding-api/onboarding/mapper"
	"github.com/stationhealth/onboarding-api/onboarding/models"
	"github.com/stationhealth/onboarding-api/onboarding/station"
)

var _ CreditCardService = &creditCardService{}

type CreditCardService interface {
	List(ctx context.Context, q models.CreditCardQuery) ([]models.CreditCard, error)
	Get(ctx context.Context, patientID, id int64) (models.CreditCard, error)
	Create(ctx context.Context, cc models.CreditCard) (models.CreditCard, error)
	Update(ctx context.Context, id int64, cc models.CreditCard) (models.CreditCard, error)
	Delete(ctx context.Context, patientID, id int64) error
}

type creditCardService struct {
	station  station.Requester
	features conf.FeatureConfig
}

func NewCreditCardService(st station.Requester, features conf.FeatureConfig) CreditCardService {
	return &creditCardService{station: st, features: features}
}

// List returns the patient's cards. With the existing-card lookup enabled, an
// empty list falls back to the card already attached to the care request.
func (s *creditCardService) List(ctx context.Context, q models.CreditCardQuery) ([]models.CreditCard, error) {
	var cards []station.CreditCard
	err := s.station.Get(ctx, patientCreditCardsPath(q.PatientID), mapper.CreditCardQueryToStationParams(q), &cards)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list credit cards for patient %d", q.PatientID)
	}

	if len(cards) == 0 && s.features.ExistingCardLookup && q.CareRequestID != 0 {
		existing, err := s.attachedCard(ctx, q.CareRequestID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			cards = append(cards, *existing)
		}
	}

	return mapper.StationCreditCardsToCreditCards(cards), nil
}

func (s *creditCardService) attachedCard(ctx context.Context, careRequestID int64) (*station.CreditCard, error) {
	var card station.CreditCard
	err := s.station.Get(ctx, careRequestResourcePath(careRequestID, "credit_card"), nil, &card)
	if customErrors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up credit card for care request %d", careRequestID)
	}
	if card.ID == 0 {
		return nil, nil
	}
	return &card, nil
}

func (s *creditCardService) Get(ctx context.Context, patientID, id int64) (models.CreditCard, error) {
	var card station.CreditCard
	if err := s.station.Get(ctx, fmt.Sprintf("%s/%d", patientCreditCardsPath(patientID), id), nil, &card); err != nil {
		return models.CreditCard{}, errors.Wrapf(err, "failed to get credit card %d", id)
	}
	return mapper.StationCreditCardToCreditCard(card), nil
}

// Create stores the card and, when a care request is given, attaches it in a
// second call. A failed attach leaves the card in place.
func (s *creditCardService) Create(ctx context.Context, cc models.CreditCard) (models.CreditCard, error) {
	var created station.CreditCard
	if err := s.station.Post(ctx, patientCreditCardsPath(cc.PatientID), mapper.CreditCardToStationCreditCard(cc), &created); err != nil {
		return models.CreditCard{}, errors.Wrap(err, "failed to create credit card")
	}

	if cc.CareRequestID != 0 {
		attach := station.AttachCreditCard{CreditCardID: created.ID}
		if err := s.station.Post(ctx, careRequestResourcePath(cc.CareRequestID, "credit_cards"), attach, nil); err != nil {
			log.API.WithFields(logrus.Fields{
				"credit_card_id":  created.ID,
				"care_request_id": cc.CareRequestID,
				"patient_id":      cc.PatientID,
			}).Error(constants.AttachCardErr)
			return models.CreditCard{}, errors.Wrap(err, constants.AttachCardErr)
		}
		created.CareRequestID = cc.CareRequestID
	}

	return mapper.StationCreditCardToCreditCard(created), nil
}

func (s *creditCardService) Update(ctx context.Context, id int64, cc models.CreditCard) (models.CreditCard, error) {
	cc.ID = id
	var updated station.CreditCard
	path := fmt.Sprintf("%s/%d", patientCreditCardsPath(cc.PatientID), id)
	if err := s.station.Put(ctx, path, mapper.CreditCardToStationCreditCard(cc), &updated); err != nil {
		return models.CreditCard{}, errors.Wrapf(err, "failed to update credit card %d", id)
	}
	return mapper.StationCreditCardToCreditCard(updated), nil
}

func (s *creditCardService) Delete(ctx context.Context, patientID, id int64) error {
	if err := s.station.Delete(ctx, fmt.Sprintf("%s/%d", patientCreditCardsPath(patientID), id), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete credit card %d", id)
	}
	return nil
}
