package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/stationhealth/onboarding-api/conf"
	customErrors "github.com/stationhealth/onboarding-api/onboarding/errors"
	"github.com/stationhealth/onboarding-api/onboarding/models"
	"github.com/stationhealth/onboarding-api/onboarding/station"
)

type CreditCardServiceTestSuite struct {
	suite.Suite
	station *fakeStation
	service CreditCardService
}

func (s *CreditCardServiceTestSuite) SetupTest() {
	s.service = NewCreditCardService(s.newClient(), conf.FeatureConfig{})
}

func (s *CreditCardServiceTestSuite) newClient() *station.Client {
	f, client := newFakeStation(s.T())
	s.station = f
	return client
}

func TestCreditCardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CreditCardServiceTestSuite))
}

func (s *CreditCardServiceTestSuite) TestCreateWithCareRequestMakesTwoCallsInOrder() {
	s.station.on(http.MethodPost, "/api/patients/11/credit_cards", http.StatusCreated,
		`{"id": 99, "patient_id": 11, "last_four": "4242", "card_type": "visa", "expiration": "2030-01-01", "name_on_card": "Jane Doe"}`)
	s.station.on(http.MethodPost, "/api/care_requests/5/credit_cards", http.StatusCreated, `{}`)

	card, err := s.service.Create(context.Background(), models.CreditCard{
		PatientID: 11, CareRequestID: 5, Expiration: "2030-01-01", NameOnCard: "Jane Doe", Token: "tok_1",
	})

	s.NoError(err)
	s.Equal(int64(99), card.ID)
	s.Equal(int64(5), card.CareRequestID)
	s.Equal("4242", card.LastFour)
	s.Empty(card.Token)

	calls := s.station.recorded()
	s.Require().Len(calls, 2)
	s.Equal("/api/patients/11/credit_cards", calls[0].Path)
	s.Equal("tok_1", calls[0].Body["token"])
	s.Equal("Jane Doe", calls[0].Body["name_on_card"])
	s.Equal("/api/care_requests/5/credit_cards", calls[1].Path)
	s.Equal(float64(99), calls[1].Body["credit_card_id"])
}

func (s *CreditCardServiceTestSuite) TestCreateWithoutCareRequestMakesOneCall() {
	s.station.on(http.MethodPost, "/api/patients/11/credit_cards", http.StatusCreated, `{"id": 99, "patient_id": 11}`)

	_, err := s.service.Create(context.Background(), models.CreditCard{PatientID: 11})

	s.NoError(err)
	s.Len(s.station.recorded(), 1)
}

func (s *CreditCardServiceTestSuite) TestCreateAttachFailureIsNotCompensated() {
	s.station.on(http.MethodPost, "/api/patients/11/credit_cards", http.StatusCreated, `{"id": 99, "patient_id": 11}`)
	s.station.on(http.MethodPost, "/api/care_requests/5/credit_cards", http.StatusConflict, `{"message": "already attached"}`)

	_, err := s.service.Create(context.Background(), models.CreditCard{PatientID: 11, CareRequestID: 5})

	s.Error(err)
	s.Equal(http.StatusConflict, customErrors.StatusCode(err))
	calls := s.station.recorded()
	s.Len(calls, 2)
	for _, c := range calls {
		s.NotEqual(http.MethodDelete, c.Method)
	}
}

func (s *CreditCardServiceTestSuite) TestCreateFieldErrors() {
	s.station.on(http.MethodPost, "/api/patients/11/credit_cards", http.StatusUnprocessableEntity,
		`{"errors": {"number": ["is invalid"]}}`)

	_, err := s.service.Create(context.Background(), models.CreditCard{PatientID: 11, CareRequestID: 5})

	var upstreamErr *customErrors.UpstreamError
	s.Require().ErrorAs(err, &upstreamErr)
	s.Equal([]string{"Number is invalid"}, upstreamErr.FieldMessages())
	s.Len(s.station.recorded(), 1)
}

func (s *CreditCardServiceTestSuite) TestList() {
	s.station.on(http.MethodGet, "/api/patients/11/credit_cards", http.StatusOK,
		`[{"id": 1, "patient_id": 11, "last_four": "1111"}, {"id": 2, "patient_id": 11, "last_four": "2222"}]`)

	cards, err := s.service.List(context.Background(), models.CreditCardQuery{PatientID: 11, CareRequestID: 5})

	s.NoError(err)
	s.Len(cards, 2)
	s.Equal("care_request_id=5", s.station.recorded()[0].Query)
}

func (s *CreditCardServiceTestSuite) TestListFallsBackToAttachedCard() {
	s.service = NewCreditCardService(s.newClient(), conf.FeatureConfig{ExistingCardLookup: true})
	s.station.on(http.MethodGet, "/api/patients/11/credit_cards", http.StatusOK, `[]`)
	s.station.on(http.MethodGet, "/api/care_requests/5/credit_card", http.StatusOK, `{"id": 7, "patient_id": 11}`)

	cards, err := s.service.List(context.Background(), models.CreditCardQuery{PatientID: 11, CareRequestID: 5})

	s.NoError(err)
	s.Require().Len(cards, 1)
	s.Equal(int64(7), cards[0].ID)
}

func (s *CreditCardServiceTestSuite) TestListFallbackMissingCard() {
	s.service = NewCreditCardService(s.newClient(), conf.FeatureConfig{ExistingCardLookup: true})
	s.station.on(http.MethodGet, "/api/patients/11/credit_cards", http.StatusOK, `[]`)

	cards, err := s.service.List(context.Background(), models.CreditCardQuery{PatientID: 11, CareRequestID: 5})

	s.NoError(err)
	s.Empty(cards)
	s.NotNil(cards)
}

func (s *CreditCardServiceTestSuite) TestListWithoutFallback() {
	s.station.on(http.MethodGet, "/api/patients/11/credit_cards", http.StatusOK, `[]`)

	cards, err := s.service.List(context.Background(), models.CreditCardQuery{PatientID: 11, CareRequestID: 5})

	s.NoError(err)
	s.Empty(cards)
	s.Len(s.station.recorded(), 1)
}

func (s *CreditCardServiceTestSuite) TestGetUpdateDelete() {
	s.station.on(http.MethodGet, "/api/patients/11/credit_cards/3", http.StatusOK, `{"id": 3, "patient_id": 11}`)
	s.station.on(http.MethodPut, "/api/patients/11/credit_cards/3", http.StatusOK, `{"id": 3, "patient_id": 11, "name_on_card": "New Name"}`)
	s.station.on(http.MethodDelete, "/api/patients/11/credit_cards/3", http.StatusNoContent, ``)

	card, err := s.service.Get(context.Background(), 11, 3)
	s.NoError(err)
	s.Equal(int64(3), card.ID)

	card, err = s.service.Update(context.Background(), 3, models.CreditCard{PatientID: 11, NameOnCard: "New Name"})
	s.NoError(err)
	s.Equal("New Name", card.NameOnCard)
	s.Equal(float64(3), s.station.recorded()[1].Body["id"])

	s.NoError(s.service.Delete(context.Background(), 11, 3))
}
