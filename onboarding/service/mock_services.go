package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stationhealth/onboarding-api/onboarding/models"
)

type MockCreditCardService struct {
	mock.Mock
}

func (m *MockCreditCardService) List(ctx context.Context, q models.CreditCardQuery) ([]models.CreditCard, error) {
	args := m.Called(ctx, q)
	cards, _ := args.Get(0).([]models.CreditCard)
	return cards, args.Error(1)
}

func (m *MockCreditCardService) Get(ctx context.Context, patientID, id int64) (models.CreditCard, error) {
	args := m.Called(ctx, patientID, id)
	return args.Get(0).(models.CreditCard), args.Error(1)
}

func (m *MockCreditCardService) Create(ctx context.Context, cc models.CreditCard) (models.CreditCard, error) {
	args := m.Called(ctx, cc)
	return args.Get(0).(models.CreditCard), args.Error(1)
}

func (m *MockCreditCardService) Update(ctx context.Context, id int64, cc models.CreditCard) (models.CreditCard, error) {
	args := m.Called(ctx, id, cc)
	return args.Get(0).(models.CreditCard), args.Error(1)
}

func (m *MockCreditCardService) Delete(ctx context.Context, patientID, id int64) error {
	return m.Called(ctx, patientID, id).Error(0)
}

type MockMpoaConsentService struct {
	mock.Mock
}

func (m *MockMpoaConsentService) Create(ctx context.Context, c models.MpoaConsent) (models.MpoaConsent, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(models.MpoaConsent), args.Error(1)
}

func (m *MockMpoaConsentService) Get(ctx context.Context, careRequestID int64) (*models.MpoaConsent, error) {
	args := m.Called(ctx, careRequestID)
	consent, _ := args.Get(0).(*models.MpoaConsent)
	return consent, args.Error(1)
}

func (m *MockMpoaConsentService) Update(ctx context.Context, careRequestID, id int64, c models.MpoaConsent) (models.MpoaConsent, error) {
	args := m.Called(ctx, careRequestID, id, c)
	return args.Get(0).(models.MpoaConsent), args.Error(1)
}
