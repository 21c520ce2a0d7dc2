//go:build smoke
// +build smoke

package smoke_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/stationhealth/onboarding-api/conf"
	customErrors "github.com/stationhealth/onboarding-api/onboarding/errors"
	"github.com/stationhealth/onboarding-api/onboarding/client"
	"github.com/stationhealth/onboarding-api/onboarding/models"
)

// SmokeTestSuite runs against a deployed onboarding API and CareManager.
type SmokeTestSuite struct {
	suite.Suite
	sdk       *client.Client
	patientID int64
}

func (s *SmokeTestSuite) SetupSuite() {
	onboardingURL := conf.GetEnv("ONBOARDING_API_URL")
	careManagerURL := conf.GetEnv("CAREMANAGER_API_URL")
	if onboardingURL == "" || careManagerURL == "" {
		s.T().Skip("ONBOARDING_API_URL and CAREMANAGER_API_URL must be set")
	}

	s.sdk = client.New(client.Config{
		OnboardingURL:  onboardingURL,
		CareManagerURL: careManagerURL,
		Token:          conf.GetEnv("SMOKE_BEARER_TOKEN"),
		Timeout:        30 * time.Second,
	})
	s.patientID = int64(conf.GetEnvInt("SMOKE_PATIENT_ID", 0))
}

func TestSmokeTestSuite(t *testing.T) {
	suite.Run(t, new(SmokeTestSuite))
}

func (s *SmokeTestSuite) TestHealthCheck() {
	body, err := s.sdk.HealthCheck(context.Background())
	s.Require().NoError(err)
	s.Contains(body, `"status":"ok"`)
}

func (s *SmokeTestSuite) TestMarkets() {
	markets, err := s.sdk.Markets(context.Background())
	s.Require().NoError(err)
	s.NotEmpty(markets)
}

func (s *SmokeTestSuite) TestCreditCardLifecycle() {
	if s.patientID == 0 {
		s.T().Skip("SMOKE_PATIENT_ID is not set")
	}
	ctx := context.Background()
	query := models.CreditCardQuery{PatientID: s.patientID}

	created, err := s.sdk.CreateCreditCard(ctx, models.CreditCard{
		PatientID:  s.patientID,
		Expiration: time.Now().AddDate(2, 0, 0).Format("2006-01"),
		NameOnCard: "Smoke Test",
		Token:      conf.FromEnv("SMOKE_CARD_TOKEN", "tok_visa"),
	})
	s.Require().NoError(err)
	s.NotZero(created.ID)
	s.Empty(created.Token)

	s.Require().NoError(s.sdk.InvalidateCreditCards(ctx))
	cards, err := s.sdk.CreditCards(ctx, query)
	s.Require().NoError(err)
	s.True(containsCard(cards, created.ID))

	s.Require().NoError(s.sdk.DeleteCreditCard(ctx, s.patientID, created.ID))
	s.Require().NoError(s.sdk.InvalidateCreditCards(ctx))
	cards, err = s.sdk.CreditCards(ctx, query)
	s.Require().NoError(err)
	s.False(containsCard(cards, created.ID))
}

func (s *SmokeTestSuite) TestCreditCardValidation() {
	_, err := s.sdk.CreateCreditCard(context.Background(), models.CreditCard{})
	s.Equal(http.StatusBadRequest, customErrors.StatusCode(err))
}

func (s *SmokeTestSuite) TestSearchEpisodes() {
	now := time.Now()

	episodes, err := s.sdk.SearchEpisodes(context.Background(), client.EpisodeSearch{PatientSearch: "CareManager"})
	s.Require().NoError(err)
	rows := client.FormatEpisodeRows(episodes, now)
	require.NotEmpty(s.T(), rows)
	assert.NotEqual(s.T(), client.NoEpisodesFound, rows[0])

	episodes, err = s.sdk.SearchEpisodes(context.Background(), client.EpisodeSearch{PatientSearch: "DOES NOT EXIST"})
	s.Require().NoError(err)
	s.Equal([]string{client.NoEpisodesFound}, client.FormatEpisodeRows(episodes, now))
}

func containsCard(cards []models.CreditCard, id int64) bool {
	for _, c := range cards {
		if c.ID == id {
			return true
		}
	}
	return false
}
