package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/stationhealth/onboarding-api/onboarding/models"
	"github.com/stationhealth/onboarding-api/onboarding/querycache"
	"github.com/stationhealth/onboarding-api/onboarding/station"
)

const (
	MarketsEndpoint      = "markets"
	ServiceAreasEndpoint = "serviceAreas"
	CreditCardsEndpoint  = "creditCards"
	EpisodesEndpoint     = "episodes"
)

type ServiceAreaArgs struct {
	MarketID   int64  `json:"marketId"`
	ClientTime string `json:"clientTime"`
}

// serviceAreaKey leaves clientTime out so repeated checks for a market share
// one cache entry.
func serviceAreaKey(args ServiceAreaArgs) (string, error) {
	return querycache.JSONKey(struct {
		MarketID int64 `json:"marketId"`
	}{args.MarketID})
}

type ServiceArea struct {
	MarketID int64  `json:"marketId"`
	Open     bool   `json:"open"`
	OpenAt   string `json:"openAt,omitempty"`
	CloseAt  string `json:"closeAt,omitempty"`
}

type EpisodeSearch struct {
	PatientSearch string `json:"patientSearch"`
	Page          int    `json:"page,omitempty"`
}

func (c *Client) marketsEndpoint() querycache.Endpoint[struct{}, []models.Market] {
	return querycache.Endpoint[struct{}, []models.Market]{
		Name: MarketsEndpoint,
		Fetch: func(ctx context.Context, _ struct{}) ([]models.Market, error) {
			var markets []models.Market
			err := c.onboarding(ctx, http.MethodGet, "/markets", nil, &markets)
			return markets, err
		},
	}
}

func (c *Client) serviceAreasEndpoint() querycache.Endpoint[ServiceAreaArgs, ServiceArea] {
	return querycache.Endpoint[ServiceAreaArgs, ServiceArea]{
		Name: ServiceAreasEndpoint,
		Key:  serviceAreaKey,
		Fetch: func(ctx context.Context, args ServiceAreaArgs) (ServiceArea, error) {
			if c.station == nil {
				return ServiceArea{}, errors.New("service areas need a Station client")
			}
			var status station.ServiceAreaStatus
			path := fmt.Sprintf("/api/markets/%d/service_area_status", args.MarketID)
			if err := c.station.Get(ctx, path, map[string]interface{}{"client_time": args.ClientTime}, &status); err != nil {
				return ServiceArea{}, err
			}
			return ServiceArea{
				MarketID: args.MarketID,
				Open:     status.Open,
				OpenAt:   status.OpenAt,
				CloseAt:  status.CloseAt,
			}, nil
		},
	}
}

func (c *Client) creditCardsEndpoint() querycache.Endpoint[models.CreditCardQuery, []models.CreditCard] {
	return querycache.Endpoint[models.CreditCardQuery, []models.CreditCard]{
		Name: CreditCardsEndpoint,
		Fetch: func(ctx context.Context, q models.CreditCardQuery) ([]models.CreditCard, error) {
			path := "/credit-cards?" + station.BuildURLQuery(map[string]interface{}{
				"patientId":     q.PatientID,
				"careRequestId": q.CareRequestID,
			})
			var cards []models.CreditCard
			err := c.onboarding(ctx, http.MethodGet, path, nil, &cards)
			return cards, err
		},
	}
}

func (c *Client) episodesEndpoint() querycache.Endpoint[EpisodeSearch, []Episode] {
	return querycache.Endpoint[EpisodeSearch, []Episode]{
		Name: EpisodesEndpoint,
		Fetch: func(ctx context.Context, q EpisodeSearch) ([]Episode, error) {
			url := c.careManagerURL + "/v1/episodes?" + station.BuildURLQuery(map[string]interface{}{
				"patient_search": q.PatientSearch,
				"page":           q.Page,
			})
			data, err := c.do(ctx, http.MethodGet, url, nil)
			if err != nil {
				return nil, err
			}
			return decodeEpisodes(data)
		},
	}
}

func (c *Client) Markets(ctx context.Context) ([]models.Market, error) {
	return querycache.Query(ctx, c.cache, c.marketsEndpoint(), struct{}{})
}

func (c *Client) ServiceArea(ctx context.Context, args ServiceAreaArgs) (ServiceArea, error) {
	return querycache.Query(ctx, c.cache, c.serviceAreasEndpoint(), args)
}

func (c *Client) CreditCards(ctx context.Context, q models.CreditCardQuery) ([]models.CreditCard, error) {
	return querycache.Query(ctx, c.cache, c.creditCardsEndpoint(), q)
}

func (c *Client) SearchEpisodes(ctx context.Context, q EpisodeSearch) ([]Episode, error) {
	return querycache.Query(ctx, c.cache, c.episodesEndpoint(), q)
}

// CreateCreditCard is a mutation; cached credit card lists stay as they are
// until InvalidateCreditCards is called.
func (c *Client) CreateCreditCard(ctx context.Context, cc models.CreditCard) (models.CreditCard, error) {
	var created models.CreditCard
	err := c.onboarding(ctx, http.MethodPost, "/credit-cards", cc, &created)
	return created, err
}

func (c *Client) DeleteCreditCard(ctx context.Context, patientID, id int64) error {
	path := fmt.Sprintf("/credit-cards/%d?patientId=%d", id, patientID)
	return c.onboarding(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) InvalidateCreditCards(ctx context.Context) error {
	return c.cache.Invalidate(ctx, CreditCardsEndpoint)
}

// HealthCheck returns the onboarding API's health report. A 503 is reported
// as an error carrying the report body.
func (c *Client) HealthCheck(ctx context.Context) (string, error) {
	data, err := c.do(ctx, http.MethodGet, c.onboardingURL+"/health-check", nil)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
