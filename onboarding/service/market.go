package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/stationhealth/onboarding-api/onboarding/mapper"
	"github.com/stationhealth/onboarding-api/onboarding/models"
	"github.com/stationhealth/onboarding-api/onboarding/station"
)

var _ MarketService = &marketService{}

type MarketService interface {
	List(ctx context.Context) ([]models.Market, error)
	Get(ctx context.Context, id int64) (models.Market, error)
}

type marketService struct {
	station station.Requester
}

func NewMarketService(st station.Requester) MarketService {
	return &marketService{station: st}
}

func (s *marketService) List(ctx context.Context) ([]models.Market, error) {
	var markets []station.Market
	if err := s.station.Get(ctx, marketsPath, nil, &markets); err != nil {
		return nil, errors.Wrap(err, "failed to list markets")
	}
	return mapper.StationMarketsToMarkets(markets), nil
}

func (s *marketService) Get(ctx context.Context, id int64) (models.Market, error) {
	var m station.Market
	if err := s.station.Get(ctx, fmt.Sprintf("%s/%d", marketsPath, id), nil, &m); err != nil {
		return models.Market{}, errors.Wrapf(err, "failed to get market %d", id)
	}
	return mapper.StationMarketToMarket(m), nil
}
