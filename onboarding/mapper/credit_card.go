package mapper

import (
	"github.com/stationhealth/onboarding-api/onboarding/models"
	"github.com/stationhealth/onboarding-api/onboarding/station"
)

func CreditCardToStationCreditCard(cc models.CreditCard) station.CreditCard {
	return station.CreditCard{
		ID:             cc.ID,
		PatientID:      cc.PatientID,
		CareRequestID:  cc.CareRequestID,
		LastFour:       cc.LastFour,
		CardType:       cc.CardType,
		Expiration:     cc.Expiration,
		NameOnCard:     cc.NameOnCard,
		BillingAddress: AddressToStationAddress(cc.BillingAddress),
		Token:          cc.Token,
	}
}

// StationCreditCardToCreditCard never copies the token back out.
func StationCreditCardToCreditCard(cc station.CreditCard) models.CreditCard {
	return models.CreditCard{
		ID:             cc.ID,
		PatientID:      cc.PatientID,
		CareRequestID:  cc.CareRequestID,
		LastFour:       cc.LastFour,
		CardType:       cc.CardType,
		Expiration:     cc.Expiration,
		NameOnCard:     cc.NameOnCard,
		BillingAddress: StationAddressToAddress(cc.BillingAddress),
	}
}

func StationCreditCardsToCreditCards(cards []station.CreditCard) []models.CreditCard {
	out := make([]models.CreditCard, 0, len(cards))
	for _, cc := range cards {
		out = append(out, StationCreditCardToCreditCard(cc))
	}
	return out
}

func CreditCardQueryToStationParams(q models.CreditCardQuery) map[string]interface{} {
	return map[string]interface{}{
		"care_request_id": q.CareRequestID,
	}
}
