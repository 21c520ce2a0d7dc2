package service

import "fmt"

// Station resource paths.
const (
	careRequestsPath = "/api/care_requests"
	marketsPath      = "/api/markets"
	shiftTeamsPath   = "/api/shift_teams"
)

func careRequestPath(id int64) string {
	return fmt.Sprintf("%s/%d", careRequestsPath, id)
}

func careRequestResourcePath(careRequestID int64, resource string) string {
	return fmt.Sprintf("%s/%d/%s", careRequestsPath, careRequestID, resource)
}

func patientCreditCardsPath(patientID int64) string {
	return fmt.Sprintf("/api/patients/%d/credit_cards", patientID)
}
