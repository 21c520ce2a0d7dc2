package mapper

import (
	"github.com/stationhealth/onboarding-api/onboarding/models"
	"github.com/stationhealth/onboarding-api/onboarding/station"
)

func CareRequestToStationCareRequest(cr models.CareRequest) station.CareRequest {
	return station.CareRequest{
		ID:                   cr.ID,
		RequesterID:          cr.RequesterID,
		MarketID:             cr.MarketID,
		ServiceLineID:        cr.ServiceLineID,
		RequestStatus:        cr.RequestStatus,
		ChiefComplaint:       cr.ChiefComplaint,
		PlaceOfService:       cr.PlaceOfService,
		SkipFeasibilityCheck: cr.SkipFeasibilityCheck,
		Patient:              patientToStationPatient(cr.Patient),
		Address:              AddressToStationAddress(cr.Address),
		Requester:            requesterToStationRequester(cr.Requester),
	}
}

func StationCareRequestToCareRequest(cr station.CareRequest) models.CareRequest {
	return models.CareRequest{
		ID:                   cr.ID,
		RequesterID:          cr.RequesterID,
		MarketID:             cr.MarketID,
		ServiceLineID:        cr.ServiceLineID,
		RequestStatus:        cr.RequestStatus,
		ChiefComplaint:       cr.ChiefComplaint,
		PlaceOfService:       cr.PlaceOfService,
		SkipFeasibilityCheck: cr.SkipFeasibilityCheck,
		Patient:              stationPatientToPatient(cr.Patient),
		Address:              StationAddressToAddress(cr.Address),
		Requester:            stationRequesterToRequester(cr.Requester),
	}
}

func CareRequestStatusToStationStatus(s models.CareRequestStatus) station.CareRequestStatus {
	return station.CareRequestStatus{
		RequestStatus: s.Status,
		Comment:       s.Comment,
		ShiftTeamID:   s.ShiftTeamID,
	}
}

func StationStatusToCareRequestStatus(s station.CareRequestStatus) models.CareRequestStatus {
	return models.CareRequestStatus{
		Status:      s.RequestStatus,
		Comment:     s.Comment,
		ShiftTeamID: s.ShiftTeamID,
	}
}

func patientToStationPatient(p *models.Patient) *station.Patient {
	if p == nil {
		return nil
	}
	return &station.Patient{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		Sex:         p.Sex,
		Phone:       p.Phone,
		Email:       p.Email,
	}
}

func stationPatientToPatient(p *station.Patient) *models.Patient {
	if p == nil {
		return nil
	}
	return &models.Patient{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		Sex:         p.Sex,
		Phone:       p.Phone,
		Email:       p.Email,
	}
}

func AddressToStationAddress(a *models.Address) *station.Address {
	if a == nil {
		return nil
	}
	return &station.Address{
		StreetAddress1: a.StreetAddress1,
		StreetAddress2: a.StreetAddress2,
		City:           a.City,
		State:          a.State,
		Zipcode:        a.Zipcode,
		Latitude:       a.Latitude,
		Longitude:      a.Longitude,
	}
}

func StationAddressToAddress(a *station.Address) *models.Address {
	if a == nil {
		return nil
	}
	return &models.Address{
		StreetAddress1: a.StreetAddress1,
		StreetAddress2: a.StreetAddress2,
		City:           a.City,
		State:          a.State,
		Zipcode:        a.Zipcode,
		Latitude:       a.Latitude,
		Longitude:      a.Longitude,
	}
}

func requesterToStationRequester(r *models.Requester) *station.CareRequester {
	if r == nil {
		return nil
	}
	return &station.CareRequester{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Phone:             r.Phone,
		RelationToPatient: r.RelationToPatient,
		OrganizationName:  r.OrganizationName,
	}
}

func stationRequesterToRequester(r *station.CareRequester) *models.Requester {
	if r == nil {
		return nil
	}
	return &models.Requester{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Phone:             r.Phone,
		RelationToPatient: r.RelationToPatient,
		OrganizationName:  r.OrganizationName,
	}
}
