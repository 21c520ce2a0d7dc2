package models

// Request and response bodies of the onboarding API. JSON names are camelCase;
// validate tags are checked at the request boundary by onboarding/web.

type Patient struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"`
	Sex         string `json:"sex" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
}

type Address struct {
	StreetAddress1 string  `json:"streetAddress1" validate:"required"`
	StreetAddress2 string  `json:"streetAddress2,omitempty"`
	City           string  `json:"city" validate:"required"`
	State          string  `json:"state" validate:"required"`
	Zipcode        string  `json:"zipcode" validate:"required"`
	Latitude       float64 `json:"latitude,omitempty"`
	Longitude      float64 `json:"longitude,omitempty"`
}

type Requester struct {
	FirstName         string `json:"firstName" validate:"required"`
	LastName          string `json:"lastName" validate:"required"`
	Phone             string `json:"phone" validate:"required"`
	RelationToPatient string `json:"relationToPatient" validate:"required"`
	OrganizationName  string `json:"organizationName,omitempty"`
}

type CareRequest struct {
	ID                   int64      `json:"id,omitempty"`
	RequesterID          int64      `json:"requesterId,omitempty"`
	MarketID             int64      `json:"marketId" validate:"required"`
	ServiceLineID        int64      `json:"serviceLineId" validate:"required"`
	RequestStatus        string     `json:"requestStatus,omitempty"`
	ChiefComplaint       string     `json:"chiefComplaint" validate:"required"`
	PlaceOfService       string     `json:"placeOfService" validate:"required"`
	SkipFeasibilityCheck bool       `json:"skipFeasibilityCheck"`
	Patient              *Patient   `json:"patient,omitempty" validate:"required"`
	Address              *Address   `json:"address,omitempty" validate:"required"`
	Requester            *Requester `json:"requester,omitempty" validate:"required"`
}

type CareRequestStatus struct {
	Status      string `json:"status" validate:"required"`
	Comment     string `json:"comment,omitempty"`
	ShiftTeamID int64  `json:"shiftTeamId,omitempty"`
}

type CreditCard struct {
	ID             int64    `json:"id,omitempty"`
	PatientID      int64    `json:"patientId" validate:"required"`
	CareRequestID  int64    `json:"careRequestId,omitempty"`
	LastFour       string   `json:"lastFour,omitempty"`
	CardType       string   `json:"cardType,omitempty"`
	Expiration     string   `json:"expiration" validate:"required"`
	NameOnCard     string   `json:"nameOnCard" validate:"required"`
	BillingAddress *Address `json:"billingAddress,omitempty"`
	// Token is the card processor's token. It is accepted on writes and never
	// returned.
	Token string `json:"token,omitempty"`
}

type CreditCardQuery struct {
	PatientID     int64 `json:"patientId" validate:"required"`
	CareRequestID int64 `json:"careRequestId,omitempty"`
}

type Complaint struct {
	Symptom          string `json:"symptom" validate:"required"`
	SelectedSymptoms string `json:"selectedSymptoms"`
}

type RiskQuestion struct {
	Question         string  `json:"question" validate:"required"`
	Answer           string  `json:"answer"`
	WeightYes        float64 `json:"weightYes"`
	WeightNo         float64 `json:"weightNo"`
	AllowNA          bool    `json:"allowNa"`
	HasNotApplicable bool    `json:"hasNotApplicable"`
}

type RiskResponses struct {
	Questions []RiskQuestion `json:"questions" validate:"dive"`
}

type RiskAssessment struct {
	ID             int64         `json:"id,omitempty"`
	CareRequestID  int64         `json:"careRequestId" validate:"required"`
	ProtocolID     int64         `json:"protocolId" validate:"required"`
	ProtocolName   string        `json:"protocolName" validate:"required"`
	Score          float64       `json:"score"`
	WorstCaseScore float64       `json:"worstCaseScore"`
	OverrideReason string        `json:"overrideReason,omitempty"`
	Complaint      Complaint     `json:"complaint"`
	Responses      RiskResponses `json:"responses"`
}

type MpoaConsent struct {
	ID                  int64  `json:"id,omitempty"`
	CareRequestID       int64  `json:"careRequestId" validate:"required"`
	Consented           bool   `json:"consented"`
	PowerOfAttorneyID   int64  `json:"powerOfAttorneyId,omitempty"`
	TimeOfConsentChange string `json:"timeOfConsentChange" validate:"required"`
	UserID              int64  `json:"userId,omitempty"`
}

type SecondaryScreening struct {
	ID                       int64  `json:"id,omitempty"`
	CareRequestID            int64  `json:"careRequestId" validate:"required"`
	ApprovalStatus           string `json:"approvalStatus" validate:"required"`
	ProviderID               int64  `json:"providerId" validate:"required"`
	MustBeSeenToday          bool   `json:"mustBeSeenToday"`
	Note                     string `json:"note,omitempty"`
	TelepresentationEligible bool   `json:"telepresentationEligible"`
}

type ShiftTeamMember struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	ProviderType string `json:"providerType"`
}

type ShiftTeam struct {
	ID        int64             `json:"id"`
	MarketID  int64             `json:"marketId"`
	CarID     int64             `json:"carId"`
	CarName   string            `json:"carName"`
	StartTime string            `json:"startTime"`
	EndTime   string            `json:"endTime"`
	Members   []ShiftTeamMember `json:"members"`
}

type AssignableShiftTeam struct {
	ShiftTeam
	PresentationModality string   `json:"presentationModality"`
	AssignmentType       string   `json:"assignmentType"`
	ServiceName          string   `json:"serviceName"`
	Licenses             []string `json:"licenses"`
	Insurances           []string `json:"insurances"`
	SkillIDs             []int64  `json:"skillIds"`
}

type ShiftTeamSearch struct {
	CareRequestID int64  `json:"careRequestId" validate:"required"`
	MarketID      int64  `json:"marketId,omitempty"`
	Start         string `json:"start,omitempty"`
	End           string `json:"end,omitempty"`
}

type MarketSchedule struct {
	OpenAt       string   `json:"openAt"`
	CloseAt      string   `json:"closeAt"`
	OpenDuration int      `json:"openDuration"`
	Days         []string `json:"days"`
}

type Market struct {
	ID                      int64            `json:"id"`
	Name                    string           `json:"name"`
	ShortName               string           `json:"shortName"`
	StateLocale             string           `json:"stateLocale"`
	TZName                  string           `json:"tzName"`
	AutoAssignable          bool             `json:"autoAssignable"`
	AutoAssignTypeOrDefault string           `json:"autoAssignTypeOrDefault"`
	Schedules               []MarketSchedule `json:"schedules"`
}

type LogDNAConfig struct {
	ClientKey   string `json:"clientKey"`
	App         string `json:"app"`
	Environment string `json:"env"`
}
