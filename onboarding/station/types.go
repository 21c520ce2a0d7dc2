package station

// Shapes exchanged with Station. Field names follow Station's snake_case
// JSON; the onboarding/models package holds the camelCase counterparts.

type Patient struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"dob"`
	Sex         string `json:"gender"`
	Phone       string `json:"mobile_number"`
	Email       string `json:"email,omitempty"`
}

type Address struct {
	StreetAddress1 string  `json:"street_address_1"`
	StreetAddress2 string  `json:"street_address_2,omitempty"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	Zipcode        string  `json:"zipcode"`
	Latitude       float64 `json:"latitude,omitempty"`
	Longitude      float64 `json:"longitude,omitempty"`
}

type CareRequester struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Phone             string `json:"phone"`
	RelationToPatient string `json:"relation_to_patient"`
	OrganizationName  string `json:"organization_name,omitempty"`
}

type CareRequest struct {
	ID                   int64          `json:"id,omitempty"`
	RequesterID          int64          `json:"requester_id,omitempty"`
	MarketID             int64          `json:"market_id"`
	ServiceLineID        int64          `json:"service_line_id"`
	RequestStatus        string         `json:"request_status,omitempty"`
	ChiefComplaint       string         `json:"chief_complaint"`
	PlaceOfService       string         `json:"place_of_service"`
	SkipFeasibilityCheck bool           `json:"skip_feasibility_check"`
	Patient              *Patient       `json:"patient,omitempty"`
	Address              *Address       `json:"address,omitempty"`
	Requester            *CareRequester `json:"requester,omitempty"`
}

type CareRequestStatus struct {
	RequestStatus string `json:"request_status"`
	Comment       string `json:"comment,omitempty"`
	ShiftTeamID   int64  `json:"shift_team_id,omitempty"`
}

type CreditCard struct {
	ID             int64    `json:"id,omitempty"`
	PatientID      int64    `json:"patient_id"`
	CareRequestID  int64    `json:"care_request_id,omitempty"`
	LastFour       string   `json:"last_four,omitempty"`
	CardType       string   `json:"card_type,omitempty"`
	Expiration     string   `json:"expiration"`
	NameOnCard     string   `json:"name_on_card"`
	BillingAddress *Address `json:"billing_address,omitempty"`
	Token          string   `json:"token,omitempty"`
}

// AttachCreditCard is the body for linking an existing card to a care request.
type AttachCreditCard struct {
	CreditCardID int64 `json:"credit_card_id"`
}

type RiskQuestion struct {
	Question         string  `json:"question"`
	Answer           string  `json:"answer"`
	WeightYes        float64 `json:"weight_yes"`
	WeightNo         float64 `json:"weight_no"`
	AllowNA          bool    `json:"allow_na"`
	HasNotApplicable bool    `json:"has_not_applicable"`
}

type RiskResponses struct {
	Questions []RiskQuestion `json:"questions"`
}

type RiskAssessment struct {
	ID                        int64         `json:"id,omitempty"`
	CareRequestID             int64         `json:"care_request_id"`
	ProtocolID                int64         `json:"protocol_id"`
	ProtocolName              string        `json:"protocol_name"`
	Score                     float64       `json:"score"`
	WorstCaseScore            float64       `json:"worst_case_score"`
	OverrideReason            string        `json:"override_reason,omitempty"`
	ComplaintSymptom          string        `json:"complaint_symptom"`
	ComplaintSelectedSymptoms string        `json:"complaint_selected_symptoms"`
	Responses                 RiskResponses `json:"responses"`
}

type MpoaConsent struct {
	ID                  int64  `json:"id,omitempty"`
	CareRequestID       int64  `json:"care_request_id"`
	Consented           bool   `json:"consented"`
	PowerOfAttorneyID   int64  `json:"power_of_attorney_id,omitempty"`
	TimeOfConsentChange string `json:"time_of_consent_change"`
	UserID              int64  `json:"user_id,omitempty"`
}

type SecondaryScreening struct {
	ID                       int64  `json:"id,omitempty"`
	CareRequestID            int64  `json:"care_request_id"`
	ApprovalStatus           string `json:"approval_status"`
	ProviderID               int64  `json:"provider_id"`
	MustBeSeenToday          bool   `json:"must_be_seen_today"`
	Note                     string `json:"note,omitempty"`
	TelepresentationEligible bool   `json:"telepresentation_eligible"`
}

type ShiftTeamMember struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	ProviderType string `json:"provider_type"`
}

type ShiftTeam struct {
	ID        int64             `json:"id"`
	MarketID  int64             `json:"market_id"`
	CarID     int64             `json:"car_id"`
	CarName   string            `json:"car_name"`
	StartTime string            `json:"start_time"`
	EndTime   string            `json:"end_time"`
	Members   []ShiftTeamMember `json:"members"`
}

// AssignableShiftTeam carries eligibility as "tag:value" strings, e.g.
// "license:CO", "insurance:Cigna/Denver", "skill_id:52".
type AssignableShiftTeam struct {
	ShiftTeam
	Attributes []string `json:"attributes"`
}

type MarketSchedule struct {
	OpenAt       string   `json:"open_at"`
	CloseAt      string   `json:"close_at"`
	OpenDuration int      `json:"open_duration"`
	Days         []string `json:"days"`
}

type Market struct {
	ID                      int64            `json:"id"`
	Name                    string           `json:"name"`
	ShortName               string           `json:"short_name"`
	StateLocale             string           `json:"state_locale"`
	TZName                  string           `json:"tz_name"`
	AutoAssignable          bool             `json:"auto_assignable"`
	AutoAssignTypeOrDefault string           `json:"auto_assign_type_or_default"`
	Schedules               []MarketSchedule `json:"schedules"`
}

// ServiceAreaStatus answers whether a market is taking visits at a given client time.
type ServiceAreaStatus struct {
	MarketID int64  `json:"market_id"`
	Open     bool   `json:"open"`
	OpenAt   string `json:"open_at,omitempty"`
	CloseAt  string `json:"close_at,omitempty"`
}
