package client

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoEpisodesFound is shown when a search returns nothing.
const NoEpisodesFound = "No episodes found"

const (
	dobLayout     = "2006-01-02"
	displayLayout = "01/02/2006"
)

type EpisodePatient struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DateOfBirth    string `json:"date_of_birth"`
	Sex            string `json:"sex"`
	AddressStreet  string `json:"address_street"`
	AddressStreet2 string `json:"address_street_2"`
	AddressCity    string `json:"address_city"`
	AddressState   string `json:"address_state"`
	AddressZipcode string `json:"address_zipcode"`
}

type Episode struct {
	ID          int64          `json:"id"`
	CarePhase   string         `json:"care_phase"`
	ServiceLine string         `json:"service_line"`
	Market      string         `json:"market"`
	Patient     EpisodePatient `json:"patient"`
}

// PatientDetail is the patient cell of an episode row.
type PatientDetail struct {
	Name    string
	DOB     string
	AgeSex  string
	Address string
}

func (d PatientDetail) String() string {
	return strings.Join([]string{d.Name, d.DOB, d.AgeSex, d.Address}, "\n")
}

// decodeEpisodes accepts both {"episodes": [...]} and a bare list.
func decodeEpisodes(data []byte) ([]Episode, error) {
	var wrapped struct {
		Episodes []Episode `json:"episodes"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		if wrapped.Episodes == nil {
			return []Episode{}, nil
		}
		return wrapped.Episodes, nil
	}

	var list []Episode
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, errors.Wrap(err, "failed to decode episodes")
	}
	return list, nil
}

// titleCase builds a Caser per call; Casers are not safe for concurrent use.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// FormatPatientDetail renders "Jane Doe", "05/01/1990", "34yo F" and the
// one-line address. Age is computed at now.
func FormatPatientDetail(p EpisodePatient, now time.Time) PatientDetail {
	detail := PatientDetail{
		Name:    titleCase(strings.TrimSpace(p.FirstName + " " + p.LastName)),
		Address: formatAddress(p),
	}

	sex := ""
	if s := strings.TrimSpace(p.Sex); s != "" {
		sex = strings.ToUpper(s[:1])
	}

	dob, err := time.Parse(dobLayout, p.DateOfBirth)
	if err != nil {
		detail.DOB = p.DateOfBirth
		detail.AgeSex = sex
		return detail
	}

	detail.DOB = dob.Format(displayLayout)
	detail.AgeSex = strings.TrimSpace(fmt.Sprintf("%dyo %s", age(dob, now), sex))
	return detail
}

func age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

func formatAddress(p EpisodePatient) string {
	var street []string
	for _, s := range []string{p.AddressStreet, p.AddressStreet2} {
		if s = strings.TrimSpace(s); s != "" {
			street = append(street, titleCase(s))
		}
	}

	parts := street
	if city := strings.TrimSpace(p.AddressCity); city != "" {
		parts = append(parts, titleCase(city))
	}

	stateZip := strings.TrimSpace(strings.ToUpper(p.AddressState) + " " + p.AddressZipcode)
	if stateZip != "" {
		parts = append(parts, stateZip)
	}
	return strings.Join(parts, ", ")
}

// FormatEpisodeRows renders one PatientDetail per episode, or the empty state.
func FormatEpisodeRows(episodes []Episode, now time.Time) []string {
	if len(episodes) == 0 {
		return []string{NoEpisodesFound}
	}
	rows := make([]string, 0, len(episodes))
	for _, e := range episodes {
		rows = append(rows, FormatPatientDetail(e.Patient, now).String())
	}
	return rows
}
