package mapper

import (
	"github.com/stationhealth/onboarding-api/onboarding/models"
	"github.com/stationhealth/onboarding-api/onboarding/station"
)

// RiskAssessmentToStationRiskAssessment flattens the complaint and renames
// each question's weights.
func RiskAssessmentToStationRiskAssessment(ra models.RiskAssessment) station.RiskAssessment {
	var questions []station.RiskQuestion
	if ra.Responses.Questions != nil {
		questions = make([]station.RiskQuestion, 0, len(ra.Responses.Questions))
		for _, q := range ra.Responses.Questions {
			questions = append(questions, station.RiskQuestion{
				Question:         q.Question,
				Answer:           q.Answer,
				WeightYes:        q.WeightYes,
				WeightNo:         q.WeightNo,
				AllowNA:          q.AllowNA,
				HasNotApplicable: q.HasNotApplicable,
			})
		}
	}

	return station.RiskAssessment{
		ID:                        ra.ID,
		CareRequestID:             ra.CareRequestID,
		ProtocolID:                ra.ProtocolID,
		ProtocolName:              ra.ProtocolName,
		Score:                     ra.Score,
		WorstCaseScore:            ra.WorstCaseScore,
		OverrideReason:            ra.OverrideReason,
		ComplaintSymptom:          ra.Complaint.Symptom,
		ComplaintSelectedSymptoms: ra.Complaint.SelectedSymptoms,
		Responses:                 station.RiskResponses{Questions: questions},
	}
}

func StationRiskAssessmentToRiskAssessment(ra station.RiskAssessment) models.RiskAssessment {
	var questions []models.RiskQuestion
	if ra.Responses.Questions != nil {
		questions = make([]models.RiskQuestion, 0, len(ra.Responses.Questions))
		for _, q := range ra.Responses.Questions {
			questions = append(questions, models.RiskQuestion{
				Question:         q.Question,
				Answer:           q.Answer,
				WeightYes:        q.WeightYes,
				WeightNo:         q.WeightNo,
				AllowNA:          q.AllowNA,
				HasNotApplicable: q.HasNotApplicable,
			})
		}
	}

	return models.RiskAssessment{
		ID:             ra.ID,
		CareRequestID:  ra.CareRequestID,
		ProtocolID:     ra.ProtocolID,
		ProtocolName:   ra.ProtocolName,
		Score:          ra.Score,
		WorstCaseScore: ra.WorstCaseScore,
		OverrideReason: ra.OverrideReason,
		Complaint: models.Complaint{
			Symptom:          ra.ComplaintSymptom,
			SelectedSymptoms: ra.ComplaintSelectedSymptoms,
		},
		Responses: models.RiskResponses{Questions: questions},
	}
}
