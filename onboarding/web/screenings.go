package web

import (
	"net/http"

	"github.com/stationhealth/onboarding-api/onboarding/models"
)

func (h *handlers) createRiskAssessment(w http.ResponseWriter, r *http.Request) {
	var body models.RiskAssessment
	if err := decodeAndValidate(r, &body); err != nil {
		writeError(w, r, err, body, upstreamMessage)
		return
	}

	ra, err := h.services.RiskAssessments.Create(r.Context(), body)
	if err != nil {
		writeError(w, r, err, body, upstreamMessage)
		return
	}
	writeData(w, r, http.StatusCreated, ra)
}

func (h *handlers) getRiskAssessment(w http.ResponseWriter, r *http.Request) {
	id, careRequestID, err := careRequestScopedIDs(r)
	if err != nil {
		writeError(w, r, err, nil, upstreamMessage)
		return
	}

	ra, err := h.services.RiskAssessments.Get(r.Context(), careRequestID, id)
	if err != nil {
		writeError(w, r, err, id, upstreamMessage)
		return
	}
	writeData(w, r, http.StatusOK, ra)
}

func (h *handlers) updateRiskAssessment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, nil, upstreamMessage)
		return
	}
	var body models.RiskAssessment
	if err := decodeAndValidate(r, &body); err != nil {
		writeError(w, r, err, body, upstreamMessage)
		return
	}

	ra, err := h.services.RiskAssessments.Update(r.Context(), id, body)
	if err != nil {
		writeError(w, r, err, body, upstreamMessage)
		return
	}
	writeData(w, r, http.StatusOK, ra)
}

func (h *handlers) deleteRiskAssessment(w http.ResponseWriter, r *http.Request) {
	id, careRequestID, err := careRequestScopedIDs(r)
	if err != nil {
		writeError(w, r, err, nil, upstreamMessage)
		return
	}

	if err := h.services.RiskAssessments.Delete(r.Context(), careRequestID, id); err != nil {
		writeError(w, r, err, id, upstreamMessage)
		return
	}
	writeData(w, r, http.StatusOK, nil)
}

func (h *handlers) createMpoaConsent(w http.ResponseWriter, r *http.Request) {
	var body models.MpoaConsent
	if err := decodeAndValidate(r, &body); err != nil {
		writeError(w, r, err, body, upstreamMessage)
		return
	}

	consent, err := h.services.MpoaConsents.Create(r.Context(), body)
	if err != nil {
		writeError(w, r, err, body, upstreamMessage)
		return
	}
	writeData(w, r, http.StatusCreated, consent)
}

// getMpoaConsent answers {"success": true, "data": null} when no consent exists.
func (h *handlers) getMpoaConsent(w http.ResponseWriter, r *http.Request) {
	careRequestID, err := pathID(r, "careRequestId")
	if err != nil {
		writeError(w, r, err, nil, upstreamMessage)
		return
	}

	consent, err := h.services.MpoaConsents.Get(r.Context(), careRequestID)
	if err != nil {
		writeError(w, r, err, careRequestID, upstreamMessage)
		return
	}
	if consent == nil {
		writeData(w, r, http.StatusOK, nil)
		return
	}
	writeData(w, r, http.StatusOK, consent)
}

func (h *handlers) updateMpoaConsent(w http.ResponseWriter, r *http.Request) {
	careRequestID, err := pathID(r, "careRequestId")
	if err != nil {
		writeError(w, r, err, nil, upstreamMessage)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, nil, upstreamMessage)
		return
	}
	var body models.MpoaConsent
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err, nil, upstreamMessage)
		return
	}
	body.CareRequestID = careRequestID
	if err := validateStruct(&body); err != nil {
		writeError(w, r, err, body, upstreamMessage)
		return
	}

	consent, err := h.services.MpoaConsents.Update(r.Context(), careRequestID, id, body)
	if err != nil {
		writeError(w, r, err, body, upstreamMessage)
		return
	}
	writeData(w, r, http.StatusOK, consent)
}

func (h *handlers) listSecondaryScreenings(w http.ResponseWriter, r *http.Request) {
	careRequestID, err := queryID(r, "careRequestId", true)
	if err != nil {
		writeError(w, r, err, nil, upstreamMessage)
		return
	}

	screenings, err := h.services.SecondaryScreenings.List(r.Context(), careRequestID)
	if err != nil {
		writeError(w, r, err, careRequestID, upstreamMessage)
		return
	}
	writeData(w, r, http.StatusOK, screenings)
}

func (h *handlers) createSecondaryScreening(w http.ResponseWriter, r *http.Request) {
	var body models.SecondaryScreening
	if err := decodeAndValidate(r, &body); err != nil {
		writeError(w, r, err, body, upstreamMessage)
		return
	}

	screening, err := h.services.SecondaryScreenings.Create(r.Context(), body)
	if err != nil {
		writeError(w, r, err, body, upstreamMessage)
		return
	}
	writeData(w, r, http.StatusCreated, screening)
}

func (h *handlers) updateSecondaryScreening(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, nil, upstreamMessage)
		return
	}
	var body models.SecondaryScreening
	if err := decodeAndValidate(r, &body); err != nil {
		writeError(w, r, err, body, upstreamMessage)
		return
	}

	screening, err := h.services.SecondaryScreenings.Update(r.Context(), id, body)
	if err != nil {
		writeError(w, r, err, body, upstreamMessage)
		return
	}
	writeData(w, r, http.StatusOK, screening)
}

func (h *handlers) deleteSecondaryScreening(w http.ResponseWriter, r *http.Request) {
	id, careRequestID, err := careRequestScopedIDs(r)
	if err != nil {
		writeError(w, r, err, nil, upstreamMessage)
		return
	}

	if err := h.services.SecondaryScreenings.Delete(r.Context(), careRequestID, id); err != nil {
		writeError(w, r, err, id, upstreamMessage)
		return
	}
	writeData(w, r, http.StatusOK, nil)
}

func careRequestScopedIDs(r *http.Request) (id, careRequestID int64, err error) {
	if id, err = pathID(r, "id"); err != nil {
		return 0, 0, err
	}
	if careRequestID, err = queryID(r, "careRequestId", true); err != nil {
		return 0, 0, err
	}
	return id, careRequestID, nil
}
