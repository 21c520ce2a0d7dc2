package web

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/stationhealth/onboarding-api/onboarding/constants"
	"github.com/stationhealth/onboarding-api/onboarding/health"
	"github.com/stationhealth/onboarding-api/onboarding/models"
	"github.com/stationhealth/onboarding-api/onboarding/service"
)

type handlers struct {
	services *service.Services
	checker  health.HealthChecker
}

func (h *handlers) createCareRequest(w http.ResponseWriter, r *http.Request) {
	var body models.CareRequest
	if err := decodeAndValidate(r, &body); err != nil {
		writeError(w, r, err, body, upstreamMessage)
		return
	}

	cr, err := h.services.CareRequests.Create(r.Context(), body)
	if err != nil {
		writeError(w, r, err, body, upstreamMessage)
		return
	}
	writeData(w, r, http.StatusCreated, cr)
}

func (h *handlers) getCareRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, nil, upstreamMessage)
		return
	}

	cr, err := h.services.CareRequests.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, id, upstreamMessage)
		return
	}
	writeData(w, r, http.StatusOK, cr)
}

func (h *handlers) updateCareRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, nil, upstreamMessage)
		return
	}
	var body models.CareRequest
	if err := decodeAndValidate(r, &body); err != nil {
		writeError(w, r, err, body, upstreamMessage)
		return
	}

	cr, err := h.services.CareRequests.Update(r.Context(), id, body)
	if err != nil {
		writeError(w, r, err, body, upstreamMessage)
		return
	}
	writeData(w, r, http.StatusOK, cr)
}

func (h *handlers) updateCareRequestStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, nil, upstreamMessage)
		return
	}
	var body models.CareRequestStatus
	if err := decodeAndValidate(r, &body); err != nil {
		writeError(w, r, err, body, upstreamMessage)
		return
	}

	status, err := h.services.CareRequests.UpdateStatus(r.Context(), id, body)
	if err != nil {
		writeError(w, r, err, body, upstreamMessage)
		return
	}
	writeData(w, r, http.StatusOK, status)
}

func (h *handlers) getLogDNAConfig(w http.ResponseWriter, r *http.Request) {
	writeData(w, r, http.StatusOK, h.services.ClientConfig.LogDNA())
}

func (h *handlers) healthCheck(w http.ResponseWriter, r *http.Request) {
	report, ok := h.checker.Check(r.Context())
	if ok {
		render.Status(r, http.StatusOK)
	} else {
		render.Status(r, http.StatusServiceUnavailable)
	}
	render.JSON(w, r, report)
}

func getVersion(w http.ResponseWriter, r *http.Request) {
	respMap := make(map[string]string)
	respMap["version"] = constants.Version
	render.JSON(w, r, respMap)
}
