package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/stationhealth/onboarding-api/middleware"
	"github.com/stationhealth/onboarding-api/onboarding/health"
	"github.com/stationhealth/onboarding-api/onboarding/logging"
	"github.com/stationhealth/onboarding-api/onboarding/monitoring"
	"github.com/stationhealth/onboarding-api/onboarding/service"
)

func NewAPIRouter(services *service.Services, checker health.HealthChecker) http.Handler {
	r := chi.NewRouter()
	m := monitoring.GetMonitor()
	h := &handlers{services: services, checker: checker}

	r.Use(
		middleware.NewTransactionID,
		middleware.BearerToken,
		logging.NewStructuredLogger(),
		render.SetContentType(render.ContentTypeJSON),
		ConnectionClose,
	)

	r.Post(m.WrapHandler("/care-requests", h.createCareRequest))
	r.Get(m.WrapHandler("/care-requests/{id}", h.getCareRequest))
	r.Put(m.WrapHandler("/care-requests/{id}", h.updateCareRequest))
	r.Patch(m.WrapHandler("/care-requests/{id}/status", h.updateCareRequestStatus))

	r.Get(m.WrapHandler("/credit-cards", h.listCreditCards))
	r.Get(m.WrapHandler("/credit-cards/{id}", h.getCreditCard))
	r.Post(m.WrapHandler("/credit-cards", h.createCreditCard))
	r.Put(m.WrapHandler("/credit-cards/{id}", h.updateCreditCard))
	r.Delete(m.WrapHandler("/credit-cards/{id}", h.deleteCreditCard))

	r.Post(m.WrapHandler("/risk-assessments", h.createRiskAssessment))
	r.Get(m.WrapHandler("/risk-assessments/{id}", h.getRiskAssessment))
	r.Patch(m.WrapHandler("/risk-assessments/{id}", h.updateRiskAssessment))
	r.Delete(m.WrapHandler("/risk-assessments/{id}", h.deleteRiskAssessment))

	r.Post(m.WrapHandler("/mpoa-consents", h.createMpoaConsent))
	r.Get(m.WrapHandler("/mpoa-consents/{careRequestId}", h.getMpoaConsent))
	r.Patch(m.WrapHandler("/mpoa-consents/{careRequestId}/{id}", h.updateMpoaConsent))

	r.Get(m.WrapHandler("/secondary-screenings", h.listSecondaryScreenings))
	r.Post(m.WrapHandler("/secondary-screenings", h.createSecondaryScreening))
	r.Patch(m.WrapHandler("/secondary-screenings/{id}", h.updateSecondaryScreening))
	r.Delete(m.WrapHandler("/secondary-screenings/{id}", h.deleteSecondaryScreening))

	r.Get(m.WrapHandler("/shift-teams/fetch", h.fetchShiftTeam))
	r.Get(m.WrapHandler("/shift-teams/search", h.searchShiftTeams))

	r.Get(m.WrapHandler("/markets", h.listMarkets))
	r.Get(m.WrapHandler("/markets/{id}", h.getMarket))

	r.Get(m.WrapHandler("/client-config/log-dna", h.getLogDNAConfig))
	r.Get(m.WrapHandler("/health-check", h.healthCheck))
	r.Get(m.WrapHandler("/_version", getVersion))

	return r
}

func ConnectionClose(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Connection", "close")
		next.ServeHTTP(w, r)
	})
}
