package web

import (
	"net/http"

	"github.com/stationhealth/onboarding-api/onboarding/models"
)

func (h *handlers) fetchShiftTeam(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r, "id", true)
	if err != nil {
		writeError(w, r, err, nil, upstreamMessage)
		return
	}

	team, err := h.services.ShiftTeams.Fetch(r.Context(), id)
	if err != nil {
		writeError(w, r, err, id, upstreamMessage)
		return
	}
	writeData(w, r, http.StatusOK, team)
}

func (h *handlers) searchShiftTeams(w http.ResponseWriter, r *http.Request) {
	var q models.ShiftTeamSearch
	var err error
	if q.CareRequestID, err = queryID(r, "careRequestId", true); err != nil {
		writeError(w, r, err, nil, upstreamMessage)
		return
	}
	if q.MarketID, err = queryID(r, "marketId", false); err != nil {
		writeError(w, r, err, nil, upstreamMessage)
		return
	}
	q.Start = r.URL.Query().Get("start")
	q.End = r.URL.Query().Get("end")

	teams, err := h.services.ShiftTeams.Search(r.Context(), q)
	if err != nil {
		writeError(w, r, err, q, upstreamMessage)
		return
	}
	writeData(w, r, http.StatusOK, teams)
}

func (h *handlers) listMarkets(w http.ResponseWriter, r *http.Request) {
	markets, err := h.services.Markets.List(r.Context())
	if err != nil {
		writeError(w, r, err, nil, upstreamMessage)
		return
	}
	writeData(w, r, http.StatusOK, markets)
}

func (h *handlers) getMarket(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, nil, upstreamMessage)
		return
	}

	market, err := h.services.Markets.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, id, upstreamMessage)
		return
	}
	writeData(w, r, http.StatusOK, market)
}
