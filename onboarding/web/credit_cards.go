package web

import (
	"net/http"

	"github.com/stationhealth/onboarding-api/onboarding/models"
)

func (h *handlers) listCreditCards(w http.ResponseWriter, r *http.Request) {
	var q models.CreditCardQuery
	var err error
	if q.PatientID, err = queryID(r, "patientId", true); err != nil {
		writeError(w, r, err, nil, fieldMessages)
		return
	}
	if q.CareRequestID, err = queryID(r, "careRequestId", false); err != nil {
		writeError(w, r, err, nil, fieldMessages)
		return
	}

	cards, err := h.services.CreditCards.List(r.Context(), q)
	if err != nil {
		writeError(w, r, err, q, fieldMessages)
		return
	}
	writeData(w, r, http.StatusOK, cards)
}

func (h *handlers) getCreditCard(w http.ResponseWriter, r *http.Request) {
	id, patientID, err := creditCardIDs(r)
	if err != nil {
		writeError(w, r, err, nil, fieldMessages)
		return
	}

	card, err := h.services.CreditCards.Get(r.Context(), patientID, id)
	if err != nil {
		writeError(w, r, err, id, fieldMessages)
		return
	}
	writeData(w, r, http.StatusOK, card)
}

func (h *handlers) createCreditCard(w http.ResponseWriter, r *http.Request) {
	var body models.CreditCard
	if err := decodeAndValidate(r, &body); err != nil {
		writeError(w, r, err, nil, fieldMessages)
		return
	}

	card, err := h.services.CreditCards.Create(r.Context(), body)
	if err != nil {
		// body carries the card token, keep it out of the logs
		writeError(w, r, err, nil, fieldMessages)
		return
	}
	writeData(w, r, http.StatusCreated, card)
}

func (h *handlers) updateCreditCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, nil, fieldMessages)
		return
	}
	var body models.CreditCard
	if err := decodeAndValidate(r, &body); err != nil {
		writeError(w, r, err, nil, fieldMessages)
		return
	}

	card, err := h.services.CreditCards.Update(r.Context(), id, body)
	if err != nil {
		writeError(w, r, err, id, fieldMessages)
		return
	}
	writeData(w, r, http.StatusOK, card)
}

func (h *handlers) deleteCreditCard(w http.ResponseWriter, r *http.Request) {
	id, patientID, err := creditCardIDs(r)
	if err != nil {
		writeError(w, r, err, nil, fieldMessages)
		return
	}

	if err := h.services.CreditCards.Delete(r.Context(), patientID, id); err != nil {
		writeError(w, r, err, id, fieldMessages)
		return
	}
	writeData(w, r, http.StatusOK, nil)
}

func creditCardIDs(r *http.Request) (id, patientID int64, err error) {
	if id, err = pathID(r, "id"); err != nil {
		return 0, 0, err
	}
	if patientID, err = queryID(r, "patientId", true); err != nil {
		return 0, 0, err
	}
	return id, patientID, nil
}
