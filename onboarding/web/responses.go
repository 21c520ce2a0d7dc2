package web

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/stationhealth/onboarding-api/log"
	"github.com/stationhealth/onboarding-api/middleware"
	customErrors "github.com/stationhealth/onboarding-api/onboarding/errors"
)

// Envelope wraps every successful response. Data is always present, null
// included.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type ErrorResponse struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Message    interface{} `json:"message"`
}

func writeData(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	render.Status(r, status)
	render.JSON(w, r, Envelope{Success: true, Data: data})
}

// messageFunc picks the message sent to the client for a failed request.
type messageFunc func(err error) interface{}

// upstreamMessage passes Station's message through untouched.
func upstreamMessage(err error) interface{} {
	var validationErr *customErrors.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields
	}

	var upstreamErr *customErrors.UpstreamError
	if errors.As(err, &upstreamErr) && upstreamErr.Message != "" {
		return upstreamErr.Message
	}

	return err.Error()
}

// fieldMessages turns Station field errors into one readable string per
// field/message pair.
func fieldMessages(err error) interface{} {
	var upstreamErr *customErrors.UpstreamError
	if errors.As(err, &upstreamErr) {
		if msgs := upstreamErr.FieldMessages(); len(msgs) > 0 {
			return msgs
		}
	}
	return upstreamMessage(err)
}

func writeError(w http.ResponseWriter, r *http.Request, err error, args interface{}, message messageFunc) {
	status := customErrors.StatusCode(err)

	logger := log.WithArgs(log.API.WithFields(logrus.Fields{
		"request_id": middleware.GetTransactionID(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
		"status":     status,
	}), args)
	if status >= http.StatusInternalServerError {
		logger.Error(err)
	} else {
		logger.Warn(err)
	}

	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{
		Success:    false,
		StatusCode: status,
		Message:    message(err),
	})
}
