package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	appMiddleware "github.com/stationhealth/onboarding-api/middleware"
)

type LoggingMiddlewareTestSuite struct {
	suite.Suite
	hook   *test.Hook
	router chi.Router
}

func (s *LoggingMiddlewareTestSuite) SetupTest() {
	logger, hook := test.NewNullLogger()
	s.hook = hook

	s.router = chi.NewRouter()
	s.router.Use(appMiddleware.NewTransactionID, appMiddleware.BearerToken)
	s.router.Use(middlewareFor(logger))
	s.router.Get("/markets", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})
}

func middlewareFor(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return middleware.RequestLogger(&StructuredLogger{Logger: logger})(next)
	}
}

func TestLoggingMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(LoggingMiddlewareTestSuite))
}

func (s *LoggingMiddlewareTestSuite) TestRequestLogged() {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "auth0|user-1"})
	signed, err := token.SignedString([]byte("secret"))
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/markets?token=Bearer%20abc123", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	req.Header.Set(appMiddleware.RequestIDHeader, "req-1")
	rr := httptest.NewRecorder()

	s.router.ServeHTTP(rr, req)

	entries := s.hook.AllEntries()
	s.Require().Len(entries, 2)

	started := entries[0]
	s.Equal("request started", started.Message)
	s.Equal("req-1", started.Data["request_id"])
	s.Equal("auth0|user-1", started.Data["sub"])
	s.Equal(http.MethodGet, started.Data["http_method"])
	s.NotContains(started.Data["uri"], "abc123")

	complete := entries[1]
	s.Equal("request complete", complete.Message)
	s.Equal(http.StatusOK, complete.Data["resp_status"])
	s.Equal(5, complete.Data["resp_bytes_length"])
	s.Contains(complete.Data, "resp_elapsed_ms")
}

func TestRedact(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"/markets?token=Bearer%20abc", "/markets?token=Bearer%20<redacted>"},
		{"/markets?token=Bearer+abc&x=1", "/markets?token=Bearer+<redacted>&x=1"},
		{"/markets?id=1", "/markets?id=1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Redact(tt.uri))
	}
}

func TestPanicAddsFields(t *testing.T) {
	logger, hook := test.NewNullLogger()
	entry := &StructuredLoggerEntry{Logger: logger}

	entry.Panic("boom", []byte("stack"))
	entry.Logger.Error("recovered")

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "boom", hook.LastEntry().Data["panic"])
	assert.Equal(t, "stack", hook.LastEntry().Data["stack"])
}

func TestNewLogEntryWithoutContext(t *testing.T) {
	logger, hook := test.NewNullLogger()
	req := httptest.NewRequest(http.MethodGet, "/health-check", nil).WithContext(context.Background())

	(&StructuredLogger{Logger: logger}).NewLogEntry(req)

	require.Len(t, hook.AllEntries(), 1)
	assert.NotContains(t, hook.LastEntry().Data, "request_id")
	assert.NotContains(t, hook.LastEntry().Data, "sub")
}
