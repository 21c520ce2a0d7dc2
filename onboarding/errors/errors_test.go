package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Validation", &ValidationError{Msg: "bad"}, http.StatusBadRequest},
		{"Upstream 422", &UpstreamError{StatusCode: 422}, http.StatusUnprocessableEntity},
		{"Wrapped upstream 404", errors.Wrap(&UpstreamError{StatusCode: 404}, "get"), http.StatusNotFound},
		{"fmt wrapped upstream", fmt.Errorf("attach: %w", &UpstreamError{StatusCode: 409}), http.StatusConflict},
		{"Network failure", errors.New("connection refused"), http.StatusInternalServerError},
		{"Upstream without status", &UpstreamError{}, http.StatusInternalServerError},
		{"Redirect from upstream", &UnexpectedStatusCodeError{StatusCode: 302, Err: errors.New("found")}, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(errors.Wrap(&UpstreamError{StatusCode: 404}, "get")))
	assert.False(t, IsNotFound(&UpstreamError{StatusCode: 500}))
	assert.False(t, IsNotFound(errors.New("boom")))
}

func TestFieldMessages(t *testing.T) {
	err := &UpstreamError{
		StatusCode: 422,
		Errors: map[string][]string{
			"number":          {"is invalid"},
			"expiration_date": {"can't be blank", "is in the past"},
			"base":            {"Card was declined"},
		},
	}

	assert.Equal(t, []string{
		"Card was declined",
		"Expiration date can't be blank",
		"Expiration date is in the past",
		"Number is invalid",
	}, err.FieldMessages())
}

func TestFieldMessagesEmpty(t *testing.T) {
	assert.Empty(t, (&UpstreamError{StatusCode: 500, Message: "boom"}).FieldMessages())
}
