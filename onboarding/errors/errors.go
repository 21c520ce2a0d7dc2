package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

type ValidationError struct {
	Err    error
	Msg    string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation Error. Msg: %s, Err: %s", e.Msg, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// UpstreamError is returned when Station answers with a status >= 400.
// Errors holds the field-level messages when Station sent an errors map.
type UpstreamError struct {
	StatusCode int
	Message    string
	Errors     map[string][]string
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded with status %d: %s", e.StatusCode, e.Message)
}

// FieldMessages flattens Errors into one "<Field> <message>" string per
// field/message pair, ordered by field name.
func (e *UpstreamError) FieldMessages() []string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var messages []string
	for _, field := range fields {
		for _, msg := range e.Errors[field] {
			messages = append(messages, strings.TrimSpace(humanize(field)+" "+msg))
		}
	}
	return messages
}

// humanize turns "expiration_date" into "Expiration date".
func humanize(field string) string {
	s := strings.TrimSpace(strings.ReplaceAll(field, "_", " "))
	if s == "" || s == "base" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// UnexpectedStatusCodeError covers Station answers that are neither a success
// nor an error status (redirects, 1xx).
type UnexpectedStatusCodeError struct {
	Err        error
	StatusCode int
}

func (e *UnexpectedStatusCodeError) Error() string {
	return fmt.Sprintf("Unexpected Status Code %d: %s", e.StatusCode, e.Err)
}

func (e *UnexpectedStatusCodeError) Unwrap() error { return e.Err }

type ConfigError struct {
	Key string
	Msg string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("Configuration Error. Key: %s, Msg: %s", e.Key, e.Msg)
}

// StatusCode maps an error onto the HTTP status the API responds with.
func StatusCode(err error) int {
	var validationErr *ValidationError
	if stderrors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var upstreamErr *UpstreamError
	if stderrors.As(err, &upstreamErr) && upstreamErr.StatusCode >= http.StatusBadRequest {
		return upstreamErr.StatusCode
	}

	var unexpectedErr *UnexpectedStatusCodeError
	if stderrors.As(err, &unexpectedErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var upstreamErr *UpstreamError
	return stderrors.As(err, &upstreamErr) && upstreamErr.StatusCode == http.StatusNotFound
}
