package web

import (
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	customErrors "github.com/stationhealth/onboarding-api/onboarding/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate reads a JSON body into dst and checks its validate tags.
// Every failure is a *ValidationError listing one message per field.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := decodeBody(r, dst); err != nil {
		return err
	}
	return validateStruct(dst)
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		msg := "request body must be valid JSON"
		if errors.Is(err, io.EOF) {
			msg = "request body is required"
		}
		return &customErrors.ValidationError{Err: err, Msg: msg, Fields: []string{msg}}
	}
	return nil
}

func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &customErrors.ValidationError{Err: err, Msg: err.Error(), Fields: []string{err.Error()}}
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fieldMessage(fe))
	}
	return &customErrors.ValidationError{Err: err, Msg: strings.Join(fields, "; "), Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	name := fe.Namespace()
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s should not be empty", name)
	case "email":
		return fmt.Sprintf("%s must be an email", name)
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return parseID(name, chi.URLParam(r, name))
}

// queryID reads an integer query parameter. A missing optional parameter is 0.
func queryID(r *http.Request, name string, required bool) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		if required {
			msg := fmt.Sprintf("%s should not be empty", name)
			return 0, &customErrors.ValidationError{Msg: msg, Fields: []string{msg}}
		}
		return 0, nil
	}
	return parseID(name, raw)
}

func parseID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		msg := fmt.Sprintf("%s must be a positive integer", name)
		return 0, &customErrors.ValidationError{Err: err, Msg: msg, Fields: []string{msg}}
	}
	return id, nil
}
