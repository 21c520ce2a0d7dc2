package station

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/stationhealth/onboarding-api/conf"
	"github.com/stationhealth/onboarding-api/log"
	"github.com/stationhealth/onboarding-api/middleware"
	"github.com/stationhealth/onboarding-api/onboarding/constants"
	customErrors "github.com/stationhealth/onboarding-api/onboarding/errors"
)

// Requester is the surface services use to reach Station.
type Requester interface {
	Get(ctx context.Context, path string, params map[string]interface{}, out interface{}) error
	Post(ctx context.Context, path string, body, out interface{}) error
	Put(ctx context.Context, path string, body, out interface{}) error
	Patch(ctx context.Context, path string, body, out interface{}) error
	Delete(ctx context.Context, path string, params map[string]interface{}, out interface{}) error
}

// Config holds the Station connection settings. Vendor and Timeout fall back
// to the package defaults when unset.
type Config struct {
	BaseURL  string
	Vendor   string
	Timeout  time.Duration
	RetryMax int
}

// ConfigFromConf builds a Config from STATION_* values.
func ConfigFromConf(c *conf.Config) Config {
	return Config{
		BaseURL:  c.StationURL,
		Vendor:   c.StationVendor,
		Timeout:  time.Duration(c.StationTimeoutMS) * time.Millisecond,
		RetryMax: c.StationRetryMax,
	}
}

var _ Requester = &Client{}

// Client is the Station HTTP client. It implements Requester.
type Client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	accept     string
}

// NewClient creates a Station client from cfg. An empty BaseURL is a
// *ConfigError.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, &customErrors.ConfigError{Key: "STATION_URL", Msg: constants.MissingStationURLErr}
	}
	if cfg.Vendor == "" {
		cfg.Vendor = constants.DefaultStationVendor
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = constants.DefaultStationTimeoutMS * time.Millisecond
	}

	hc := retryablehttp.NewClient()
	hc.HTTPClient.Timeout = cfg.Timeout
	hc.RetryMax = cfg.RetryMax
	// Station errors are returned to the caller untouched
	hc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	hc.Logger = nil

	return &Client{
		httpClient: hc,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		accept:     fmt.Sprintf(constants.StationAcceptFormat, cfg.Vendor),
	}, nil
}

func (c *Client) Get(ctx context.Context, path string, params map[string]interface{}, out interface{}) error {
	return c.do(ctx, http.MethodGet, withQuery(path, params), nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, params map[string]interface{}, out interface{}) error {
	return c.do(ctx, http.MethodDelete, withQuery(path, params), nil, out)
}

func withQuery(path string, params map[string]interface{}) string {
	if q := BuildURLQuery(params); q != "" {
		return path + "?" + q
	}
	return path
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload interface{}
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, constants.EncodeBodyErr, path)
		}
		payload = b
	}

	req, err := retryablehttp.NewRequest(method, c.baseURL+path, payload)
	if err != nil {
		return errors.Wrap(err, constants.StationRequestErr)
	}
	req = req.WithContext(ctx)
	c.addRequestHeaders(req.Request)

	seg := newrelic.StartExternalSegment(newrelic.FromContext(ctx), req.Request)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	seg.Response = resp
	seg.End()
	logRequest(req.Request, resp, time.Since(start))
	if err != nil {
		return errors.Wrap(err, constants.StationRequestErr)
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, constants.RespBodyErr, path)
	}

	switch {
	case resp.StatusCode >= http.StatusBadRequest:
		return parseUpstreamError(resp.StatusCode, data)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return &customErrors.UnexpectedStatusCodeError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s %s", method, path),
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, constants.DecodeBodyErr, path)
	}
	return nil
}

func (c *Client) addRequestHeaders(req *http.Request) {
	ctx := req.Context()

	req.Header.Set("Content-Type", constants.JSONContentType)
	req.Header.Set("Accept", c.accept)

	if token := middleware.GetBearerToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	reqID := middleware.GetTransactionID(ctx)
	if reqID == "" {
		reqID = uuid.NewRandom().String()
	}
	req.Header.Set(middleware.RequestIDHeader, reqID)
}

func logRequest(req *http.Request, resp *http.Response, elapsed time.Duration) {
	entry := log.Station.WithFields(logrus.Fields{
		"request_id": req.Header.Get(middleware.RequestIDHeader),
		"method":     req.Method,
		"uri":        req.URL.Path,
		"elapsed_ms": float64(elapsed.Nanoseconds()) / 1000000.0,
	})

	if resp == nil {
		entry.Warn("Station request failed")
		return
	}

	entry.WithFields(logrus.Fields{
		"resp_code":      resp.StatusCode,
		"content_length": resp.ContentLength,
	}).Info("Station response")
}

// errorBody covers the error shapes Station sends: {"message": ...},
// {"error": ...} and {"errors": {"field": ["msg"]}} or {"errors": ["msg"]}.
type errorBody struct {
	Message interface{}     `json:"message"`
	Error   interface{}     `json:"error"`
	Errors  json.RawMessage `json:"errors"`
}

func parseUpstreamError(status int, data []byte) *customErrors.UpstreamError {
	upstreamErr := &customErrors.UpstreamError{StatusCode: status, Body: string(data)}

	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		upstreamErr.Message = strings.TrimSpace(string(data))
		if upstreamErr.Message == "" {
			upstreamErr.Message = http.StatusText(status)
		}
		return upstreamErr
	}

	upstreamErr.Errors = parseFieldErrors(body.Errors)

	switch {
	case asMessage(body.Message) != "":
		upstreamErr.Message = asMessage(body.Message)
	case asMessage(body.Error) != "":
		upstreamErr.Message = asMessage(body.Error)
	case len(upstreamErr.Errors) > 0:
		upstreamErr.Message = strings.Join(upstreamErr.FieldMessages(), ", ")
	default:
		upstreamErr.Message = http.StatusText(status)
	}

	return upstreamErr
}

// parseFieldErrors accepts {"field": ["msg"]}, {"field": "msg"} or a mix of
// both per field. A bare list is reported under "base".
func parseFieldErrors(raw json.RawMessage) map[string][]string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return nil
		}
		return map[string][]string{"base": list}
	}

	var byField map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byField); err != nil {
		return nil
	}

	fields := make(map[string][]string, len(byField))
	for field, value := range byField {
		var msgs []string
		if err := json.Unmarshal(value, &msgs); err == nil {
			if len(msgs) > 0 {
				fields[field] = msgs
			}
			continue
		}
		var msg string
		if err := json.Unmarshal(value, &msg); err == nil && msg != "" {
			fields[field] = []string{msg}
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func asMessage(v interface{}) string {
	switch m := v.(type) {
	case string:
		return m
	case []interface{}:
		parts := make([]string, 0, len(m))
		for _, p := range m {
			parts = append(parts, fmt.Sprint(p))
		}
		return strings.Join(parts, ", ")
	}
	return ""
}
