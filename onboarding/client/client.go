package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/stationhealth/onboarding-api/onboarding/constants"
	customErrors "github.com/stationhealth/onboarding-api/onboarding/errors"
	"github.com/stationhealth/onboarding-api/onboarding/querycache"
	"github.com/stationhealth/onboarding-api/onboarding/station"
)

// Config points the SDK at its backends. Station is only needed for the
// Station-backed endpoints (service areas).
type Config struct {
	OnboardingURL  string
	CareManagerURL string
	Token          string
	Timeout        time.Duration
	Station        station.Requester
	Cache          *querycache.Cache
}

// Client is a typed SDK over the onboarding API, CareManager and Station.
// Queries go through an explicit cache; mutations never touch it.
type Client struct {
	httpClient     *retryablehttp.Client
	onboardingURL  string
	careManagerURL string
	token          string
	station        station.Requester
	cache          *querycache.Cache
}

func New(cfg Config) *Client {
	hc := retryablehttp.NewClient()
	hc.RetryMax = 0
	hc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	hc.Logger = nil
	if cfg.Timeout > 0 {
		hc.HTTPClient.Timeout = cfg.Timeout
	}

	cache := cfg.Cache
	if cache == nil {
		cache = querycache.New(querycache.NewMemoryKV(), 0)
	}

	return &Client{
		httpClient:     hc,
		onboardingURL:  strings.TrimRight(cfg.OnboardingURL, "/"),
		careManagerURL: strings.TrimRight(cfg.CareManagerURL, "/"),
		token:          cfg.Token,
		station:        cfg.Station,
		cache:          cache,
	}
}

// Cache exposes the query cache so callers can invalidate after mutations.
func (c *Client) Cache() *querycache.Cache {
	return c.cache
}

// envelope mirrors the onboarding API response body.
type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	StatusCode int             `json:"statusCode"`
	Message    json.RawMessage `json:"message"`
}

// onboarding calls the onboarding API and unwraps its {success, data} envelope into out.
func (c *Client) onboarding(ctx context.Context, method, path string, body, out interface{}) error {
	raw, err := c.do(ctx, method, c.onboardingURL+path, body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errors.Wrapf(err, constants.DecodeBodyErr, path)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrapf(err, constants.DecodeBodyErr, path)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, url string, body interface{}) ([]byte, error) {
	var payload interface{}
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, constants.EncodeBodyErr, url)
		}
		payload = b
	}

	req, err := retryablehttp.NewRequest(method, url, payload)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", constants.JSONContentType)
	req.Header.Set("Accept", constants.JSONContentType)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request to %s failed", url)
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, constants.RespBodyErr, url)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, responseError(resp.StatusCode, data)
	}
	return data, nil
}

// responseError rebuilds the server's error body. message may be a string or
// a list of strings.
func responseError(status int, data []byte) error {
	upstreamErr := &customErrors.UpstreamError{StatusCode: status, Body: string(data)}

	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && len(env.Message) > 0 {
		var msg string
		var msgs []string
		switch {
		case json.Unmarshal(env.Message, &msg) == nil:
			upstreamErr.Message = msg
		case json.Unmarshal(env.Message, &msgs) == nil:
			upstreamErr.Message = strings.Join(msgs, ", ")
			upstreamErr.Errors = map[string][]string{"base": msgs}
		}
	}
	if upstreamErr.Message == "" {
		upstreamErr.Message = fmt.Sprintf("%d %s", status, http.StatusText(status))
	}
	return upstreamErr
}
