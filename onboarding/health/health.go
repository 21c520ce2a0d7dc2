package health

import (
	"context"
	"fmt"

	"github.com/stationhealth/onboarding-api/log"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
	StatusUp    = "up"
	StatusDown  = "down"
)

// An Indicator reports on one dependency. Check returns a short message and
// whether the dependency is usable.
type Indicator struct {
	Name  string
	Check func(ctx context.Context) (result string, ok bool)
}

type IndicatorStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type Report struct {
	Status  string                     `json:"status"`
	Info    map[string]IndicatorStatus `json:"info"`
	Error   map[string]IndicatorStatus `json:"error"`
	Details map[string]IndicatorStatus `json:"details"`
}

type HealthChecker struct {
	indicators []Indicator
}

func NewHealthChecker(indicators ...Indicator) HealthChecker {
	return HealthChecker{indicators: indicators}
}

// Check runs every indicator in order. ok is false when any indicator is down
// or its check panics.
func (h HealthChecker) Check(ctx context.Context) (report Report, ok bool) {
	report = Report{
		Status:  StatusOK,
		Info:    make(map[string]IndicatorStatus),
		Error:   make(map[string]IndicatorStatus),
		Details: make(map[string]IndicatorStatus),
	}

	for _, indicator := range h.indicators {
		result, up := run(ctx, indicator)
		status := IndicatorStatus{Status: StatusUp, Message: result}
		if up {
			report.Info[indicator.Name] = status
		} else {
			status.Status = StatusDown
			report.Error[indicator.Name] = status
			report.Status = StatusError
		}
		report.Details[indicator.Name] = status
	}

	return report, report.Status == StatusOK
}

func run(ctx context.Context, indicator Indicator) (result string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.API.Errorf("Health check: %s indicator panicked: %v", indicator.Name, r)
			result, ok = fmt.Sprintf("check failed: %v", r), false
		}
	}()
	return indicator.Check(ctx)
}

// LogDNAKeySource is satisfied by the client config service.
type LogDNAKeySource interface {
	HasLogDNAKey() bool
}

// ClientConfigIndicator is down when the LogDNA ingestion key is missing.
func ClientConfigIndicator(src LogDNAKeySource) Indicator {
	return Indicator{
		Name: "client-config",
		Check: func(ctx context.Context) (string, bool) {
			if !src.HasLogDNAKey() {
				log.API.Error("Health check: LOG_DNA_KEY is not configured")
				return "LogDNA key is not configured", false
			}
			return StatusOK, true
		},
	}
}
