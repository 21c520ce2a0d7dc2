package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type keySource bool

func (k keySource) HasLogDNAKey() bool { return bool(k) }

func TestCheckAllUp(t *testing.T) {
	h := NewHealthChecker(ClientConfigIndicator(keySource(true)))

	report, ok := h.Check(context.Background())

	assert.True(t, ok)
	assert.Equal(t, StatusOK, report.Status)
	assert.Equal(t, IndicatorStatus{Status: StatusUp, Message: StatusOK}, report.Info["client-config"])
	assert.Empty(t, report.Error)
}

func TestCheckIndicatorDown(t *testing.T) {
	h := NewHealthChecker(ClientConfigIndicator(keySource(false)))

	report, ok := h.Check(context.Background())

	assert.False(t, ok)
	assert.Equal(t, StatusError, report.Status)
	assert.Equal(t, StatusDown, report.Error["client-config"].Status)
	assert.Equal(t, StatusDown, report.Details["client-config"].Status)
	assert.Empty(t, report.Info)
}

func TestCheckRecoversFromPanic(t *testing.T) {
	h := NewHealthChecker(
		Indicator{Name: "ok", Check: func(context.Context) (string, bool) { return StatusOK, true }},
		Indicator{Name: "broken", Check: func(context.Context) (string, bool) { panic("nil config") }},
	)

	report, ok := h.Check(context.Background())

	assert.False(t, ok)
	assert.Contains(t, report.Error["broken"].Message, "nil config")
	assert.Equal(t, StatusUp, report.Info["ok"].Status)
}

func TestCheckNoIndicators(t *testing.T) {
	report, ok := NewHealthChecker().Check(context.Background())
	assert.True(t, ok)
	assert.Equal(t, StatusOK, report.Status)
}
