package monitoring

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/newrelic/go-agent/v3/integrations/nrlogrus"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/sirupsen/logrus"

	"github.com/stationhealth/onboarding-api/conf"
	"github.com/stationhealth/onboarding-api/log"
)

var (
	a    *apm
	once sync.Once
)

type apm struct {
	App *newrelic.Application
}

// WrapHandler names the New Relic transaction after the route pattern. With no
// agent the handler is returned unchanged.
func (a *apm) WrapHandler(pattern string, h http.HandlerFunc) (string, http.HandlerFunc) {
	p, wrapped := newrelic.WrapHandleFunc(a.App, pattern, h)
	return p, wrapped
}

// GetMonitor returns the process wide agent. The agent only reports when
// NEW_RELIC_LICENSE_KEY is set.
func GetMonitor() *apm {
	once.Do(func() {
		target := conf.GetEnv("DEPLOYMENT_TARGET")
		if target == "" {
			target = "local"
		}
		license := conf.GetEnv("NEW_RELIC_LICENSE_KEY")

		options := []newrelic.ConfigOption{
			newrelic.ConfigAppName(fmt.Sprintf("Onboarding-API-%s", target)),
			newrelic.ConfigEnabled(license != ""),
			func(cfg *newrelic.Config) {
				cfg.HighSecurity = true
			},
		}
		if license != "" {
			options = append(options, newrelic.ConfigLicense(license))
		}
		if l, ok := log.API.(*logrus.Entry); ok {
			options = append(options, nrlogrus.ConfigLogger(l.Logger))
		}

		app, err := newrelic.NewApplication(options...)
		if err != nil {
			log.API.Error(err)
		}
		a = &apm{App: app}
	})
	return a
}
