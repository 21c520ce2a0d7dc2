package onboardingcli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/stationhealth/onboarding-api/conf"
	"github.com/stationhealth/onboarding-api/log"
	"github.com/stationhealth/onboarding-api/onboarding/client"
	"github.com/stationhealth/onboarding-api/onboarding/constants"
	"github.com/stationhealth/onboarding-api/onboarding/health"
	"github.com/stationhealth/onboarding-api/onboarding/querycache"
	"github.com/stationhealth/onboarding-api/onboarding/service"
	"github.com/stationhealth/onboarding-api/onboarding/station"
	"github.com/stationhealth/onboarding-api/onboarding/web"
)

// App Name and usage.  Edit them here to prevent breaking tests
const Name = "onboarding-api"
const Usage = "Onboarding API CLI"

func GetApp() *cli.App {
	return setUpApp()
}

func setUpApp() *cli.App {
	app := cli.NewApp()
	app.Name = Name
	app.Usage = Usage
	app.Version = constants.Version
	var onboardingURL, careManagerURL, token, patientSearch string
	app.Commands = []cli.Command{
		{
			Name:  "start-api",
			Usage: "Start the API",
			Action: func(c *cli.Context) error {
				cfg, err := conf.Load()
				if err != nil {
					return err
				}
				services, err := newServices(cfg)
				if err != nil {
					return err
				}

				fmt.Fprintf(app.Writer, "%s\n", "Starting onboarding-api...")

				srv := web.NewServer("api", ":"+strings.TrimPrefix(cfg.Port, ":"), web.NewAPIRouter(services, newHealthChecker(services)))
				srv.LogRoutes()

				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return srv.Serve(ctx)
			},
		},
		{
			Name:  "check-health",
			Usage: "Run the health indicators once and print the report",
			Action: func(c *cli.Context) error {
				cfg, err := conf.Load()
				if err != nil {
					return err
				}
				services, err := newServices(cfg)
				if err != nil {
					return err
				}

				report, ok := newHealthChecker(services).Check(context.Background())
				out, err := json.Marshal(report)
				if err != nil {
					return err
				}
				fmt.Fprintf(app.Writer, "%s\n", out)
				if !ok {
					return errors.New("health check failed")
				}
				return nil
			},
		},
		{
			Name:     "list-markets",
			Category: "Client",
			Usage:    "List markets through the onboarding API",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "onboarding-url",
					Usage:       "Base URL of the onboarding API",
					EnvVar:      "ONBOARDING_API_URL",
					Destination: &onboardingURL,
				},
				cli.StringFlag{
					Name:        "token",
					Usage:       "Bearer token sent with every request",
					EnvVar:      "ONBOARDING_API_TOKEN",
					Destination: &token,
				},
			},
			Action: func(c *cli.Context) error {
				if onboardingURL == "" {
					return errors.New("onboarding-url is required")
				}
				sdk, closeCache, err := newSDK(client.Config{OnboardingURL: onboardingURL, Token: token})
				if err != nil {
					return err
				}
				defer closeCache()

				markets, err := sdk.Markets(context.Background())
				if err != nil {
					return err
				}
				for _, m := range markets {
					fmt.Fprintf(app.Writer, "%d\t%s\t%s\n", m.ID, m.ShortName, m.Name)
				}
				return nil
			},
		},
		{
			Name:     "search-episodes",
			Category: "Client",
			Usage:    "Search CareManager episodes by patient",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "caremanager-url",
					Usage:       "Base URL of the CareManager API",
					EnvVar:      "CAREMANAGER_API_URL",
					Destination: &careManagerURL,
				},
				cli.StringFlag{
					Name:        "token",
					Usage:       "Bearer token sent with every request",
					EnvVar:      "ONBOARDING_API_TOKEN",
					Destination: &token,
				},
				cli.StringFlag{
					Name:        "patient",
					Usage:       "Patient name to search for",
					Destination: &patientSearch,
				},
			},
			Action: func(c *cli.Context) error {
				if careManagerURL == "" || patientSearch == "" {
					return errors.New("caremanager-url and patient are required")
				}
				sdk, closeCache, err := newSDK(client.Config{CareManagerURL: careManagerURL, Token: token})
				if err != nil {
					return err
				}
				defer closeCache()

				episodes, err := sdk.SearchEpisodes(context.Background(), client.EpisodeSearch{PatientSearch: patientSearch})
				if err != nil {
					return err
				}
				for _, row := range client.FormatEpisodeRows(episodes, time.Now()) {
					fmt.Fprintf(app.Writer, "%s\n", row)
				}
				return nil
			},
		},
	}
	return app
}

func newServices(cfg *conf.Config) (*service.Services, error) {
	st, err := station.NewClient(station.ConfigFromConf(cfg))
	if err != nil {
		return nil, err
	}
	return service.New(st, cfg), nil
}

func newHealthChecker(services *service.Services) health.HealthChecker {
	return health.NewHealthChecker(health.ClientConfigIndicator(services.ClientConfig))
}

// newSDK backs the client's query cache with Redis when REDIS_URL is set.
func newSDK(cfg client.Config) (*client.Client, func(), error) {
	ttl := time.Duration(conf.GetEnvInt("QUERY_CACHE_TTL_SECONDS", 0)) * time.Second

	redisURL := conf.GetEnv("REDIS_URL")
	if redisURL == "" {
		cfg.Cache = querycache.New(querycache.NewMemoryKV(), ttl)
		return client.New(cfg), func() {}, nil
	}

	kv, err := querycache.NewRedisKVFromURL(redisURL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to connect to query cache")
	}
	cfg.Cache = querycache.New(kv, ttl)
	return client.New(cfg), func() {
		if err := kv.Close(); err != nil {
			log.API.Warnf("failed to close query cache: %s", err.Error())
		}
	}, nil
}
