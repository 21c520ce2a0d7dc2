package onboardingcli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"github.com/urfave/cli"

	"github.com/stationhealth/onboarding-api/conf"
	"github.com/stationhealth/onboarding-api/onboarding/client"
)

type CLITestSuite struct {
	suite.Suite
	testApp *cli.App
	buf     *bytes.Buffer
	server  *httptest.Server
	hits    int
}

func (s *CLITestSuite) SetupTest() {
	s.testApp = GetApp()
	s.buf = new(bytes.Buffer)
	s.testApp.Writer = s.buf
	s.hits = 0
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits++
		switch r.URL.Path {
		case "/markets":
			_, _ = w.Write([]byte(`{"success": true, "data": [{"id": 159, "name": "Denver", "shortName": "DEN"}]}`))
		case "/v1/episodes":
			if r.URL.Query().Get("patient_search") == "DOES NOT EXIST" {
				_, _ = w.Write([]byte(`{"episodes": []}`))
				return
			}
			_, _ = w.Write([]byte(`{"episodes": [{"id": 1, "patient": {"first_name": "care", "last_name": "manager", "date_of_birth": "1980-01-01", "sex": "f"}}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func (s *CLITestSuite) TearDownTest() {
	s.server.Close()
	s.NoError(conf.UnsetEnv(s.T(), "STATION_URL"))
	s.NoError(conf.UnsetEnv(s.T(), "LOG_DNA_KEY"))
	s.NoError(conf.UnsetEnv(s.T(), "REDIS_URL"))
}

func TestCLITestSuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) TestAppInfo() {
	s.Equal(Name, s.testApp.Name)
	s.Equal(Usage, s.testApp.Usage)
}

func (s *CLITestSuite) TestCheckHealth() {
	s.NoError(conf.SetEnv(s.T(), "STATION_URL", s.server.URL))
	s.NoError(conf.SetEnv(s.T(), "LOG_DNA_KEY", "ingestion-key"))

	err := s.testApp.Run([]string{Name, "check-health"})

	s.NoError(err)
	s.Contains(s.buf.String(), `"status":"ok"`)
	s.Contains(s.buf.String(), `"client-config"`)
}

func (s *CLITestSuite) TestCheckHealthDown() {
	s.NoError(conf.SetEnv(s.T(), "STATION_URL", s.server.URL))

	err := s.testApp.Run([]string{Name, "check-health"})

	s.EqualError(err, "health check failed")
	s.Contains(s.buf.String(), `"status":"error"`)
}

func (s *CLITestSuite) TestCheckHealthMissingStationURL() {
	err := s.testApp.Run([]string{Name, "check-health"})

	var missing *conf.MissingKeyError
	s.ErrorAs(err, &missing)
	s.Equal("STATION_URL", missing.Key)
}

func (s *CLITestSuite) TestListMarkets() {
	err := s.testApp.Run([]string{Name, "list-markets", "--onboarding-url", s.server.URL, "--token", "abc"})

	s.NoError(err)
	s.Equal("159\tDEN\tDenver\n", s.buf.String())
}

func (s *CLITestSuite) TestListMarketsRequiresURL() {
	err := s.testApp.Run([]string{Name, "list-markets", "--onboarding-url", ""})
	s.EqualError(err, "onboarding-url is required")
}

func (s *CLITestSuite) TestListMarketsRedisCache() {
	mr := miniredis.RunT(s.T())
	s.NoError(conf.SetEnv(s.T(), "REDIS_URL", "redis://"+mr.Addr()))

	s.NoError(s.testApp.Run([]string{Name, "list-markets", "--onboarding-url", s.server.URL}))
	s.NoError(GetApp().Run([]string{Name, "list-markets", "--onboarding-url", s.server.URL}))

	s.Equal(1, s.hits)
	s.Len(mr.Keys(), 1)
}

func (s *CLITestSuite) TestSearchEpisodes() {
	err := s.testApp.Run([]string{Name, "search-episodes", "--caremanager-url", s.server.URL, "--patient", "CareManager"})

	s.NoError(err)
	s.Contains(s.buf.String(), "Care Manager\n01/01/1980\n")
}

func (s *CLITestSuite) TestSearchEpisodesNoResults() {
	err := s.testApp.Run([]string{Name, "search-episodes", "--caremanager-url", s.server.URL, "--patient", "DOES NOT EXIST"})

	s.NoError(err)
	s.Equal(client.NoEpisodesFound+"\n", s.buf.String())
}
