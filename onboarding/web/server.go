package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stationhealth/onboarding-api/conf"
	"github.com/stationhealth/onboarding-api/log"
)

// A Server defines the configuration of the onboarding API server
type Server struct {
	name string
	// port server is running on; must have leading :, as in ":3000"
	port   string
	router chi.Router
	srvr   http.Server
}

func NewServer(name, port string, routes http.Handler) *Server {
	s := Server{}
	s.name = name
	s.port = port
	s.router = chi.NewRouter()
	s.router.Mount("/", routes)
	s.srvr = http.Server{
		Handler:      s.router,
		Addr:         s.port,
		ReadTimeout:  time.Duration(conf.GetEnvInt("API_READ_TIMEOUT", 10)) * time.Second,
		WriteTimeout: time.Duration(conf.GetEnvInt("API_WRITE_TIMEOUT", 20)) * time.Second,
		IdleTimeout:  time.Duration(conf.GetEnvInt("API_IDLE_TIMEOUT", 120)) * time.Second,
	}

	return &s
}

func (s *Server) LogRoutes() {
	routes := fmt.Sprintf("Routes for %s at port %s: ", s.name, s.port)
	walker := func(method, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		routes = fmt.Sprintf("%s %s %s, ", routes, method, route)
		return nil
	}
	if err := chi.Walk(s.router, walker); err != nil {
		log.API.Fatalf("bad route: %s", err.Error())
	}
	log.API.Info(routes)
}

// Serve blocks until ctx is done, then drains in-flight requests.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.API.Infof("starting %s server on %s", s.name, s.port)
		errCh <- s.srvr.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.srvr.Shutdown(shutdownCtx)
}

func (s *Server) Handler() http.Handler {
	return s.router
}
