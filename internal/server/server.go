package server

import (
	"context"
	"greeting-service/internal/configs"
	"greeting-service/internal/logger"
	"greeting-service/internal/routes"
	"net"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	reuseport "github.com/kavu/go_reuseport"
	"github.com/pkg/errors"
	zlog "github.com/rs/zerolog/log"
)

var Server = &server{}

var ErrBadMetricsPath = errors.New("bad metrics path")

type server struct {
	cfg             *configs.ServerConfig
	server_instance *http.Server
	router          *gin.Engine
	metrics         *metrics
	listener        net.Listener
	serveDone       chan struct{}
}

func (s *server) Init(cfg *configs.ServerConfig, metricsCfg *configs.MetricsConfig, table *routes.Table) error {
	s.cfg = cfg

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = gin.New()

	// unknown paths and methods keep gin's default 404 / 405 answers
	s.router.RedirectTrailingSlash = false
	s.router.HandleMethodNotAllowed = true

	s.metrics = newMetrics()

	s.router.Use(logger.RequestId())
	s.router.Use(logger.GinLogger()) // use custom logger (zerolog)
	s.router.Use(gin.Recovery())     // recovery from all panics
	if cfg.EnableCORS {
		s.router.Use(cors.Default())
	}
	s.router.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	s.router.Use(s.metrics.middleware())

	s.initGreetingRoutes(table)
	s.initNoRoute()

	if metricsCfg.Enabled {
		if err := s.initMetricsRoute(metricsCfg.Path, table); err != nil {
			return err
		}
	}

	s.server_instance = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  cfg.AcceptTimeout,
		WriteTimeout: cfg.ResponseTimeout,
	}

	return nil
}

func (s *server) initMetricsRoute(path string, table *routes.Table) error {
	if !strings.HasPrefix(path, "/") {
		return errors.Wrapf(ErrBadMetricsPath, "%q must start with /", path)
	}
	if !table.Lookup(path).IsNone() {
		return errors.Wrapf(ErrBadMetricsPath, "%q is already a route", path)
	}

	s.router.GET(path, gin.WrapH(s.metrics.handler()))
	return nil
}

// Start binds the listener and serves in background. It returns once the
// address is bound, so callers may query Addr right away.
func (s *server) Start() error {
	ln, err := s.listen()
	if err != nil {
		zlog.Error().Err(err).Str("addr", s.server_instance.Addr).Msg("Failed to create listener")
		return errors.Wrapf(err, "listen on %s", s.server_instance.Addr)
	}

	s.listener = ln
	s.serveDone = make(chan struct{})

	zlog.Info().
		Str("addr", ln.Addr().String()).
		Msg("Server listens")

	go func() {
		defer close(s.serveDone)

		if err := s.server_instance.Serve(ln); err != nil && err != http.ErrServerClosed {
			zlog.Error().Err(err).Msg("failure while server working")
		}
	}()

	return nil
}

func (s *server) listen() (net.Listener, error) {
	if s.cfg.ReusePort {
		return reuseport.Listen("tcp", s.server_instance.Addr)
	}
	return net.Listen("tcp", s.server_instance.Addr)
}

// Addr is the bound address, or the configured one before Start.
func (s *server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.server_instance.Addr
}

func (s *server) Stop() error {
	zlog.Info().Dur("timeout", s.cfg.ShutdownTimeout).Msg("stopping server")

	timeout, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.server_instance.Shutdown(timeout); err != nil {
		zlog.Error().Err(err).Msg("Server forced to shutdown")
		return errors.Wrap(err, "shutdown")
	}

	if s.serveDone != nil {
		<-s.serveDone
	}
	s.listener = nil

	return nil
}
