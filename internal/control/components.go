package control

import (
	"context"
	"greeting-service/internal/configs"
	"greeting-service/internal/logger"
	"greeting-service/internal/routes"
	"greeting-service/internal/server"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	zlog "github.com/rs/zerolog/log"
)

var Components = &componentsManager{}

type componentsManager struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    *configs.ComponentsConfig
	table  *routes.Table
}

func (c *componentsManager) Start() error {
	// make root context
	c.ctx, c.cancel = signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// load config
	if err := configs.LoadConfig(); err != nil {
		c.cancel()
		return err
	}
	c.cfg = configs.GetComponentsConfig()

	// init logger
	logger.Init(configs.GetLogConfig())
	zlog.Info().Msg("starting...")

	// route table is frozen from here on
	table, err := routes.Build(configs.GetRoutesConfig())
	if err != nil {
		c.cancel()
		return errors.Wrap(err, "build route table")
	}
	c.table = table
	zlog.Info().Int("routes", table.Len()).Msg("Route table ready")

	// start server
	if c.cfg.Server {
		if err := server.Server.Init(configs.GetServerConfig(), configs.GetMetricsConfig(), table); err != nil {
			c.cancel()
			return errors.Wrap(err, "init server")
		}
		if err := server.Server.Start(); err != nil {
			c.cancel()
			return err
		}
	}

	return nil
}

func (c *componentsManager) Routes() *routes.Table {
	return c.table
}

func (c *componentsManager) Wait() {
	// wait for os interrupt signal
	<-c.ctx.Done()
}

func (c *componentsManager) Stop() {
	// send stop signal
	c.cancel()

	// wait for server shutdown
	if c.cfg.Server {
		if err := server.Server.Stop(); err != nil {
			zlog.Error().Err(err).Msg("Server stopped with error")
		}
	}

	zlog.Info().Msg("stopped")
}
