package configs

import (
	"os"
	"strconv"
	"time"

	zlog "github.com/rs/zerolog/log"
)

const DefaultAddr = "0.0.0.0:5000"

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	Debug           bool          `yaml:"debug"`
	ReusePort       bool          `yaml:"reuse_port"`
	EnableCORS      bool          `yaml:"enable_cors"`
	AcceptTimeout   time.Duration `yaml:"accept_timeout"`
	ResponseTimeout time.Duration `yaml:"response_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

func defaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:            DefaultAddr,
		ReusePort:       true,
		AcceptTimeout:   10 * time.Second,
		ResponseTimeout: 10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

func applyServerEnv(cfg *ServerConfig) {
	addr, ok := os.LookupEnv("SERVER_ADDR")
	if ok && addr != "" {
		cfg.Addr = addr
	}

	s, ok := os.LookupEnv("SERVER_DEBUG")
	if ok {
		debug, err := strconv.ParseBool(s)
		if err != nil {
			zlog.Warn().Str("value", s).Msg("SERVER_DEBUG is not a bool, ignored")
		} else {
			cfg.Debug = debug
		}
	}
}

func GetServerConfig() *ServerConfig {
	return &config.Server
}
