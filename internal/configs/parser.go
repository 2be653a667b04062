package configs

import (
	"encoding/json"
	"greeting-service/internal/util"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	zlog "github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "/configs/config.yaml"

type ServiceConfig struct {
	Components ComponentsConfig `yaml:"use_components"`
	Server     ServerConfig     `yaml:"server"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Logs       LogConfig        `yaml:"logs"`
	Routes     []RouteConfig    `yaml:"routes,omitempty"`
}

var config ServiceConfig

type ConfigureForTestingFunc func(*ServiceConfig)

var configureForTesting ConfigureForTestingFunc

func SetConfigureForTestingFunc(configureForTestingFunc ConfigureForTestingFunc) {
	configureForTesting = configureForTestingFunc
}

func Default() ServiceConfig {
	return ServiceConfig{
		Components: ComponentsConfig{
			Server: true,
		},
		Server:  defaultServerConfig(),
		Metrics: defaultMetricsConfig(),
		Logs:    defaultLogConfig(),
	}
}

// LoadConfig reads the yaml file named by CONFIG_PATH (relative to the
// project root) on top of Default. A missing file is not an error.
func LoadConfig() error {
	cfg_path := os.Getenv("CONFIG_PATH")
	if cfg_path == "" {
		cfg_path = DefaultConfigPath
	}

	cfg, err := parseFile(cfg_path)
	if err != nil {
		return err
	}

	applyServerEnv(&cfg.Server)

	if configureForTesting != nil {
		configureForTesting(&cfg)
	}

	config = cfg

	s, err := json.MarshalIndent(config, "", "\t")
	if err == nil {
		zlog.Debug().RawJSON("config", s).Msg("Config loaded")
	}

	return nil
}

func parseFile(cfg_path string) (ServiceConfig, error) {
	cfg := Default()

	root, err := util.GetProjectRoot()
	if err != nil {
		return cfg, errors.Wrap(err, "undefined project root")
	}

	full_cfg_path, err := filepath.Abs(filepath.Join(root, cfg_path))
	if err != nil {
		return cfg, errors.Wrap(err, "failed to create full config path")
	}

	raw, err := os.ReadFile(full_cfg_path)
	if os.IsNotExist(err) {
		zlog.Warn().Str("path", full_cfg_path).Msg("Config file not found, using defaults")
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read config file %s", full_cfg_path)
	}

	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "unmarshal config %s failed", full_cfg_path)
	}

	return cfg, nil
}
