package configs

// RouteConfig describes a static route served in addition to the built-in ones.
type RouteConfig struct {
	Path    string         `yaml:"path" json:"path"`
	Payload map[string]any `yaml:"payload" json:"payload"`
}

func GetRoutesConfig() []RouteConfig {
	return config.Routes
}
