package configs

type ComponentsConfig struct {
	Server bool `yaml:"server"`
}

func GetComponentsConfig() *ComponentsConfig {
	return &config.Components
}
