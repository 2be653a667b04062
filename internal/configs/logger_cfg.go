package configs

type LogConfig struct {
	Level                 int8   `yaml:"level"`
	ConsoleLoggingEnabled bool   `yaml:"consoleLoggingEnabled"`
	FileLoggingEnabled    bool   `yaml:"fileLoggingEnabled"`
	Directory             string `yaml:"directory"`
	Filename              string `yaml:"filename"`
	MaxSize               int    `yaml:"maxSize"`
	MaxBackups            int    `yaml:"maxBackups"`
	MaxAge                int    `yaml:"maxAge"`
}

func defaultLogConfig() LogConfig {
	return LogConfig{
		Level:                 1, // info
		ConsoleLoggingEnabled: true,
		Directory:             "logs",
		Filename:              "greeting-service.log",
		MaxSize:               10,
		MaxBackups:            3,
		MaxAge:                7,
	}
}

func GetLogConfig() *LogConfig {
	return &config.Logs
}
