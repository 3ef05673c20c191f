package config

// Config holds runtime configuration for the server.
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string
	Database  DatabaseConfig
	Auth      AuthConfig
	Metrics   MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		LogLevel:  envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat: envOrDefault(envLogFormat, defaultLogFormat),
		Database:  loadDatabase(),
		Auth:      loadAuth(),
		Metrics:   loadMetrics(),
	}
}

// DotEnvPath returns the .env location to load before reading the environment.
func DotEnvPath() string {
	return envOrDefault(envDotEnvPath, defaultDotEnvPath)
}
