package config

import "time"

const (
	envPort         = "PORT"
	envDotEnvPath   = "DOTENV_PATH"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"

	envStoreDriver         = "STORE_DRIVER"
	envDatabaseURL         = "DATABASE_URL"
	envSQLitePath          = "SQLITE_PATH"
	envSeedPath            = "SEED_PATH"
	envDBMaxOpenConns      = "DB_MAX_OPEN_CONNS"
	envDBMaxIdleConns      = "DB_MAX_IDLE_CONNS"
	envDBConnMaxLifetime   = "DB_CONN_MAX_LIFETIME"
	envDBConnMaxIdleTime   = "DB_CONN_MAX_IDLE_TIME"
	envDBConnectAttempts   = "DB_CONNECT_ATTEMPTS"
	envDBConnectBackoff    = "DB_CONNECT_BACKOFF"
	envDBSlowQueryDuration = "DB_SLOW_QUERY"

	envAuthUsername     = "AUTH_USERNAME"
	envAuthPasswordHash = "AUTH_PASSWORD_HASH"
	envAuthRole         = "AUTH_ROLE"
	envAuthRequireToken = "AUTH_REQUIRE_TOKEN"
	envJWTSecret        = "JWT_SECRET"
	envJWTIssuer        = "JWT_ISSUER"
	envJWTAudience      = "JWT_AUDIENCE"
	envJWTTTL           = "JWT_TTL"

	defaultPort        = "8080"
	defaultDotEnvPath  = ".env"
	defaultMetricsPort = "9090"
	defaultServiceName = "game-catalog-service"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"

	defaultStoreDriver     = StoreMemory
	defaultSQLitePath      = "catalog.db"
	defaultDBMaxOpenConns  = 10
	defaultDBMaxIdleConns  = 10
	defaultConnMaxLifetime = 5 * time.Minute
	defaultConnMaxIdleTime = time.Minute
	// Startup budget: ten attempts, two seconds apart.
	defaultConnectAttempts = 10
	defaultConnectBackoff  = 2 * time.Second
	defaultSlowQuery       = 200 * time.Millisecond

	defaultAuthRole    = "Admin"
	defaultJWTIssuer   = "catalog-api"
	defaultJWTAudience = "catalog-client"
	defaultJWTTTL      = 60 * time.Minute
)
