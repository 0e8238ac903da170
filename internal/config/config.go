package config

import (
	"time"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Board     BoardConfig     `yaml:"board"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	GraphQL   GraphQLConfig   `yaml:"graphql"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-ID"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// LockTimeout bounds how long a unit of work waits for a row lock held by a
// concurrent writer before failing with a conflict.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	LockTimeout     time.Duration `yaml:"lock_timeout"       env:"DATABASE_LOCK_TIMEOUT"       env-default:"5s"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"qaboard"`
}

// AuthConfig holds access token settings. Tokens are issued elsewhere;
// the board only validates them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"qaboard"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// BoardConfig holds content limits and housekeeping settings.
type BoardConfig struct {
	MaxTitleLength          int           `yaml:"max_title_length"           env:"BOARD_MAX_TITLE_LENGTH"           env-default:"200"`
	MaxContentLength        int           `yaml:"max_content_length"         env:"BOARD_MAX_CONTENT_LENGTH"         env-default:"50000"`
	MaxTagLength            int           `yaml:"max_tag_length"             env:"BOARD_MAX_TAG_LENGTH"             env-default:"32"`
	MaxBountyPoints         int           `yaml:"max_bounty_points"          env:"BOARD_MAX_BOUNTY_POINTS"          env-default:"10000"`
	ViewDedupSize           int           `yaml:"view_dedup_size"            env:"BOARD_VIEW_DEDUP_SIZE"            env-default:"100000"`
	ViewDedupWindow         time.Duration `yaml:"view_dedup_window"          env:"BOARD_VIEW_DEDUP_WINDOW"          env-default:"30m"`
	HardDeleteRetentionDays int           `yaml:"hard_delete_retention_days" env:"BOARD_HARD_DELETE_RETENTION_DAYS" env-default:"30"`
	PurgeBatchSize          int           `yaml:"purge_batch_size"           env:"BOARD_PURGE_BATCH_SIZE"           env-default:"100"`
}

// Policy returns the content limits as a domain policy.
func (b BoardConfig) Policy() domain.BoardPolicy {
	return domain.BoardPolicy{
		MaxTitleLength:   b.MaxTitleLength,
		MaxContentLength: b.MaxContentLength,
		MaxTagLength:     b.MaxTagLength,
		MaxBountyPoints:  b.MaxBountyPoints,
	}.WithDefaults()
}

// GraphQLConfig holds settings of the /graphql endpoint.
type GraphQLConfig struct {
	Enabled         bool `yaml:"enabled"          env:"GRAPHQL_ENABLED"          env-default:"true"`
	ComplexityLimit int  `yaml:"complexity_limit" env:"GRAPHQL_COMPLEXITY_LIMIT" env-default:"300"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	Requests        int           `yaml:"requests"         env:"RATE_LIMIT_REQUESTS"         env-default:"120"`
	Window          time.Duration `yaml:"window"           env:"RATE_LIMIT_WINDOW"           env-default:"1m"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}
