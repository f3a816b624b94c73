package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is empty because every field carries its fully qualified env name.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names shared with tests and deploy manifests.
const (
	EnvAppEnv     = "TECHSTORE_APP_ENV"
	EnvPort       = "TECHSTORE_APP_PORT"
	EnvLogLevel   = "TECHSTORE_LOG_LEVEL"
	EnvMongoURI   = "TECHSTORE_MONGO_URI"
	EnvMongoDB    = "TECHSTORE_MONGO_DB"
	EnvCORSOrigin = "TECHSTORE_CORS_ALLOWED_ORIGINS"
)

type Config struct {
	App     AppConfig
	Mongo   MongoConfig
	CORS    CORSConfig
	Catalog CatalogConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TECHSTORE_APP_ENV" required:"true"`
	Port         string `envconfig:"TECHSTORE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"TECHSTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TECHSTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type MongoConfig struct {
	URI      string `envconfig:"TECHSTORE_MONGO_URI" required:"true"`
	Database string `envconfig:"TECHSTORE_MONGO_DB" required:"true"`

	ConnectTimeout time.Duration `envconfig:"TECHSTORE_MONGO_CONNECT_TIMEOUT" default:"10s"`
	MaxPoolSize    uint64        `envconfig:"TECHSTORE_MONGO_MAX_POOL_SIZE" default:"20"`
	MinPoolSize    uint64        `envconfig:"TECHSTORE_MONGO_MIN_POOL_SIZE" default:"0"`
}

type CORSConfig struct {
	AllowedOrigins string `envconfig:"TECHSTORE_CORS_ALLOWED_ORIGINS" default:"*"`
}

// Origins splits the configured comma-separated origin list.
func (c CORSConfig) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

type CatalogConfig struct {
	DefaultListLimit int `envconfig:"TECHSTORE_CATALOG_DEFAULT_LIST_LIMIT" default:"50"`
	MaxListLimit     int `envconfig:"TECHSTORE_CATALOG_MAX_LIST_LIMIT" default:"200"`
}
