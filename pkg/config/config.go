package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	API      APIConfig
	Redis    RedisConfig
	Realtime RealtimeConfig
	Session  SessionConfig
	Debug    DebugConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.API.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOCKROOM_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"STOCKROOM_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOCKROOM_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// APIConfig points the transport layer at the inventory backend. The base
// URL already includes the /api prefix; resource paths are appended to it.
type APIConfig struct {
	BaseURL string `envconfig:"STOCKROOM_API_BASE_URL" default:"http://localhost:3000/api"`
}

func (a *APIConfig) validate() error {
	trimmed := strings.TrimSpace(a.BaseURL)
	if trimmed == "" {
		return fmt.Errorf("%s must not be empty", EnvAPIBaseURL)
	}
	a.BaseURL = strings.TrimRight(trimmed, "/")
	return nil
}

// RedisConfig configures the realtime subscription channel. Leaving the URL
// and address empty disables realtime refresh entirely.
type RedisConfig struct {
	URL          string        `envconfig:"STOCKROOM_REDIS_URL"`
	Address      string        `envconfig:"STOCKROOM_REDIS_ADDR"`
	Password     string        `envconfig:"STOCKROOM_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOCKROOM_REDIS_DB" default:"0"`
	DialTimeout  time.Duration `envconfig:"STOCKROOM_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOCKROOM_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOCKROOM_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a realtime connection target was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type RealtimeConfig struct {
	Database string `envconfig:"STOCKROOM_REALTIME_DATABASE" default:"inventory-db"`
}

// SessionConfig locates the durable current-user record. An empty path
// falls back to a file under the user config directory.
type SessionConfig struct {
	Path string `envconfig:"STOCKROOM_SESSION_PATH"`
}

type DebugConfig struct {
	Addr string `envconfig:"STOCKROOM_DEBUG_ADDR" default:"127.0.0.1:9095"`
}
