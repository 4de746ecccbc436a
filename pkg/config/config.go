package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
)

const (
	EnvPrefix = "SELLERDASH"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv         = "SELLERDASH_APP_ENV"
	EnvPort           = "SELLERDASH_APP_PORT"
	EnvLogLevel       = "SELLERDASH_LOG_LEVEL"
	EnvLogWarnStack   = "SELLERDASH_LOG_WARN_STACK"
	EnvAPIBaseURL     = "SELLERDASH_API_BASE_URL"
	EnvAPITimeout     = "SELLERDASH_API_TIMEOUT"
	EnvAPIRequestID   = "SELLERDASH_API_REQUEST_ID"
	EnvAPIUserAgent   = "SELLERDASH_API_USER_AGENT"
	EnvAllowedOrigins = "SELLERDASH_GATEWAY_ALLOWED_ORIGINS"
	EnvOverviewWindow = "SELLERDASH_OVERVIEW_TIMEOUT"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Gateway GatewayConfig
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SELLERDASH_APP_ENV" default:"dev"`
	Port         string `envconfig:"SELLERDASH_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SELLERDASH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SELLERDASH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// APIConfig describes the seller backend the transport talks to.
type APIConfig struct {
	BaseURL   string        `envconfig:"SELLERDASH_API_BASE_URL" default:"https://api.sellerdash.com.br"`
	Timeout   time.Duration `envconfig:"SELLERDASH_API_TIMEOUT" default:"30s"`
	RequestID bool          `envconfig:"SELLERDASH_API_REQUEST_ID" default:"true"`
	UserAgent string        `envconfig:"SELLERDASH_API_USER_AGENT" default:"sellerdash-gateway"`
}

type GatewayConfig struct {
	AllowedOrigins  []string      `envconfig:"SELLERDASH_GATEWAY_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	OverviewTimeout time.Duration `envconfig:"SELLERDASH_OVERVIEW_TIMEOUT" default:"10s"`
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	switch strings.ToLower(strings.TrimSpace(c.App.Env)) {
	case AppEnvDev, AppEnvProd:
	default:
		err = multierr.Append(err, fmt.Errorf("%s must be %q or %q", EnvAppEnv, AppEnvDev, AppEnvProd))
	}

	if strings.TrimSpace(c.App.Port) == "" {
		err = multierr.Append(err, fmt.Errorf("%s is required", EnvPort))
	}

	if u, parseErr := url.Parse(strings.TrimSpace(c.API.BaseURL)); parseErr != nil || u.Scheme == "" || u.Host == "" {
		err = multierr.Append(err, fmt.Errorf("%s must be an absolute URL", EnvAPIBaseURL))
	} else if c.App.IsProd() && u.Scheme != "https" {
		err = multierr.Append(err, fmt.Errorf("%s must use https in %s", EnvAPIBaseURL, AppEnvProd))
	}

	if c.API.Timeout <= 0 {
		err = multierr.Append(err, fmt.Errorf("%s must be positive", EnvAPITimeout))
	}
	if c.Gateway.OverviewTimeout <= 0 {
		err = multierr.Append(err, fmt.Errorf("%s must be positive", EnvOverviewWindow))
	}

	return err
}
