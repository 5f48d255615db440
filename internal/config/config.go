package config

import (
	"github.com/caarlos0/env/v11"

	"emops/internal/config/configs"
)

// Config aggregates all configuration sections of the service. Fields are
// populated from environment variables using the caarlos0/env library; the
// nested structs carry an envPrefix so their fields parse with the given
// prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (prod, staging, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP configures the API server. Variables prefixed with HTTP_.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Variables prefixed with LOG_.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Variables prefixed with
	// PSQL_.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// AMQP configures the recompute event broker. Variables prefixed with
	// AMQP_.
	AMQP configs.AMQP `envPrefix:"AMQP_"`

	// Report configures business defaults of the reporting core.
	// Variables prefixed with REPORT_.
	Report configs.Report `envPrefix:"REPORT_"`
}

// Load reads configuration from environment variables into a Config.
// Every field falls back to its declared default when the variable is
// unset.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
