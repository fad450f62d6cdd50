package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_REDIS_URL switches the scenario onto a real Redis stream medium
	RedisURL string `envconfig:"E2E_REDIS_URL"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_POLL_INTERVAL tunes the delivery loops for the scenario
	PollInterval time.Duration `envconfig:"E2E_POLL_INTERVAL" default:"25ms"`
	// E2E_WAIT_TIMEOUT bounds every "eventually delivered" assertion
	WaitTimeout time.Duration `envconfig:"E2E_WAIT_TIMEOUT" default:"5s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
