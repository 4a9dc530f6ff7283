package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_PEER_TIMEOUT bounds every cross-party wait in the scenarios
	PeerTimeout time.Duration `envconfig:"E2E_PEER_TIMEOUT" default:"5s"`
	// E2E_EVENT_TIMEOUT bounds how long a scenario waits for an observer event
	EventTimeout time.Duration `envconfig:"E2E_EVENT_TIMEOUT" default:"3s"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_LOG_LEVEL controls node verbosity during scenarios
	LogLevel string `envconfig:"E2E_LOG_LEVEL" default:"warn"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
