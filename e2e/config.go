package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

// Config drives the live suite. It runs only when a token and a room are set.
type Config struct {
	AccessToken string `envconfig:"RR_ACCESS_TOKEN"`
	Room        string `envconfig:"E2E_ROOM"`
	// E2E_USER is the participant wearing the receiver boards
	User string `envconfig:"E2E_USER"`
	// E2E_DEBUG_HTTP logs every request with its status
	DebugHTTP bool `envconfig:"E2E_DEBUG_HTTP" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

func (c Config) Enabled() bool {
	return c.AccessToken != "" && c.Room != ""
}
