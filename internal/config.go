package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// SecretEnvFile holds the access token on an operator machine.
const SecretEnvFile = ".env.secret"

type Config struct {
	// AccessToken may be left empty: the token is then read from stdin.
	AccessToken    string        `env:"RR_ACCESS_TOKEN"`
	TokenWait      time.Duration `env:"TOKEN_WAIT,default=30s" validate:"gt=0"`
	LogLevel       string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	ChannelTimeout time.Duration `env:"CHANNEL_TIMEOUT,default=10s" validate:"gt=0"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT,default=15s" validate:"gt=0"`
	MaxAttempts    int           `env:"MAX_ATTEMPTS,default=3" validate:"gte=1,lte=10"`
	PingWait       time.Duration `env:"PING_WAIT,default=1s" validate:"gt=0"`
	RoomsURL       string        `env:"ROOMS_URL,default=https://rooms.rec.net" validate:"url"`
	AccountsURL    string        `env:"ACCOUNTS_URL,default=https://accounts.rec.net" validate:"url"`
	MatchURL       string        `env:"MATCH_URL,default=https://match.rec.net" validate:"url"`
	ImagesURL      string        `env:"IMAGES_URL,default=https://apim.rec.net/apis/api/images" validate:"url"`
	// MetricsAddr enables the Prometheus endpoint when set, e.g. ":9090".
	MetricsAddr string `env:"METRICS_ADDR"`
}

// LoadConfig reads the given env files, when present, then the process
// environment. Variables already set in the environment win.
func LoadConfig(files ...string) (Config, error) {
	for _, file := range files {
		// A missing file is fine: the variables may come from the shell.
		_ = godotenv.Load(file)
	}

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}
