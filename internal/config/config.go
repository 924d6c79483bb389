package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type Config struct {
	Port           string        `env:"PORT" validate:"required,numeric"`
	WordSource     string        `env:"WORD_SOURCE" validate:"oneof=local remote"`
	WordListDir    string        `env:"WORDLIST_DIR" validate:"required"`
	RemoteURL      string        `env:"REMOTE_WORDS_URL" validate:"omitempty,url"`
	RemoteTimeout  time.Duration `env:"REMOTE_TIMEOUT" validate:"gte=0"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:"," validate:"dive,http_url"`
	RandomSeed     uint64        `env:"RANDOM_SEED"`
}

func Default() Config {
	return Config{
		Port:          "8080",
		WordSource:    "local",
		WordListDir:   "wordlists/verachell",
		RemoteURL:     "http://watchout4snakes.com/Random/RandomPhrase",
		RemoteTimeout: 10 * time.Second,
		AllowedOrigins: []string{
			"http://localhost:8000",
			"http://127.0.0.1:8000",
			"https://randnd.pigeon.life:8000",
		},
	}
}

// Load overlays environment variables on Default and validates the result.
func Load() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}
