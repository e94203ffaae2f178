package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server      ServerConfig
	OpenAI      OpenAIConfig
	Upload      UploadConfig
	Session     SessionConfig
	RedisConfig RedisConfig
	CacheEnable bool `env:"CACHE_ENABLE"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"redis:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"10m"`
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	Timeout         time.Duration `env:"SERVER_TIMEOUT" envDefault:"2m"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ThrottleLimit   int           `env:"SERVER_THROTTLE_LIMIT" envDefault:"50"`
}

type OpenAIConfig struct {
	APIKey     string `env:"OPENAI_API_KEY"`
	APIKeyFile string `env:"OPENAI_API_KEY_FILE" envDefault:"/run/secrets/openai_api_key"`
	// SecretErr is set when APIKeyFile exists but could not be read.
	SecretErr error
	BaseURL    string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Model      string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

type SessionConfig struct {
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// UploadConfig bounds inbound files. MaxBytes of zero means no limit.
type UploadConfig struct {
	MaxBytes int64 `env:"UPLOAD_MAX_BYTES" envDefault:"0"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.OpenAI.APIKey == "" {
		cfg.OpenAI.APIKey, cfg.OpenAI.SecretErr = readSecret(cfg.OpenAI.APIKeyFile)
	}
	return cfg, nil
}

// HasAPIKey reports whether a credential was found in the environment or the secret file.
func (c OpenAIConfig) HasAPIKey() bool {
	return c.APIKey != ""
}

// readSecret returns the trimmed content of path, or an empty string when the file does not exist.
func readSecret(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
