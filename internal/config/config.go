package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Placeholder values shipped in the sample configuration. A backend still
// carrying them has not been configured.
const (
	PlaceholderEndpoint   = "Your_EndPoint"
	PlaceholderKey        = "Your_Key"
	PlaceholderDeployment = "Your_Deployment"
)

// History store kinds.
const (
	StoreFile     = "file"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// ErrUnknownStore is returned for a HISTORY_STORE value we can't serve.
var ErrUnknownStore = errors.New("unknown history store")

type Config struct {
	// Server
	Port string `env:"PORT" envDefault:"8085"`

	// Completion backend
	Backend Backend

	// History
	HistoryStore string `env:"HISTORY_STORE" envDefault:"file"`
	HistoryFile  string `env:"HISTORY_FILE" envDefault:"Data/ChatHistory.json"`
	DatabaseURL  string `env:"DATABASE_URL"`
	RedisURL     string `env:"REDIS_URL"`
}

// Backend selects and authenticates the remote completion service.
type Backend struct {
	Provider string `env:"AI_PROVIDER" envDefault:"azure"`

	// Azure OpenAI
	Endpoint   string `env:"AZURE_OPENAI_ENDPOINT" envDefault:"Your_EndPoint"`
	Key        string `env:"AZURE_OPENAI_KEY" envDefault:"Your_Key"`
	Deployment string `env:"AZURE_OPENAI_DEPLOYMENT" envDefault:"Your_Deployment"`
	APIVersion string `env:"AZURE_OPENAI_API_VERSION" envDefault:"2024-06-01"`

	// Gemini
	GeminiKey   string `env:"GEMINI_API_KEY" envDefault:"Your_Key"`
	GeminiModel string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`

	RequestTimeout time.Duration `env:"AI_REQUEST_TIMEOUT" envDefault:"60s"`
}

// Load reads the configuration from the environment, after loading .env if present.
func Load() (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()
	return parse(env.Options{})
}

// LoadBackend reads only the completion backend settings, for tools that keep no history.
func LoadBackend() (*Backend, error) {
	_ = godotenv.Load()
	return parseBackend(env.Options{})
}

func parseBackend(opts env.Options) (*Backend, error) {
	b := &Backend{}
	if err := env.ParseWithOptions(b, opts); err != nil {
		return nil, fmt.Errorf("parse backend config: %w", err)
	}
	return b, nil
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.HistoryStore {
	case StoreFile:
		if c.HistoryFile == "" {
			return fmt.Errorf("HISTORY_FILE is required for the %s store", StoreFile)
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s store", StorePostgres)
		}
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for the %s store", StoreRedis)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStore, c.HistoryStore)
	}
	return nil
}

// AzureConfigured reports whether the Azure endpoint and key are set to real values.
func (b Backend) AzureConfigured() bool {
	return b.Endpoint != "" && b.Endpoint != PlaceholderEndpoint &&
		b.Key != "" && b.Key != PlaceholderKey
}

// GeminiConfigured reports whether the Gemini key is set to a real value.
func (b Backend) GeminiConfigured() bool {
	return b.GeminiKey != "" && b.GeminiKey != PlaceholderKey
}
