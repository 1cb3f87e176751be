package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Assembly AssemblyAIConfig
	Groq     GroqConfig
	Session  SessionConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// AssemblyAIConfig holds speech recognition backend configuration
type AssemblyAIConfig struct {
	APIKey        string  `envconfig:"ASSEMBLYAI_API_KEY"`
	LanguageCode  string  `envconfig:"ASSEMBLYAI_LANGUAGE" default:"en_us"`
	MinConfidence float64 `envconfig:"ASSEMBLYAI_MIN_CONFIDENCE" default:"0.45"`
	BaseURL       string  `envconfig:"ASSEMBLYAI_BASE_URL"`
}

// GroqConfig holds summarization backend configuration.
// An empty APIKey selects the extractive fallback summarizer at startup.
type GroqConfig struct {
	APIKey  string `envconfig:"GROQ_API_KEY"`
	BaseURL string `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	Model   string `envconfig:"GROQ_MODEL" default:"llama-3.3-70b-versatile"`
}

// SessionConfig holds session-level tunables
type SessionConfig struct {
	ExportTTL time.Duration `envconfig:"EXPORT_TTL" default:"1h"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Assembly.APIKey == "" {
		return fmt.Errorf("ASSEMBLYAI_API_KEY is required")
	}
	if c.Assembly.MinConfidence < 0 || c.Assembly.MinConfidence > 1 {
		return fmt.Errorf("ASSEMBLYAI_MIN_CONFIDENCE must be between 0 and 1")
	}
	if c.Session.ExportTTL <= 0 {
		return fmt.Errorf("EXPORT_TTL must be positive")
	}
	return nil
}

// SummaryBackendConfigured reports whether the AI summarizer can be used.
// Strategy selection happens once at startup based on this.
func (c *Config) SummaryBackendConfigured() bool {
	return c.Groq.APIKey != ""
}
