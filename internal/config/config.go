package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/futig/shortlist-web/internal/pkg/retry"
	"github.com/joho/godotenv"
)

const (
	ContentEncodingBuffer = "buffer"
	ContentEncodingBase64 = "base64"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	// RequestTimeout bounds page and API requests. Uploads are not bounded.
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" envDefault:"60s"`

	// Filtering service configuration
	FilterConnectorCfg FilterConnectorConfig `envPrefix:"FILTER_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// File upload configuration
	FileUploadCfg FileUploadConfig `envPrefix:"FILE_UPLOAD_"`

	// Submit form behaviour
	SubmitCfg SubmitConfig `envPrefix:"SUBMIT_"`

	// Per-browser UI state
	StateCfg StateConfig `envPrefix:"STATE_"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

type FilterConnectorConfig struct {
	HTTPClientConfig
	Endpoint        string               `env:"ENDPOINT" envDefault:"/api/filter"`
	ContentEncoding string               `env:"CONTENT_ENCODING" envDefault:"buffer"`
	// ContentType is sent with the payload when set. Empty sends no Content-Type.
	ContentType string               `env:"CONTENT_TYPE"`
	Retry       pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type HTTPClientConfig struct {
	// Zero means no timeout.
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"0s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"30s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"0s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL"`
}

// FileUploadConfig holds file upload limits
type FileUploadConfig struct {
	MaxFileSize   int64 `env:"MAX_FILE_SIZE" envDefault:"10485760"`   // 10 MiB
	MaxTotalSize  int64 `env:"MAX_TOTAL_SIZE" envDefault:"104857600"` // 100 MiB
	MaxFileCount  int   `env:"MAX_FILE_COUNT" envDefault:"100"`
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"33554432"` // 32 MiB kept in memory, the rest spills to disk
}

type SubmitConfig struct {
	StrictTopN      bool          `env:"STRICT_TOP_N" envDefault:"false"`
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"2s"`
}

type StateConfig struct {
	TTL             time.Duration `env:"TTL" envDefault:"24h"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"10m"`
	CookieName      string        `env:"COOKIE_NAME" envDefault:"shortlist_session"`
	CookieSecure    bool          `env:"COOKIE_SECURE" envDefault:"false"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Missing env file is fine when variables are set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	return cfg, nil
}

// Parse reads the configuration from the process environment and validates it.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if !cfg.EnableMocks && cfg.FilterConnectorCfg.Url == "" {
		errors = append(errors, "FILTER_SERVICE_URL is required unless ENABLE_MOCKS is set")
	}

	switch cfg.FilterConnectorCfg.ContentEncoding {
	case ContentEncodingBuffer, ContentEncodingBase64:
	default:
		errors = append(errors, fmt.Sprintf("FILTER_CONTENT_ENCODING must be %q or %q, got %q",
			ContentEncodingBuffer, ContentEncodingBase64, cfg.FilterConnectorCfg.ContentEncoding))
	}

	if cfg.FilterConnectorCfg.Retry.Attempts < 1 || cfg.FilterConnectorCfg.Retry.Attempts > 10 {
		errors = append(errors, fmt.Sprintf("FILTER_RETRY_ATTEMPTS must be between 1 and 10, got %d", cfg.FilterConnectorCfg.Retry.Attempts))
	}

	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("SERVER_REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout))
	}

	if cfg.FileUploadCfg.MaxFileCount < 1 {
		errors = append(errors, fmt.Sprintf("FILE_UPLOAD_MAX_FILE_COUNT must be positive, got %d", cfg.FileUploadCfg.MaxFileCount))
	}

	if cfg.FileUploadCfg.MaxFileSize > cfg.FileUploadCfg.MaxTotalSize {
		errors = append(errors, fmt.Sprintf("FILE_UPLOAD_MAX_FILE_SIZE (%d) must not exceed FILE_UPLOAD_MAX_TOTAL_SIZE (%d)",
			cfg.FileUploadCfg.MaxFileSize, cfg.FileUploadCfg.MaxTotalSize))
	}

	if cfg.StateCfg.TTL <= 0 {
		errors = append(errors, fmt.Sprintf("STATE_TTL must be positive, got %s", cfg.StateCfg.TTL))
	}

	if cfg.StateCfg.CookieName == "" {
		errors = append(errors, "STATE_COOKIE_NAME must not be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
