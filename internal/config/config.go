package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/sfxgrab/sfx-grabber/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// URL is the page scanned for audio file links.
	URL string `mapstructure:"url"`
	// OutputPath is the directory path where downloaded files and the manifest will be saved.
	OutputPath string `mapstructure:"output_path"`
	// Overwrite indicates whether same-named files are replaced instead of renamed.
	Overwrite bool `mapstructure:"overwrite"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// UserAgent overrides the built-in identifying User-Agent string. Empty uses the default.
	UserAgent string `mapstructure:"user_agent"`
	// RequestTimeout is the timeout for a single HTTP request (e.g., "60s", "2m").
	RequestTimeout string `mapstructure:"request_timeout"`
	// MaxConcurrentDownloads is the maximum number of files to download simultaneously.
	// 1 means strictly sequential downloads.
	MaxConcurrentDownloads int64 `mapstructure:"max_concurrent_downloads"`
	// DryRun indicates whether to list discovered links without downloading files.
	DryRun bool
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedRequestTimeout is the parsed HTTP request timeout.
	ParsedRequestTimeout time.Duration
}

const (
	// DefaultSourceURL is the page scanned when no URL is configured.
	DefaultSourceURL = "https://sfxengine.com/fr/sound-effects/chess"

	// DefaultOutputPath is the directory used when no output path is configured.
	DefaultOutputPath = "public/audio/chess"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".sfx-grabber.yaml"

	// DefaultLogLevel is the logging level used when none is configured.
	DefaultLogLevel = "info"

	// DefaultRequestTimeout is the HTTP request timeout used when none is configured.
	DefaultRequestTimeout = "60s"

	// DefaultMaxConcurrentDownloads keeps downloads strictly sequential unless configured otherwise.
	DefaultMaxConcurrentDownloads = 1

	// DefaultMaxLogLength is the default maximum size (in bytes) for logged HTTP dumps.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB
)

// Static error definitions for better error handling.
var (
	// ErrEmptySourceURL indicates that the page URL is missing.
	ErrEmptySourceURL = errors.New("url cannot be empty")
	// ErrInvalidSourceURL indicates that the page URL cannot be parsed or lacks a host.
	ErrInvalidSourceURL = errors.New("url must be an absolute URL with a host")
	// ErrUnsupportedURLScheme indicates that the page URL scheme is not http or https.
	ErrUnsupportedURLScheme = errors.New("url scheme must be http or https")
	// ErrEmptyOutputPath indicates that the output directory is missing.
	ErrEmptyOutputPath = errors.New("output_path cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is invalid.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidConcurrentDownloads indicates that the concurrent downloads count is invalid.
	ErrInvalidConcurrentDownloads = errors.New("max concurrent downloads must be a positive integer")
)

// LoadConfig loads configuration settings from a YAML file.
// A missing default config file is not an error: built-in defaults apply.
// An explicitly requested file that cannot be read is an error.
func LoadConfig(configFilename string) (*Config, error) {
	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if isExplicit || !(errors.As(err, &notFoundErr) || os.IsNotExist(err)) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("url", DefaultSourceURL)
	viper.SetDefault("output_path", DefaultOutputPath)
	viper.SetDefault("overwrite", false)
	viper.SetDefault("log_level", DefaultLogLevel)
	viper.SetDefault("user_agent", "")
	viper.SetDefault("request_timeout", DefaultRequestTimeout)
	viper.SetDefault("max_concurrent_downloads", DefaultMaxConcurrentDownloads)
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	pageURL := strings.TrimSpace(cfg.URL)
	if pageURL == "" {
		return ErrEmptySourceURL
	}

	cfg.URL = pageURL

	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSourceURL, err)
	}

	if parsedURL.Host == "" {
		return ErrInvalidSourceURL
	}

	scheme := strings.ToLower(parsedURL.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("%w: '%s'", ErrUnsupportedURLScheme, parsedURL.Scheme)
	}

	if strings.TrimSpace(cfg.OutputPath) == "" {
		return ErrEmptyOutputPath
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	if cfg.MaxConcurrentDownloads <= 0 {
		return ErrInvalidConcurrentDownloads
	}

	return nil
}
