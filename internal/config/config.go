// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Server ServerConfig
	TMDB   TMDBConfig
	OpenAI OpenAIConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string        // Server port (default: 8080)
	ReadTimeout  time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout time.Duration // HTTP write timeout (default: 15s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 60s)
}

// TMDBConfig holds TMDB API configuration.
type TMDBConfig struct {
	BaseURL     string
	AccessToken string
}

// OpenAIConfig holds OpenAI API configuration.
type OpenAIConfig struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
}

// configFlags holds the raw command-line flag values feeding buildConfig.
type configFlags struct {
	env           string
	logLevel      string
	serverPort    string
	readTimeout   string
	writeTimeout  string
	idleTimeout   string
	tmdbBaseURL   string
	openAIBaseURL string
	openAIModel   string
	maxTokens     string
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")

	serverPort := flag.String("port", "", "Server port (default: 8080)")
	readTimeout := flag.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flag.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := flag.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")

	tmdbBaseURL := flag.String("tmdb-base-url", "", "TMDB API base URL")
	openAIBaseURL := flag.String("openai-base-url", "", "OpenAI API base URL")
	openAIModel := flag.String("openai-model", "", "OpenAI model for query interpretation (default: gpt-4o-mini)")
	maxTokens := flag.String("openai-max-tokens", "", "Completion token cap for query interpretation (default: 400)")

	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	return buildConfig(configFlags{
		env:           *env,
		logLevel:      *logLevel,
		serverPort:    *serverPort,
		readTimeout:   *readTimeout,
		writeTimeout:  *writeTimeout,
		idleTimeout:   *idleTimeout,
		tmdbBaseURL:   *tmdbBaseURL,
		openAIBaseURL: *openAIBaseURL,
		openAIModel:   *openAIModel,
		maxTokens:     *maxTokens,
	})
}

// buildConfig assembles and validates the config from flag values and the
// environment.
func buildConfig(flags configFlags) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(flags.env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(flags.logLevel, "LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port: getConfigValue(flags.serverPort, "SERVER_PORT", "8080"),
		},
		TMDB: TMDBConfig{
			BaseURL:     getConfigValue(flags.tmdbBaseURL, "TMDB_BASE_URL", "https://api.themoviedb.org/3"),
			AccessToken: getConfigValue("", "TMDB_ACCESS_TOKEN", ""),
		},
		OpenAI: OpenAIConfig{
			BaseURL:   getConfigValue(flags.openAIBaseURL, "OPENAI_BASE_URL", "https://api.openai.com/v1"),
			APIKey:    getConfigValue("", "OPENAI_API_KEY", ""),
			Model:     getConfigValue(flags.openAIModel, "OPENAI_MODEL", "gpt-4o-mini"),
			MaxTokens: getIntConfigValue(flags.maxTokens, "OPENAI_MAX_TOKENS", 400),
		},
	}

	readTimeoutStr := getConfigValue(flags.readTimeout, "SERVER_READ_TIMEOUT", "15s")
	readTimeoutDuration, err := time.ParseDuration(readTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid read timeout %q: %w", readTimeoutStr, err)
	}
	cfg.Server.ReadTimeout = readTimeoutDuration

	writeTimeoutStr := getConfigValue(flags.writeTimeout, "SERVER_WRITE_TIMEOUT", "15s")
	writeTimeoutDuration, err := time.ParseDuration(writeTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid write timeout %q: %w", writeTimeoutStr, err)
	}
	cfg.Server.WriteTimeout = writeTimeoutDuration

	idleTimeoutStr := getConfigValue(flags.idleTimeout, "SERVER_IDLE_TIMEOUT", "60s")
	idleTimeoutDuration, err := time.ParseDuration(idleTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid idle timeout %q: %w", idleTimeoutStr, err)
	}
	cfg.Server.IdleTimeout = idleTimeoutDuration

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
// API credentials are deliberately not checked here; missing or bad
// credentials surface as upstream errors on the requests that need them.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Server.Port == "" {
		return errors.New("server port cannot be empty")
	}

	if c.OpenAI.MaxTokens <= 0 {
		return errors.New("openai max tokens must be positive")
	}

	return nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getIntConfigValue returns an int from flag, env var, or default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	var result int
	if _, err := fmt.Sscanf(strValue, "%d", &result); err != nil {
		return defaultValue
	}
	return result
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)

		// Real env vars take precedence over .env entries.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
