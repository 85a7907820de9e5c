package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		TMDB:   TMDBConfig{BaseURL: "https://api.themoviedb.org/3"},
		OpenAI: OpenAIConfig{BaseURL: "https://api.openai.com/v1", Model: "gpt-4o-mini", MaxTokens: 400},
	}
}

func TestBuildConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := buildConfig(configFlags{})
		require.NoError(t, err)

		assert.Equal(t, "development", cfg.App.Environment)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
		assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
		assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
		assert.Equal(t, 400, cfg.OpenAI.MaxTokens)
	})

	t.Run("credentials come from the environment", func(t *testing.T) {
		t.Setenv("TMDB_ACCESS_TOKEN", "tmdb-token")
		t.Setenv("OPENAI_API_KEY", "openai-key")

		cfg, err := buildConfig(configFlags{})
		require.NoError(t, err)

		assert.Equal(t, "tmdb-token", cfg.TMDB.AccessToken)
		assert.Equal(t, "openai-key", cfg.OpenAI.APIKey)
	})

	t.Run("max tokens from env", func(t *testing.T) {
		t.Setenv("OPENAI_MAX_TOKENS", "250")

		cfg, err := buildConfig(configFlags{})
		require.NoError(t, err)
		assert.Equal(t, 250, cfg.OpenAI.MaxTokens)
	})

	t.Run("flags win over env", func(t *testing.T) {
		t.Setenv("OPENAI_MODEL", "gpt-4o")

		cfg, err := buildConfig(configFlags{openAIModel: "gpt-4.1-mini"})
		require.NoError(t, err)
		assert.Equal(t, "gpt-4.1-mini", cfg.OpenAI.Model)
	})

	t.Run("bad timeout fails", func(t *testing.T) {
		_, err := buildConfig(configFlags{readTimeout: "soon"})
		assert.ErrorContains(t, err, "invalid read timeout")
	})
}

func TestValidate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("empty environment", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Environment = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown environment", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Environment = "qa"
		assert.ErrorContains(t, cfg.Validate(), "invalid environment")
	})

	t.Run("unknown log level", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logger.Level = "verbose"
		assert.ErrorContains(t, cfg.Validate(), "invalid log level")
	})

	t.Run("empty port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive max tokens", func(t *testing.T) {
		cfg := validConfig()
		cfg.OpenAI.MaxTokens = 0
		assert.ErrorContains(t, cfg.Validate(), "max tokens")
	})

	t.Run("missing credentials are allowed", func(t *testing.T) {
		cfg := validConfig()
		cfg.TMDB.AccessToken = ""
		cfg.OpenAI.APIKey = ""
		assert.NoError(t, cfg.Validate())
	})
}

func TestGetConfigValue(t *testing.T) {
	t.Setenv("TEST_CONFIG_KEY", "from-env")

	assert.Equal(t, "from-flag", getConfigValue("from-flag", "TEST_CONFIG_KEY", "default"))
	assert.Equal(t, "from-env", getConfigValue("", "TEST_CONFIG_KEY", "default"))
	assert.Equal(t, "default", getConfigValue("", "TEST_CONFIG_KEY_UNSET", "default"))
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("parses keys and strips quotes", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".env")
		content := "# comment\n\nTEST_ENVFILE_TOKEN=\"abc123\"\nTEST_ENVFILE_MODEL=gpt-4o-mini\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		t.Setenv("TEST_ENVFILE_TOKEN", "")
		t.Setenv("TEST_ENVFILE_MODEL", "")
		os.Unsetenv("TEST_ENVFILE_TOKEN")
		os.Unsetenv("TEST_ENVFILE_MODEL")

		require.NoError(t, loadEnvFile(path))
		assert.Equal(t, "abc123", os.Getenv("TEST_ENVFILE_TOKEN"))
		assert.Equal(t, "gpt-4o-mini", os.Getenv("TEST_ENVFILE_MODEL"))
	})

	t.Run("real env vars win over file entries", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(path, []byte("TEST_ENVFILE_WINNER=file\n"), 0o600))
		t.Setenv("TEST_ENVFILE_WINNER", "env")

		require.NoError(t, loadEnvFile(path))
		assert.Equal(t, "env", os.Getenv("TEST_ENVFILE_WINNER"))
	})

	t.Run("missing file returns an error", func(t *testing.T) {
		assert.Error(t, loadEnvFile(filepath.Join(t.TempDir(), "nope.env")))
	})

	t.Run("malformed line", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(path, []byte("NOT A PAIR\n"), 0o600))
		assert.ErrorContains(t, loadEnvFile(path), "invalid format")
	})
}
