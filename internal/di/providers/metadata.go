package providers

import (
	"github.com/samber/do/v2"

	"github.com/vishalPatil7/Binaried/internal/config"
	"github.com/vishalPatil7/Binaried/internal/llm"
	"github.com/vishalPatil7/Binaried/internal/logger"
	"github.com/vishalPatil7/Binaried/internal/metadata/tmdb"
)

// ProvideTMDBClient provides the TMDB catalog client.
func ProvideTMDBClient(i do.Injector) (*tmdb.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.TMDB.AccessToken == "" {
		log.Warn("TMDB_ACCESS_TOKEN is not set, catalog requests will fail with 401")
	}

	client := tmdb.New(tmdb.Config{
		BaseURL:     cfg.TMDB.BaseURL,
		AccessToken: cfg.TMDB.AccessToken,
	}, log.WithComponent("tmdb").Logger)

	return client, nil
}

// ProvideLLMProvider provides the OpenAI completion client used for query
// interpretation.
func ProvideLLMProvider(i do.Injector) (llm.Provider, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.OpenAI.APIKey == "" {
		log.Warn("OPENAI_API_KEY is not set, query interpretation will fall back to top rated")
	}

	return llm.NewOpenAIProvider(llm.OpenAIConfig{
		BaseURL: cfg.OpenAI.BaseURL,
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
	}), nil
}
