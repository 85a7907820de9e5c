package providers

import (
	"github.com/samber/do/v2"

	"github.com/vishalPatil7/Binaried/internal/config"
	"github.com/vishalPatil7/Binaried/internal/llm"
	"github.com/vishalPatil7/Binaried/internal/logger"
	"github.com/vishalPatil7/Binaried/internal/metadata/tmdb"
	"github.com/vishalPatil7/Binaried/internal/service"
	"github.com/vishalPatil7/Binaried/internal/validation"
)

// ProvideValidator provides the request validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideInterpreter provides the query interpreter.
func ProvideInterpreter(i do.Injector) (*service.Interpreter, error) {
	cfg := do.MustInvoke[*config.Config](i)
	provider := do.MustInvoke[llm.Provider](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewInterpreter(provider, cfg.OpenAI.MaxTokens, log.WithComponent("interpreter").Logger), nil
}

// ProvideMovieService provides the movie resolution service.
func ProvideMovieService(i do.Injector) (*service.MovieService, error) {
	catalog := do.MustInvoke[*tmdb.Client](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewMovieService(catalog, log.WithComponent("movies").Logger), nil
}
