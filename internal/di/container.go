// Package di provides dependency injection configuration for the movie query service.
package di

import (
	"github.com/samber/do/v2"

	"github.com/vishalPatil7/Binaried/internal/config"
	"github.com/vishalPatil7/Binaried/internal/di/providers"
	"github.com/vishalPatil7/Binaried/internal/logger"
	"github.com/vishalPatil7/Binaried/internal/metadata/tmdb"
	"github.com/vishalPatil7/Binaried/internal/service"
	"github.com/vishalPatil7/Binaried/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Upstream clients
	do.Provide(injector, providers.ProvideTMDBClient)
	do.Provide(injector, providers.ProvideLLMProvider)

	// Business services
	do.Provide(injector, providers.ProvideInterpreter)
	do.Provide(injector, providers.ProvideMovieService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the server is running.
// This triggers lazy initialization of every provider.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*tmdb.Client](injector)
	_ = do.MustInvoke[*service.Interpreter](injector)
	_ = do.MustInvoke[*service.MovieService](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
