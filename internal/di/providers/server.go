package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/vishalPatil7/Binaried/internal/api"
	"github.com/vishalPatil7/Binaried/internal/config"
	"github.com/vishalPatil7/Binaried/internal/logger"
	"github.com/vishalPatil7/Binaried/internal/service"
	"github.com/vishalPatil7/Binaried/internal/validation"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server and starts it in the background.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	interpreter := do.MustInvoke[*service.Interpreter](i)
	movies := do.MustInvoke[*service.MovieService](i)
	validator := do.MustInvoke[*validation.Validator](i)

	handler := api.NewServer(interpreter, movies, validator, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv}, nil
}
