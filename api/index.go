// Package handler exposes the ledger API as a single net/http handler for
// serverless deployments.
package handler

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/webapi"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

var (
	once    sync.Once
	served  http.HandlerFunc
	initErr error
)

// Handler is the main entry point of the application.
// Think of it like the main() method
func Handler(w http.ResponseWriter, r *http.Request) {
	// This is needed to set the proper request path in `*fiber.Ctx`
	r.RequestURI = r.URL.String()

	once.Do(func() {
		served, initErr = build()
	})
	if initErr != nil {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"about:blank","title":"Internal Server Error","status":500,"detail":"service is not configured"}`))
		return
	}
	served.ServeHTTP(w, r)
}

// build wires the application once per process.
func build() (http.HandlerFunc, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load application configuration", "error", err)
		return nil, err
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		slog.Error("Failed to initialize dependencies", "error", err)
		return nil, err
	}
	return adaptor.FiberApp(webapi.SetupApp(app.New(deps, cfg))), nil
}
