package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/amirasaad/ledger/docs"
	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/webapi"
	log "github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// @title Ledger API
// @version 1.0.0
// @description Authenticate employees, create accounts, check balances, transfer funds, get transfer history
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger

	fiberApp := webapi.SetupApp(app.New(deps, cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting server",
			"env", cfg.Env,
			"address", addr,
			"scheme", cfg.Server.Scheme,
		)
		return fiberApp.Listen(addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down server", "timeout", cfg.Server.ShutdownTimeout)
		if err := fiberApp.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if closer, ok := deps.RateLimitStorage.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				logger.Warn("Failed to close rate limit storage", slog.Any("error", err))
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("Server stopped")
	return nil
}
