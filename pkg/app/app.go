package app

import (
	"log/slog"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/pkg/service/transfer"
	"github.com/gofiber/fiber/v2"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
	// RateLimitStorage backs the request limiter. Nil means in-memory.
	RateLimitStorage fiber.Storage
}

type App struct {
	Deps            *Deps
	Config          *config.App
	AuthService     *auth.Service
	AccountService  *account.Service
	TransferService *transfer.Service
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:            deps,
		Config:          cfg,
		AuthService:     auth.New(cfg.Auth, deps.Logger),
		AccountService:  account.New(deps.Uow, deps.Logger),
		TransferService: transfer.New(deps.Uow, deps.Logger),
	}
}
