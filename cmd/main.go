// Package main wires the HTTP server for the lobby service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/config"
	api "github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/oapi"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/repository"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/transport/http/middleware"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/transport/http/server/handlers-fiber"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/internal/usecase"
	"github.com/UMM-CSci-3601-S25/iteration-1-potatogroup-iteration-1/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, cfg.Storage.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "backend", cfg.Storage.Backend, "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	uc := usecase.New(log, ctx, repo, cfg.HTTP.RequestTimeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	api.RegisterHandlers(serv, h)

	go func() {
		log.Infow("listening", "addr", cfg.ServerAddr(), "backend", cfg.Storage.Backend)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	if err := serv.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout, "error", err)
	}
}
