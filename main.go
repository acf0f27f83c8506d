package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/c14220110/klinik-sentosa/config"
	"github.com/c14220110/klinik-sentosa/internal/klinik/store"
	"github.com/c14220110/klinik-sentosa/internal/routes"
	"github.com/c14220110/klinik-sentosa/internal/scheduler"
	"github.com/c14220110/klinik-sentosa/pkg/logging"
	"github.com/c14220110/klinik-sentosa/pkg/storage/kv"
	"github.com/c14220110/klinik-sentosa/ws"
)

func main() {
	cfg := config.LoadConfig()

	log, err := logging.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	if err := cfg.EnvFileError(); err != nil {
		log.Warnw(".env file not found, relying on environment variables", "error", err)
	}

	if err := run(cfg, log); err != nil {
		log.Fatalw("klinik-sentosa stopped with error", "error", err)
	}
}

func run(cfg *config.Config, log *zap.SugaredLogger) error {
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	backend, err := kv.OpenBoltStore(cfg.StorageDir)
	if err != nil {
		return err
	}
	defer backend.Close()
	clinic, err := store.New(backend,
		store.WithLogger(log.Named("store")),
		store.WithLocation(loc),
		store.WithDoctorName(cfg.DoctorName),
		store.WithPharmacyStage(cfg.PharmacyStage),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := ws.NewHub(log.Named("ws"))
	go hub.Run(ctx)

	jobs := scheduler.NewScheduler(clinic, cfg.DailyClosingCron, loc, log.Named("scheduler"))
	if err := jobs.Start(); err != nil {
		return err
	}
	defer jobs.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Infow("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))
	routes.Init(e, clinic, hub, []byte(cfg.JWTSecret), log)

	errCh := make(chan error, 1)
	go func() {
		log.Infow("klinik-sentosa is up and running", "port", cfg.Port, "storage", cfg.StorageDir)
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Infow("shutting down")
	return e.Shutdown(shutdownCtx)
}
