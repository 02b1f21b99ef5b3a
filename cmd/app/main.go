package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"orderflow/api"
	"orderflow/cmd"
	_ "orderflow/docs"
	httpin "orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/generated/servers"
	"orderflow/internal/jobs"
	"orderflow/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zl := logger.Init(configs.Log.Mode, configs.Log.ToLoggerOptions())
	defer func() {
		_ = zl.Sync()
	}()
	sugar := zl.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := postgres.Open(configs.DB.ToDBConfig())
	if err != nil {
		sugar.Fatalw("database_open_failed", "driver", configs.DB.Driver, "error", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		sugar.Fatalw("database_migrate_failed", "error", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, sugar)
	if err != nil {
		sugar.Fatalw("composition_failed", "error", err)
	}

	publisher, closePublisher, err := app.CreateMessagePublisher(ctx)
	if err != nil {
		sugar.Fatalw("notification_sink_failed", "kind", configs.Sink.Kind, "error", err)
	}
	defer func() {
		if err := closePublisher(); err != nil {
			sugar.Warnw("notification_sink_close_failed", "error", err)
		}
	}()

	jobManager := jobs.NewJobManager(app.CreateOutboxRelayJob(publisher))
	if err = jobManager.StartAll(); err != nil {
		sugar.Fatalw("jobs_start_failed", "error", err)
	}
	defer jobManager.StopAll()

	e, err := newWebServer(app, configs)
	if err != nil {
		sugar.Fatalw("web_server_setup_failed", "error", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTP.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Errorw("web_server_failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	sugar.Infow("shutting_down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.HTTP.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		sugar.Warnw("web_server_shutdown_failed", "error", err)
	}
}

func newWebServer(app cmd.CompositionRoot, configs cmd.Config) (*echo.Echo, error) {
	doc, err := api.Load()
	if err != nil {
		return nil, fmt.Errorf("load contract: %w", err)
	}
	validator, err := httpin.RequestValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("build request validator: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(httpin.RequestLogger(logger.S()))
	e.Use(validator)
	if configs.Engine.RequestTimeout > 0 {
		e.Use(middleware.ContextTimeout(configs.Engine.RequestTimeout))
	}

	// @Summary Health check
	// @Tags Health
	// @Success 200 {string} string
	// @Router /health [get]
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, app.CreateServer())

	return e, nil
}
