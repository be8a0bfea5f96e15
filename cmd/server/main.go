package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/soilhealth-et/portal/api/handler"
	"github.com/soilhealth-et/portal/internal/config"
	"github.com/soilhealth-et/portal/internal/infrastructure/gemini"
	"github.com/soilhealth-et/portal/internal/infrastructure/monitor"
	"github.com/soilhealth-et/portal/internal/middleware"
	"github.com/soilhealth-et/portal/internal/router"
	"github.com/soilhealth-et/portal/internal/services"
	"github.com/soilhealth-et/portal/internal/services/lifecycle"
	"github.com/soilhealth-et/portal/pkg/httpcontext"
	"github.com/soilhealth-et/portal/pkg/logger"
	"github.com/soilhealth-et/portal/repository/bolt"
	advisorUC "github.com/soilhealth-et/portal/usecase/advisor"
	"github.com/soilhealth-et/portal/usecase/authgate"
	brandingUC "github.com/soilhealth-et/portal/usecase/branding"
	catalogUC "github.com/soilhealth-et/portal/usecase/catalog"
	contentUC "github.com/soilhealth-et/portal/usecase/content"
	layoutUC "github.com/soilhealth-et/portal/usecase/layout"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	contentRepo, err := bolt.Open(cfg.Store.Path, cfg.Store.Bucket)
	if err != nil {
		zapLogger.Fatal("failed to open content store", zap.Error(err))
	}
	manager.Register("content_store", func(ctx context.Context) error {
		return contentRepo.Close()
	})

	store := contentUC.New(contentRepo, zapLogger)
	store.Load(appCtx)

	advisorClient := gemini.New(gemini.Config{
		APIKey:  cfg.Advisor.APIKey,
		Model:   cfg.Advisor.Model,
		BaseURL: cfg.Advisor.BaseURL,
		Timeout: cfg.Advisor.Timeout,
	}, zapLogger)
	if !advisorClient.Configured() {
		zapLogger.Warn("advisor api key missing, chat will answer with fallback text")
	}

	mon := monitor.New(contentRepo, advisorClient, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	if cfg.Maintenance.Enabled {
		maintenance := services.NewMaintenance(contentRepo, cfg.Maintenance.Schedule, zapLogger)
		if err := maintenance.Start(); err != nil {
			zapLogger.Fatal("maintenance schedule invalid", zap.Error(err))
		}
		manager.Register("maintenance", func(ctx context.Context) error {
			maintenance.Stop(ctx)
			return nil
		})
	}

	gate := authgate.New(store, authgate.PlainVerifier{}, cfg.Session.Secret, cfg.Session.TTL, zapLogger)
	brandingUseCase := brandingUC.New(store, zapLogger)
	layoutUseCase := layoutUC.New(store, layoutUC.Options{}, zapLogger)
	catalogUseCase := catalogUC.New(store, zapLogger)
	advisorUseCase := advisorUC.New(store, advisorClient, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:    apiHandler.NewAuthHandler(gate, ctxAdapter, zapLogger),
		Content: apiHandler.NewContentHandler(store, brandingUseCase, ctxAdapter, zapLogger),
		Layout:  apiHandler.NewLayoutHandler(layoutUseCase, ctxAdapter, zapLogger),
		Catalog: apiHandler.NewCatalogHandler(catalogUseCase, ctxAdapter, zapLogger),
		Library: apiHandler.NewLibraryHandler(catalogUseCase, ctxAdapter, zapLogger),
		Advisor: apiHandler.NewAdvisorHandler(advisorUseCase, ctxAdapter, zapLogger),
		Health:  apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	adminOnly := middleware.AdminAuth(gate.Secret(), authgate.AdminRole, zapLogger)
	r := router.New(handlers, adminOnly)

	server := &fasthttp.Server{
		Handler:            r.Handler,
		ReadTimeout:        cfg.HTTP.ReadTimeout,
		WriteTimeout:       cfg.HTTP.WriteTimeout,
		IdleTimeout:        cfg.HTTP.IdleTimeout,
		MaxRequestBodySize: cfg.HTTP.MaxBodySize,
		Name:               cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
