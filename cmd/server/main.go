package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/chinpangura/outreach-api/api/swagger"
	"github.com/chinpangura/outreach-api/internal/handler"
	"github.com/chinpangura/outreach-api/internal/middleware"
	"github.com/chinpangura/outreach-api/internal/repository"
	"github.com/chinpangura/outreach-api/internal/service"
	"github.com/chinpangura/outreach-api/pkg/cache"
	"github.com/chinpangura/outreach-api/pkg/config"
	"github.com/chinpangura/outreach-api/pkg/database"
	"github.com/chinpangura/outreach-api/pkg/jobs"
	"github.com/chinpangura/outreach-api/pkg/logger"
	corsmiddleware "github.com/chinpangura/outreach-api/pkg/middleware/cors"
	reqidmiddleware "github.com/chinpangura/outreach-api/pkg/middleware/requestid"
)

// @title Outreach Campaign API
// @version 1.0.0
// @description Donation campaign backend: donations, campaign progress and newsletter signups
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	cacheEnabled := cfg.Cache.Enabled
	if cacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, stats cache disabled", "error", err)
			cacheEnabled = false
		} else {
			repo := repository.NewCacheRepository(redisClient, logr)
			defer repo.Close() //nolint:errcheck
			cacheRepo = repo
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.StatsTTL, logr, cacheEnabled)

	validate := validator.New()

	var (
		donationSvc   *service.DonationService
		campaignSvc   *service.CampaignService
		newsletterSvc *service.NewsletterService
		exportSvc     *service.ExportService
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store := repository.NewMemoryStore()
		donationSvc = service.NewDonationService(store.Donations(), cacheSvc, validate, logr)
		campaignSvc = service.NewCampaignService(store.Campaigns(), donationSvc, validate, logr)
		newsletterSvc = service.NewNewsletterService(store.Newsletter(), validate, logr)
		if cfg.Exports.Enabled {
			exportSvc = service.NewExportService(store.Donations(), logr)
		}
		logr.Info("using volatile in-memory record store")
	case config.StorageDriverPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to database", "error", err)
		}
		defer db.Close() //nolint:errcheck

		donationRepo := repository.NewDonationRepository(db)
		donationSvc = service.NewDonationService(donationRepo, cacheSvc, validate, logr)
		campaignSvc = service.NewCampaignService(repository.NewCampaignRepository(db), donationSvc, validate, logr)
		newsletterSvc = service.NewNewsletterService(repository.NewNewsletterRepository(db), validate, logr)
		if cfg.Exports.Enabled {
			exportSvc = service.NewExportService(donationRepo, logr)
		}
	default:
		logr.Sugar().Fatalw("unknown storage driver", "driver", cfg.Storage.Driver)
	}

	if err := campaignSvc.Seed(ctx, cfg.Campaign); err != nil {
		logr.Sugar().Warnw("failed to seed campaign", "error", err)
	}

	if cacheSvc.Enabled() {
		refresher := jobs.NewRefresher("donation-stats", donationSvc.RefreshStats, jobs.RefresherConfig{
			Interval:   cfg.Cache.RefreshInterval,
			RunOnStart: true,
			Logger:     logr,
		})
		refresher.Start(ctx)
		defer refresher.Stop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	metricsHandler := handler.NewMetricsHandler(metricsSvc)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	donationHandler := handler.NewDonationHandler(donationSvc, nil)
	if exportSvc != nil {
		donationHandler = handler.NewDonationHandler(donationSvc, exportSvc)
	}
	campaignHandler := handler.NewCampaignHandler(campaignSvc)
	newsletterHandler := handler.NewNewsletterHandler(newsletterSvc)

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/donations", donationHandler.List)
		api.POST("/donations", donationHandler.Create)
		api.GET("/donations/stats", donationHandler.Stats)
		api.GET("/donations/export", donationHandler.Export)
		api.GET("/campaign", campaignHandler.Get)
		api.PUT("/campaign", campaignHandler.Update)
		api.POST("/newsletter/subscribe", newsletterHandler.Subscribe)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Warnw("graceful shutdown failed", "error", err)
	}
}
