package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/auth"
	"github.com/sanuei/YoutubePlanner/internal/config"
	cronrunner "github.com/sanuei/YoutubePlanner/internal/cron"
	"github.com/sanuei/YoutubePlanner/internal/db"
	"github.com/sanuei/YoutubePlanner/internal/handler"
	"github.com/sanuei/YoutubePlanner/internal/logger"
	gormrepository "github.com/sanuei/YoutubePlanner/internal/repository/gorm"
	"github.com/sanuei/YoutubePlanner/internal/service"
)

func main() {
	cfgPath := os.Getenv("YTP_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("YTP_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	store := gormrepository.New(dbConn.Gorm)
	tokens := auth.NewManager(cfg.JWT)

	authSvc := &service.AuthService{Users: store, Tokens: tokens, Logger: logger}
	userSvc := &service.UserService{
		Users:      store,
		Scripts:    store,
		Channels:   store,
		Categories: store,
		Logger:     logger,
	}
	adminSvc := &service.AdminService{
		Users:      store,
		Scripts:    store,
		Channels:   store,
		Categories: store,
		Admin:      store,
		Logger:     logger,
	}
	categorySvc := &service.CategoryService{Repo: store, Logger: logger}
	channelSvc := &service.ChannelService{Repo: store, Scripts: store, Logger: logger}
	scriptSvc := &service.ScriptService{
		Repo:       store,
		Channels:   store,
		Categories: store,
		Logger:     logger,
	}
	mindMapSvc := &service.MindMapService{Repo: store, Logger: logger}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := service.EnsureAdmin(ctx, store, cfg.Admin, logger); err != nil {
		logger.Fatal("admin bootstrap failed", zap.Error(err))
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(corsConfig(cfg.CORS)))

	authMW := auth.RequireJWT(tokens)

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)
	authHandler := &handler.AuthHandler{Auth: authSvc, Logger: logger}
	authHandler.Register(engine)
	userHandler := &handler.UserHandler{Users: userSvc, Logger: logger}
	userHandler.Register(engine, authMW)
	adminHandler := &handler.AdminHandler{Admin: adminSvc, Logger: logger}
	adminHandler.Register(engine, authMW)
	categoryHandler := &handler.CategoryHandler{Categories: categorySvc, Logger: logger}
	categoryHandler.Register(engine, authMW)
	channelHandler := &handler.ChannelHandler{Channels: channelSvc, Logger: logger}
	channelHandler.Register(engine, authMW)
	scriptHandler := &handler.ScriptHandler{Scripts: scriptSvc, Logger: logger}
	scriptHandler.Register(engine, authMW)
	mindMapHandler := &handler.MindMapHandler{MindMaps: mindMapSvc, Logger: logger}
	mindMapHandler.Register(engine, authMW)

	cronRunner := cronrunner.New(logger, ctx)
	if cfg.Purge.Enabled {
		purgeSvc := &service.PurgeService{
			Channels:  store,
			MindMaps:  store,
			Retention: cfg.Purge.Retention,
			Logger:    logger,
		}
		if _, err := cronRunner.Add(cfg.Purge.Schedule, purgeSvc.Run); err != nil {
			logger.Warn("cron register purge failed", zap.Error(err))
		}
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	if len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*" {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = cfg.AllowOrigins
	c.AllowCredentials = true
	return c
}
