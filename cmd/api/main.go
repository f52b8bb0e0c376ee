package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gobnb-backend/internal/core/auth"
	"gobnb-backend/internal/core/cache"
	"gobnb-backend/internal/core/config"
	"gobnb-backend/internal/core/database"
	"gobnb-backend/internal/core/logger"
	"gobnb-backend/internal/core/server"
	"gobnb-backend/internal/domain"
	"gobnb-backend/internal/media"
	"gobnb-backend/internal/repo"
	"gobnb-backend/internal/service"
	"gobnb-backend/internal/storage"
	"gobnb-backend/internal/transport/http/handler"
	"gobnb-backend/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Property{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	jwter := &auth.JWTer{
		Secret:     []byte(cfg.JWT.Secret),
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
		RefreshTTL: time.Duration(cfg.JWT.RefreshTokenTTLDay) * 24 * time.Hour,
	}

	var listCache *cache.Cache
	if cfg.Redis.Addr != "" {
		listCache = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis list cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	resolver := media.NewResolver(cfg.Media.WebsiteURL, cfg.Media.URLPrefix)
	store := mustOpenStore(cfg, log)

	userRepo := repo.NewUserRepo(db)
	propRepo := repo.NewPropertyRepo(db)
	userSvc := service.NewUserService(userRepo, resolver)
	propSvc := service.NewPropertyService(propRepo, resolver, listCache,
		time.Duration(cfg.Redis.ListCacheTTLSec)*time.Second)

	propH := handler.NewPropertyHandler(log, propSvc, store)
	authH := handler.NewAuthHandler(log, userSvc, jwter, store)

	r := router.NewAPIEngine(log, jwter, propH, authH, router.APIOptions{
		CORSOrigins: cfg.CORS.AllowOrigins,
		ServeMedia:  cfg.Media.Driver == "local",
		MediaRoot:   cfg.Media.Root,
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("properties", baseURL+"/api/properties/"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}

func mustOpenStore(cfg *config.Config, l *zap.Logger) storage.Store {
	switch cfg.Media.Driver {
	case "minio":
		s, err := storage.NewMinIOStore(
			cfg.Media.MinIO.Endpoint,
			cfg.Media.MinIO.AccessKey,
			cfg.Media.MinIO.SecretKey,
			cfg.Media.MinIO.Bucket,
			cfg.Media.MinIO.UseSSL,
		)
		if err != nil {
			l.Fatal("minio open", zap.Error(err))
		}
		return s
	default:
		return storage.NewLocalStore(cfg.Media.Root)
	}
}
