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
	"gobnb-backend/internal/core/config"
	"gobnb-backend/internal/core/database"
	"gobnb-backend/internal/core/logger"
	"gobnb-backend/internal/core/server"
	"gobnb-backend/internal/media"
	"gobnb-backend/internal/repo"
	"gobnb-backend/internal/service"
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

	jwter := &auth.JWTer{
		Secret:     []byte(cfg.JWT.Secret),
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
		RefreshTTL: time.Duration(cfg.JWT.RefreshTokenTTLDay) * 24 * time.Hour,
	}

	resolver := media.NewResolver(cfg.Media.WebsiteURL, cfg.Media.URLPrefix)
	userSvc := service.NewUserService(repo.NewUserRepo(db), resolver)
	propSvc := service.NewPropertyService(repo.NewPropertyRepo(db), resolver, nil, 0)
	adminH := handler.NewAdminHandler(log, userSvc, propSvc)

	// 首次启动可用 ADMIN_EMAIL/ADMIN_PASSWORD 播种一个超级用户
	seedSuperuser(userSvc, log)

	r := router.NewAdminEngine(log, adminH, jwter)

	addr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	srv := server.BuildServer(addr, r, 5*time.Second, 10*time.Second, 60*time.Second)

	host4human := cfg.App.Admin.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.Admin.Port)
	log.Info("admin api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("admin_v1", baseURL+"/admin/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("admin api start FAILED", zap.Error(err))
		}
	}()
	log.Info("admin api started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("admin api stopped gracefully")
}

func seedSuperuser(users *service.UserService, l *zap.Logger) {
	email := os.Getenv("ADMIN_EMAIL")
	pass := os.Getenv("ADMIN_PASSWORD")
	if email == "" || pass == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	u, err := users.CreateSuperuser(ctx, "admin", email, pass)
	switch {
	case errors.Is(err, repo.ErrDuplicateEmail):
		// 已播种过
	case err != nil:
		l.Warn("seed superuser", zap.Error(err))
	default:
		l.Info("superuser created", zap.String("id", u.ID), zap.String("email", u.Email))
	}
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
