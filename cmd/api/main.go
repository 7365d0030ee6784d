package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inclusionnet/internal/adapter/repository/mysql"
	"inclusionnet/internal/app"
	"inclusionnet/internal/config"
	"inclusionnet/internal/infrastructure/cache"
	dbinfra "inclusionnet/internal/infrastructure/db"
	"inclusionnet/internal/logger"
	"inclusionnet/internal/scheduler"
)

func main() {
	cfg := config.Load()
	logger.Initialize(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		fatal("invalid configuration", err)
	}

	db, err := dbinfra.OpenGorm(cfg)
	if err != nil {
		fatal("open database", err)
	}
	if err := mysql.AutoMigrate(db); err != nil {
		fatal("migrate", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		fatal("open redis", err)
	}
	defer rdb.Close()

	a := app.New(cfg, db, rdb)
	if err := a.Auth.EnsureAdmin(context.Background(), cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		fatal("seed admin", err)
	}

	sched, err := scheduler.NewScheduler(a.Jobs, cfg.RequestExpirySpec)
	if err != nil {
		fatal("scheduler", err)
	}
	sched.Start()

	addr := ":" + cfg.AppPort
	go func() {
		logger.Info("listening", "addr", addr, "db_driver", cfg.DBDriver)
		if err := a.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	sched.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Echo.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func fatal(msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
