package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baharkarakas/bank-accounts-api/internal/api"
	"github.com/baharkarakas/bank-accounts-api/internal/config"
	"github.com/baharkarakas/bank-accounts-api/internal/db"
	"github.com/baharkarakas/bank-accounts-api/internal/logger"
	"github.com/baharkarakas/bank-accounts-api/internal/metrics"
	repo "github.com/baharkarakas/bank-accounts-api/internal/repository"
	"github.com/baharkarakas/bank-accounts-api/internal/repository/memory"
	"github.com/baharkarakas/bank-accounts-api/internal/repository/postgres"
	"github.com/baharkarakas/bank-accounts-api/internal/services"
	"github.com/baharkarakas/bank-accounts-api/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var accounts repo.BankAccounts
	var audits repo.AuditLogs

	if os.Getenv("APP_STORE") == "memory" {
		log.Info("using in-memory store")
		m := memory.NewRepositories()
		accounts, audits = m.BankAccounts, m.AuditLogs
	} else {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("db connect", "err", err)
			os.Exit(1)
		}
		defer pool.Close()

		if os.Getenv("APP_MIGRATE") == "true" {
			if err := db.RunMigrations(ctx, pool); err != nil {
				log.Error("migrations", "err", err)
				os.Exit(1)
			}
		}

		repos := postgres.NewRepositories(pool)
		accounts, audits = repos.BankAccounts, repos.AuditLogs
	}

	metrics.Init()

	wp := worker.NewPool(4)
	defer wp.Stop()

	svc := services.NewAccountService(accounts, audits, wp)
	r := api.NewRouter(cfg, svc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
