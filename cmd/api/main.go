// Package main is the entry point for the travel planner API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"

	"github.com/tripweaver/backend/internal/config"
	"github.com/tripweaver/backend/internal/handler"
	"github.com/tripweaver/backend/internal/middleware"
	"github.com/tripweaver/backend/internal/repo"
	"github.com/tripweaver/backend/internal/service"
	"github.com/tripweaver/backend/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	// A local .env file is a convenience for development; in production the
	// variables come from the real environment and the file is absent.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Money amounts serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections. Each new connection
	// registers the shopspring decimal codec so numeric columns scan
	// directly into decimal.Decimal.
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		slog.Error("invalid database url", "error", err)
		os.Exit(1)
	}
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Migrations -------------------------------------------------------
	// Apply pending migrations at startup from the embedded filesystem.
	// goose needs database/sql, so borrow one stdlib connection from the pool config.
	if err := runMigrations(poolCfg); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied")

	// --- Wiring -----------------------------------------------------------
	users := repo.NewUserRepo(pool)
	trips := repo.NewTripRepo(pool)
	dests := repo.NewDestinationRepo(pool)
	itin := repo.NewItineraryRepo(pool)
	accs := repo.NewAccommodationRepo(pool)
	acts := repo.NewActivityRepo(pool)
	notes := repo.NewNoteRepo(pool)
	cats := repo.NewBudgetCategoryRepo(pool)
	exps := repo.NewBudgetExpenseRepo(pool)
	summaries := repo.NewBudgetSummaryRepo(pool)

	srv := handler.NewServer(
		service.NewUserService(users),
		service.NewTripService(trips, users),
		service.NewDestinationService(trips, dests),
		service.NewItineraryService(trips, itin, acts, accs),
		service.NewAccommodationService(trips, accs),
		service.NewActivityService(trips, acts),
		service.NewNoteService(trips, notes),
		service.NewBudgetService(trips, cats, exps, summaries),
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// runMigrations applies all pending goose migrations using a short-lived
// database/sql connection derived from the pool's connection config.
func runMigrations(poolCfg *pgxpool.Config) error {
	db := stdlib.OpenDB(*poolCfg.ConnConfig)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	if _, err := provider.Up(context.Background()); err != nil {
		return err
	}
	return nil
}
