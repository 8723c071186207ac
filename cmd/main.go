// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/najah-dev/campus-events/internal/config"
	"github.com/najah-dev/campus-events/internal/database"
	"github.com/najah-dev/campus-events/internal/fixture"
	"github.com/najah-dev/campus-events/internal/handler"
	"github.com/najah-dev/campus-events/internal/repository"
	"github.com/najah-dev/campus-events/internal/service"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	venues := fixture.Venues()

	// ── 1. Pick the stores ───────────────────────────────────────────────
	var (
		users repository.UserStore
		slots repository.SlotStore
	)
	if cfg.UsePostgres() {
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := database.EnsureSchema(ctx, pool); err != nil {
			slog.Error("database", "error", err)
			os.Exit(1)
		}

		slotStore := repository.NewPostgresSlotStore(pool)
		if err := slotStore.Seed(ctx, venues); err != nil {
			slog.Error("seed venues", "error", err)
			os.Exit(1)
		}

		users = repository.NewPostgresUserStore(pool)
		slots = slotStore
		slog.Info("connected to postgres")
	} else {
		users = repository.NewMemoryUserStore()
		slots = repository.NewMemorySlotStore(venues)
		slog.Info("running on in-memory stores")
	}

	// ── 2. Sessions ──────────────────────────────────────────────────────
	sessions := scs.New()
	sessions.Lifetime = cfg.SessionLifetime
	sessions.Cookie.HttpOnly = true
	sessions.Cookie.SameSite = http.SameSiteLaxMode
	sessions.Cookie.Secure = !cfg.IsDevelopment()
	// Sessions are tab-scoped by default; RememberMe at login upgrades a
	// session to a durable cookie. scs only honors RememberMe when Persist
	// is off.
	sessions.Cookie.Persist = false

	// ── 3. Wire up layers ────────────────────────────────────────────────
	authSvc := service.NewAuthService(users)
	catalog := service.NewCatalog(fixture.Catalog())
	reservationSvc := service.NewReservationService(venues, slots)

	if cfg.SeedDemoUser {
		if _, err := authSvc.EnsureDemoUser(ctx); err != nil {
			slog.Error("seed demo user", "error", err)
			os.Exit(1)
		}
	}

	authHandler := handler.NewAuthHandler(authSvc, sessions)
	eventHandler := handler.NewEventHandler(catalog, sessions)
	reservationHandler := handler.NewReservationHandler(reservationSvc, sessions)

	// ── 4. Build the router ──────────────────────────────────────────────
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(handler.Logger)          // structured access log
	r.Use(handler.CORS)            // permissive CORS for demo
	r.Use(sessions.LoadAndSave)    // session cookie handling

	// Health
	r.Get("/health", handler.HealthCheck)

	// Auth routes
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/demo", authHandler.DemoLogin)
		r.Post("/logout", authHandler.Logout)
		r.Get("/session", authHandler.Session)
		r.Post("/forgot", authHandler.Forgot)
	})

	// Catalog and reservation routes
	r.Route("/events", func(r chi.Router) {
		r.Get("/", eventHandler.List)
		r.Get("/{id}", eventHandler.Get)
		r.Get("/{id}/venue", reservationHandler.Venue)

		r.Group(func(r chi.Router) {
			r.Use(handler.RequireUser(sessions))
			r.Put("/{id}/selection", reservationHandler.Select)
			r.Delete("/{id}/selection", reservationHandler.ClearSelection)
			r.Post("/{id}/reservations", reservationHandler.Reserve)
		})

		r.Group(func(r chi.Router) {
			r.Use(handler.RequireApprover(sessions))
			r.Get("/{id}/reservations", reservationHandler.ListReservations)
			r.Post("/{id}/slots/{slotID}/approve", reservationHandler.Approve)
		})
	})

	// ── 5. Start server with graceful shutdown ───────────────────────────
	srv := &http.Server{
		Addr:         cfg.ServerAddr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		slog.Info("server listening", "addr", cfg.ServerAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server", "error", err)
			os.Exit(1)
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
