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

	"github.com/cypherskull/hyperconnect/internal/config"
	"github.com/cypherskull/hyperconnect/internal/database"
	"github.com/cypherskull/hyperconnect/internal/handlers"
	authmw "github.com/cypherskull/hyperconnect/internal/middleware"
	"github.com/cypherskull/hyperconnect/internal/seed"
	"github.com/cypherskull/hyperconnect/internal/services"
	"github.com/cypherskull/hyperconnect/internal/sse"
	"github.com/cypherskull/hyperconnect/internal/store"
	"github.com/cypherskull/hyperconnect/internal/token"
	"github.com/cypherskull/hyperconnect/pkg/logger"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.Env, Level: cfg.LogLevel})

	ctx := context.Background()

	var db *database.DB
	if cfg.DatabaseURL != "" {
		db, err = database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	repo, err := loadStore(ctx, db, cfg.BcryptCost, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load marketplace data")
	}

	var codec token.Codec = token.PrefixCodec{}
	if cfg.SignedTokens() {
		codec = token.NewJWTCodec(cfg.TokenSecret, cfg.TokenExpiry)
	}

	hub := sse.NewHub()
	go hub.Run()

	opts := []services.Option{
		services.WithLatency(cfg.APILatency),
		services.WithBcryptCost(cfg.BcryptCost),
		services.WithPublisher(hub),
		services.WithLogger(log.With().Str("component", "api").Logger()),
	}
	if emailService := services.NewEmailService(cfg.SMTP); emailService.IsConfigured() {
		opts = append(opts, services.WithMailer(emailService))
	}
	api := services.NewAPI(repo, codec, opts...)

	authHandler := handlers.NewAuthHandler(api)
	userHandler := handlers.NewUserHandler(api)
	postHandler := handlers.NewPostHandler(api)
	sellerHandler := handlers.NewSellerHandler(api)
	inboxHandler := handlers.NewInboxHandler(api)
	enterpriseHandler := handlers.NewEnterpriseHandler(api)
	sseHandler := handlers.NewSSEHandler(hub)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", authmw.ImpersonateHeader},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	v1 := app.Group("/api/v1")

	v1.Post("/auth/login", authHandler.Login)
	v1.Post("/users", userHandler.Create)
	v1.Post("/enterprises", enterpriseHandler.Create)

	protected := v1.Group("")
	protected.Use(authmw.Auth(api.Guard()))

	protected.Get("/bootstrap", userHandler.Bootstrap)
	protected.Patch("/users/me", userHandler.UpdateMe)

	protected.Post("/posts", postHandler.Create)
	protected.Put("/posts/:id", postHandler.Update)
	protected.Post("/posts/:id/like", postHandler.Like)
	protected.Post("/posts/:id/bookmark", postHandler.Bookmark)
	protected.Post("/posts/:id/comments", postHandler.Comment)

	protected.Post("/sellers/:id/follow", sellerHandler.Follow)
	protected.Post("/sellers/:id/investment", sellerHandler.ToggleInvestment)
	protected.Put("/sellers/:id/due-diligence", sellerHandler.UpdateDueDiligence)
	protected.Put("/sellers/:id/tier", sellerHandler.UpdateTier)
	protected.Post("/sellers/:id/solutions/:solutionId/testimonials", sellerHandler.AddTestimonial)

	protected.Post("/connections", inboxHandler.SendConnectionRequest)
	protected.Post("/inbox/:id/respond", inboxHandler.Respond)
	protected.Patch("/inbox/:id", inboxHandler.UpdateStatus)

	protected.Post("/enterprises/:id/members/:userId/approve", enterpriseHandler.ApproveMember)

	protected.Get("/events", sseHandler.Connect)

	v1.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	stopFlush := make(chan struct{})
	flushDone := make(chan struct{})
	go func() {
		defer close(flushDone)
		if db == nil || cfg.SnapshotInterval <= 0 {
			return
		}
		ticker := time.NewTicker(cfg.SnapshotInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				flush(db, repo, log)
			case <-stopFlush:
				return
			}
		}
	}()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           app,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Bool("signed_tokens", cfg.SignedTokens()).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	close(stopFlush)
	<-flushDone
	if db != nil {
		flush(db, repo, log)
	}

	log.Info().Msg("server exited")
}

// loadStore restores the last snapshot, or the demo data when there is no
// database or it holds nothing yet.
func loadStore(ctx context.Context, db *database.DB, bcryptCost int, log zerolog.Logger) (*store.MemoryStore, error) {
	if db != nil {
		snap, err := db.LoadSnapshot(ctx)
		if err != nil {
			return nil, err
		}
		if !snap.Empty() {
			log.Info().Int("users", len(snap.Users)).Int("posts", len(snap.Posts)).Msg("restored snapshot")
			return store.FromSnapshot(snap), nil
		}
	}

	log.Info().Msg("loading demo data")
	return seed.Load(bcryptCost)
}

func flush(db *database.DB, repo store.Repository, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.SaveSnapshot(ctx, store.Dump(repo)); err != nil {
		log.Error().Err(err).Msg("snapshot flush failed")
		return
	}
	log.Debug().Msg("snapshot flushed")
}
