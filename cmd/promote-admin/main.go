package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/cypherskull/hyperconnect/internal/config"
	"github.com/cypherskull/hyperconnect/internal/database"
	"github.com/cypherskull/hyperconnect/pkg/logger"
)

// promote-admin rewrites a user's persona in the stored snapshot. Run it
// while the server is stopped; a running server flushes its own copy over
// the change.
func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: promote-admin <email>")
		os.Exit(1)
	}

	email := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.Env, Level: cfg.LogLevel})

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := db.PromoteToAdmin(ctx, email); err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			log.Fatal().Str("email", email).Msg("no user found with that email")
		}
		log.Fatal().Err(err).Msg("failed to update user")
	}

	fmt.Printf("Successfully promoted %s to Admin\n", email)
}
