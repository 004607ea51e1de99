package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/answersheet/gradebot/internal/msglog"
	"github.com/answersheet/gradebot/internal/setup"
	"github.com/answersheet/gradebot/internal/telegram"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logger := log.Logger

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := setup.LoadConfig()
	if cfg.BotToken == "" {
		log.Fatal().Msg("TELEGRAM_BOT_TOKEN is required")
	}

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	store := msglog.NewStore(cfg.MessageLog)

	listener, err := telegram.NewListener(cfg.BotToken, deps.Pipeline, store, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Telegram listener")
	}

	// Warm the guide cache up front so the first graded answer doesn't pay
	// the full ingestion cost.
	if loaded := deps.Guide.Load(ctx); loaded {
		log.Info().Msg("Reference guide loaded")
	} else {
		log.Warn().Msg("Reference guide unavailable, grading proceeds without it")
	}

	log.Info().Msg("Starting Telegram listener")
	if err := listener.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Listener failed")
	}
	log.Info().Msg("Listener stopped")
}
