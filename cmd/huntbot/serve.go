package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/susu3304/huntbot/internal/api"
	"github.com/susu3304/huntbot/internal/bot"
	"github.com/susu3304/huntbot/internal/config"
	"github.com/susu3304/huntbot/internal/db"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Discord bot, the timer worker and the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	log := logger.Sugar()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.RunMigrations(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	discordBot, err := bot.New(cfg.DiscordToken, cfg.CommandPrefix, database, cfg.TimerPollInterval)
	if err != nil {
		return err
	}
	apiServer := api.New(cfg, database)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := discordBot.Start(); err != nil {
			return err
		}
		<-gctx.Done()
		log.Info("Shutting down...")
		return discordBot.Stop()
	})
	g.Go(func() error {
		if err := apiServer.Start(gctx); err != nil {
			return fmt.Errorf("API server error: %w", err)
		}
		return nil
	})
	return g.Wait()
}
