package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hexstaking/hex-staking-indexer/internal/api"
	"github.com/hexstaking/hex-staking-indexer/internal/config"
	dbmodel "github.com/hexstaking/hex-staking-indexer/internal/db/model"
	"github.com/hexstaking/hex-staking-indexer/internal/observability/metrics"
	"github.com/hexstaking/hex-staking-indexer/internal/observability/tracing"
	"github.com/hexstaking/hex-staking-indexer/internal/queue"
	"github.com/hexstaking/hex-staking-indexer/internal/services"
)

const shutdownTimeout = 10 * time.Second

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the HEX staking indexer server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	params, err := cfg.Chain.ToParams()
	if err != nil {
		log.Fatal().Err(err).Msg("error while reading chain parameters")
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up staking db model")
	}

	database, dbClient, err := newDbClient(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}

	hexClient, err := newHexClient(ctx, &cfg.Eth)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating hex client")
	}

	queueManager := queue.NewQueueManager(&cfg.Queue)
	if err := queueManager.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize event consumer")
	}

	service := services.NewService(cfg, dbClient, hexClient, queueManager, params)

	// initialize metrics with the metrics port from config
	metrics.Init(cfg.Metrics.Port)

	apiServer := api.New(&cfg.Api, service)
	go func() {
		if err := apiServer.Start(); err != nil {
			log.Fatal().Err(err).Msg("api server failed")
		}
	}()

	go service.StartIndexerSync(ctx)

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := apiServer.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to stop api server")
	}
	if err := queueManager.Stop(); err != nil {
		log.Error().Err(err).Msg("failed to stop queue manager")
	}
	if err := database.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to close db client")
	}

	return nil
}
