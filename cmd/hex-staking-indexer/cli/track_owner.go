package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hexstaking/hex-staking-indexer/internal/config"
	dbmodel "github.com/hexstaking/hex-staking-indexer/internal/db/model"
	"github.com/hexstaking/hex-staking-indexer/internal/observability/tracing"
	"github.com/hexstaking/hex-staking-indexer/internal/services"
	"github.com/hexstaking/hex-staking-indexer/pkg"
)

func TrackOwnerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track-owner <owner>",
		Short: "Adds an owner to the set of owners refreshed in the background",
		Args:  cobra.ExactArgs(1),
		RunE:  trackOwner,
	}

	return cmd
}

func trackOwner(cmd *cobra.Command, args []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())

	owner, err := pkg.ParseEthAddress(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return err
	}
	params, err := cfg.Chain.ToParams()
	if err != nil {
		return err
	}

	if err := dbmodel.Setup(ctx, &cfg.Db); err != nil {
		return err
	}
	database, dbClient, err := newDbClient(ctx, &cfg.Db)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(ctx); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to close db client")
		}
	}()

	service := services.NewService(cfg, dbClient, nil, nil, params)
	if err := service.TrackOwner(ctx, owner, dbmodel.TrackedOwnerSourceCli); err != nil {
		return err
	}

	log.Ctx(ctx).Info().Str("owner", owner.Hex()).Msg("Owner tracked")
	return nil
}
