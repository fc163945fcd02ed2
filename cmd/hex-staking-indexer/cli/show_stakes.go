package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hexstaking/hex-staking-indexer/internal/api"
	"github.com/hexstaking/hex-staking-indexer/internal/config"
	"github.com/hexstaking/hex-staking-indexer/internal/observability/tracing"
	"github.com/hexstaking/hex-staking-indexer/internal/services"
	"github.com/hexstaking/hex-staking-indexer/pkg"
)

func ShowStakesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show-stakes <owner>",
		Short: "Computes the stakes of an owner from the contract and prints them as json",
		Args:  cobra.ExactArgs(1),
		RunE:  showStakes,
	}

	return cmd
}

func showStakes(cmd *cobra.Command, args []string) error {
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

	hexClient, err := newHexClient(ctx, &cfg.Eth)
	if err != nil {
		return err
	}

	// a live computation touches neither the db nor the queue
	service := services.NewService(cfg, nil, hexClient, nil, params)
	res, err := service.LoadOwnerStakes(ctx, owner)
	if err != nil {
		return fmt.Errorf("failed to load stakes of %s: %w", owner.Hex(), err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(api.NewOwnerStakesResponse(res, params))
}
