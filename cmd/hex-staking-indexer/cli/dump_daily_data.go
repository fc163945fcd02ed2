package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hexstaking/hex-staking-indexer/internal/codec"
	"github.com/hexstaking/hex-staking-indexer/internal/config"
	"github.com/hexstaking/hex-staking-indexer/internal/observability/tracing"
	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

const dumpChunkDays = 500

type dailyDataLine struct {
	Day  uint64    `json:"day"`
	Date time.Time `json:"date"`
	types.DailyRecord
}

func DumpDailyDataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump-daily-data",
		Short: "Prints the decoded daily data of the contract, one json line per day",
		Args:  cobra.ExactArgs(0),
		RunE:  dumpDailyData,
	}

	cmd.Flags().Uint64("from", 0, "First day to dump")
	cmd.Flags().Uint64("to", 0, "Day after the last day to dump (default: every stored day)")

	return cmd
}

func dumpDailyData(cmd *cobra.Command, _ []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())

	from, err := cmd.Flags().GetUint64("from")
	if err != nil {
		return err
	}
	to, err := cmd.Flags().GetUint64("to")
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

	rawGlobals, err := hexClient.GetGlobals(ctx)
	if err != nil {
		return err
	}
	globals, err := codec.DecodeGlobals(rawGlobals)
	if err != nil {
		return err
	}
	if to == 0 || to > globals.DailyDataCount {
		to = globals.DailyDataCount
	}
	if from >= to {
		return fmt.Errorf("empty day range [%d, %d), %d days are stored", from, to, globals.DailyDataCount)
	}

	enc := json.NewEncoder(os.Stdout)
	for begin := from; begin < to; begin += dumpChunkDays {
		end := min(begin+dumpChunkDays, to)

		words, err := hexClient.GetDailyDataRange(ctx, begin, end)
		if err != nil {
			return err
		}
		days, err := codec.DecodeDailyRange(words)
		if err != nil {
			return fmt.Errorf("failed to decode days [%d, %d): %w", begin, end, err)
		}

		for i, rec := range days {
			day := begin + uint64(i)
			line := dailyDataLine{Day: day, Date: params.DayStart(day), DailyRecord: rec}
			if err := enc.Encode(line); err != nil {
				return err
			}
		}
	}

	return nil
}
