package hexclient

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"

	"github.com/hexstaking/hex-staking-indexer/internal/codec"
	"github.com/hexstaking/hex-staking-indexer/internal/config"
	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

var ErrEventsDisabled = errors.New("stake events require eth.ws-addr to be configured")

type HexClient struct {
	caller   ethereum.ContractCaller
	logs     ethereum.LogFilterer
	contract common.Address
	abi      abi.ABI
	cfg      *config.EthConfig
}

// NewHexClient dials the json-rpc endpoint and, when configured, a websocket
// endpoint for log subscriptions.
func NewHexClient(ctx context.Context, cfg *config.EthConfig) (*HexClient, error) {
	rpc, err := ethclient.DialContext(ctx, cfg.RPCAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", cfg.RPCAddr, err)
	}

	var logs ethereum.LogFilterer
	if cfg.WSAddr != "" {
		ws, err := ethclient.DialContext(ctx, cfg.WSAddr)
		if err != nil {
			rpc.Close()
			return nil, fmt.Errorf("failed to dial %s: %w", cfg.WSAddr, err)
		}
		logs = ws
	}

	return newHexClient(rpc, logs, cfg)
}

func newHexClient(caller ethereum.ContractCaller, logs ethereum.LogFilterer, cfg *config.EthConfig) (*HexClient, error) {
	parsed, err := parseHexABI()
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract abi: %w", err)
	}
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address %s", cfg.ContractAddress)
	}

	return &HexClient{
		caller:   caller,
		logs:     logs,
		contract: common.HexToAddress(cfg.ContractAddress),
		abi:      parsed,
		cfg:      cfg,
	}, nil
}

func (c *HexClient) GetGlobals(ctx context.Context) (*codec.RawGlobals, error) {
	out, err := c.call(ctx, methodGlobals)
	if err != nil {
		return nil, err
	}
	if len(out) != 8 {
		return nil, fmt.Errorf("unexpected %s output length %d", methodGlobals, len(out))
	}

	var raw codec.RawGlobals
	fields := []struct {
		name string
		dst  **big.Int
	}{
		{"lockedHeartsTotal", &raw.LockedHeartsTotal},
		{"nextStakeSharesTotal", &raw.NextStakeSharesTotal},
		{"shareRate", &raw.ShareRate},
		{"stakePenaltyTotal", &raw.StakePenaltyTotal},
		{"dailyDataCount", &raw.DailyDataCount},
		{"stakeSharesTotal", &raw.StakeSharesTotal},
		{"latestStakeId", &raw.LatestStakeID},
		{"claimStats", &raw.ClaimStats},
	}
	for i, f := range fields {
		if *f.dst, err = asBigInt(f.name, out[i]); err != nil {
			return nil, err
		}
	}

	return &raw, nil
}

func (c *HexClient) GetAllocatedSupply(ctx context.Context) (*big.Int, error) {
	out, err := c.call(ctx, methodAllocatedSupply)
	if err != nil {
		return nil, err
	}
	return singleBigInt(methodAllocatedSupply, out)
}

func (c *HexClient) GetCurrentDay(ctx context.Context) (uint64, error) {
	out, err := c.call(ctx, methodCurrentDay)
	if err != nil {
		return 0, err
	}
	day, err := singleBigInt(methodCurrentDay, out)
	if err != nil {
		return 0, err
	}
	return codec.ToUint64(methodCurrentDay, day)
}

func (c *HexClient) GetStakeCount(ctx context.Context, owner common.Address) (uint64, error) {
	out, err := c.call(ctx, methodStakeCount, owner)
	if err != nil {
		return 0, err
	}
	count, err := singleBigInt(methodStakeCount, out)
	if err != nil {
		return 0, err
	}
	return codec.ToUint64(methodStakeCount, count)
}

func (c *HexClient) GetStake(ctx context.Context, owner common.Address, index uint64) (*types.RawStake, error) {
	out, err := c.call(ctx, methodStakeLists, owner, new(big.Int).SetUint64(index))
	if err != nil {
		return nil, err
	}
	if len(out) != 7 {
		return nil, fmt.Errorf("unexpected %s output length %d", methodStakeLists, len(out))
	}

	stake := &types.RawStake{}
	stakeID, err := asBigInt("stakeId", out[0])
	if err != nil {
		return nil, err
	}
	if stake.StakeID, err = codec.ToUint64("stakeId", stakeID); err != nil {
		return nil, err
	}

	hearts, err := asBigInt("stakedHearts", out[1])
	if err != nil {
		return nil, err
	}
	if stake.StakedHearts, err = codec.ToUint("stakedHearts", hearts); err != nil {
		return nil, err
	}

	shares, err := asBigInt("stakeShares", out[2])
	if err != nil {
		return nil, err
	}
	if stake.StakeShares, err = codec.ToUint("stakeShares", shares); err != nil {
		return nil, err
	}

	days := []struct {
		name string
		dst  *uint64
	}{
		{"lockedDay", &stake.LockedDay},
		{"stakedDays", &stake.StakedDays},
		{"unlockedDay", &stake.UnlockedDay},
	}
	for i, d := range days {
		v, err := asBigInt(d.name, out[3+i])
		if err != nil {
			return nil, err
		}
		*d.dst = v.Uint64()
	}

	autoStake, ok := out[6].(bool)
	if !ok {
		return nil, fmt.Errorf("unexpected type %T for isAutoStake", out[6])
	}
	stake.IsAutoStake = autoStake

	return stake, nil
}

func (c *HexClient) GetDailyDataRange(ctx context.Context, beginDay, endDay uint64) ([]*big.Int, error) {
	// the contract reverts on empty ranges
	if beginDay >= endDay {
		return []*big.Int{}, nil
	}

	out, err := c.call(ctx, methodDailyDataRange,
		new(big.Int).SetUint64(beginDay), new(big.Int).SetUint64(endDay))
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("unexpected %s output length %d", methodDailyDataRange, len(out))
	}

	words, ok := out[0].([]*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected type %T for %s", out[0], methodDailyDataRange)
	}
	if uint64(len(words)) != endDay-beginDay {
		return nil, fmt.Errorf("%s returned %d words for days [%d, %d)", methodDailyDataRange, len(words), beginDay, endDay)
	}

	return words, nil
}

// call packs, executes and unpacks a read-only contract call with retries.
func (c *HexClient) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	msg := ethereum.CallMsg{To: &c.contract, Data: input}
	callContract := func() ([]byte, error) {
		callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()

		return c.caller.CallContract(callCtx, msg, nil)
	}

	output, err := clientCallWithRetry(ctx, callContract, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	values, err := c.abi.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method, err)
	}
	return values, nil
}

func clientCallWithRetry[T any](
	ctx context.Context, call retry.RetryableFuncWithData[T], cfg *config.EthConfig,
) (T, error) {
	return retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("failed to call the contract")
		}))
}

func asBigInt(field string, v interface{}) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		return n, nil
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	}
	return nil, fmt.Errorf("unexpected type %T for %s", v, field)
}

func singleBigInt(method string, out []interface{}) (*big.Int, error) {
	if len(out) != 1 {
		return nil, fmt.Errorf("unexpected %s output length %d", method, len(out))
	}
	return asBigInt(method, out[0])
}
