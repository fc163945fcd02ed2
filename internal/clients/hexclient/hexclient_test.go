package hexclient

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexstaking/hex-staking-indexer/internal/config"
	"github.com/hexstaking/hex-staking-indexer/internal/types"
	"github.com/hexstaking/hex-staking-indexer/testutil"
)

// fakeCaller answers contract calls with abi encoded canned outputs.
type fakeCaller struct {
	t        *testing.T
	abi      abi.ABI
	outputs  map[string][]interface{}
	failures int

	mu    sync.Mutex
	calls int
	last  ethereum.CallMsg
}

func newFakeCaller(t *testing.T) *fakeCaller {
	parsed, err := parseHexABI()
	require.NoError(t, err)
	return &fakeCaller{t: t, abi: parsed, outputs: map[string][]interface{}{}}
}

func (f *fakeCaller) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.last = msg
	if f.calls <= f.failures {
		return nil, errors.New("connection reset by peer")
	}

	method, err := f.abi.MethodById(msg.Data[:4])
	require.NoError(f.t, err)
	out, ok := f.outputs[method.Name]
	require.True(f.t, ok, "unexpected call to %s", method.Name)

	return method.Outputs.Pack(out...)
}

func testEthConfig() *config.EthConfig {
	return &config.EthConfig{
		RPCAddr:         "http://localhost:8545",
		ContractAddress: types.DefaultContractAddress,
		Timeout:         time.Second,
		MaxRetryTimes:   3,
		RetryInterval:   time.Millisecond,
	}
}

func newTestClient(t *testing.T, caller *fakeCaller) *HexClient {
	c, err := newHexClient(caller, nil, testEthConfig())
	require.NoError(t, err)
	return c
}

func TestGetGlobals(t *testing.T) {
	caller := newFakeCaller(t)
	claimStats := testutil.RandomBits(t, 128)
	caller.outputs[methodGlobals] = []interface{}{
		big.NewInt(1), big.NewInt(2), big.NewInt(100_000), big.NewInt(4),
		uint16(420), big.NewInt(6), big.NewInt(7), claimStats,
	}
	c := newTestClient(t, caller)

	raw, err := c.GetGlobals(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(1), raw.LockedHeartsTotal.Int64())
	assert.Equal(t, int64(2), raw.NextStakeSharesTotal.Int64())
	assert.Equal(t, int64(100_000), raw.ShareRate.Int64())
	assert.Equal(t, int64(4), raw.StakePenaltyTotal.Int64())
	assert.Equal(t, int64(420), raw.DailyDataCount.Int64())
	assert.Equal(t, int64(6), raw.StakeSharesTotal.Int64())
	assert.Equal(t, int64(7), raw.LatestStakeID.Int64())
	assert.Equal(t, 0, claimStats.Cmp(raw.ClaimStats))

	assert.Equal(t, common.HexToAddress(types.DefaultContractAddress), *caller.last.To)
}

func TestGetStake(t *testing.T) {
	caller := newFakeCaller(t)
	caller.outputs[methodStakeLists] = []interface{}{
		big.NewInt(77), big.NewInt(1_000_000), big.NewInt(2_000_000),
		uint16(10), uint16(365), uint16(0), true,
	}
	c := newTestClient(t, caller)

	owner := testutil.RandomAddress(t)
	stake, err := c.GetStake(t.Context(), owner, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(77), stake.StakeID)
	assert.Equal(t, "1000000", stake.StakedHearts.String())
	assert.Equal(t, "2000000", stake.StakeShares.String())
	assert.Equal(t, uint64(10), stake.LockedDay)
	assert.Equal(t, uint64(365), stake.StakedDays)
	assert.Equal(t, uint64(0), stake.UnlockedDay)
	assert.True(t, stake.IsAutoStake)

	args, err := c.abi.Methods[methodStakeLists].Inputs.Unpack(caller.last.Data[4:])
	require.NoError(t, err)
	assert.Equal(t, owner, args[0])
	assert.Equal(t, int64(3), args[1].(*big.Int).Int64())
}

func TestGetCounters(t *testing.T) {
	caller := newFakeCaller(t)
	caller.outputs[methodCurrentDay] = []interface{}{big.NewInt(1234)}
	caller.outputs[methodStakeCount] = []interface{}{big.NewInt(5)}
	supply, _ := new(big.Int).SetString("600000000000000000000", 10)
	caller.outputs[methodAllocatedSupply] = []interface{}{supply}
	c := newTestClient(t, caller)

	day, err := c.GetCurrentDay(t.Context())
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), day)

	count, err := c.GetStakeCount(t.Context(), testutil.RandomAddress(t))
	require.NoError(t, err)
	assert.Equal(t, uint64(5), count)

	got, err := c.GetAllocatedSupply(t.Context())
	require.NoError(t, err)
	assert.Equal(t, supply.String(), got.String())
}

func TestGetDailyDataRange(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		caller := newFakeCaller(t)
		words := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}
		caller.outputs[methodDailyDataRange] = []interface{}{words}
		c := newTestClient(t, caller)

		got, err := c.GetDailyDataRange(t.Context(), 10, 13)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, int64(3), got[2].Int64())
	})

	t.Run("empty range is not sent", func(t *testing.T) {
		caller := newFakeCaller(t)
		c := newTestClient(t, caller)

		got, err := c.GetDailyDataRange(t.Context(), 10, 10)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Zero(t, caller.calls)
	})

	t.Run("length mismatch", func(t *testing.T) {
		caller := newFakeCaller(t)
		caller.outputs[methodDailyDataRange] = []interface{}{[]*big.Int{big.NewInt(1)}}
		c := newTestClient(t, caller)

		_, err := c.GetDailyDataRange(t.Context(), 10, 13)
		require.Error(t, err)
	})
}

func TestCallRetries(t *testing.T) {
	t.Run("recovers", func(t *testing.T) {
		caller := newFakeCaller(t)
		caller.failures = 2
		caller.outputs[methodCurrentDay] = []interface{}{big.NewInt(9)}
		c := newTestClient(t, caller)

		day, err := c.GetCurrentDay(t.Context())
		require.NoError(t, err)
		assert.Equal(t, uint64(9), day)
		assert.Equal(t, 3, caller.calls)
	})

	t.Run("gives up", func(t *testing.T) {
		caller := newFakeCaller(t)
		caller.failures = 10
		c := newTestClient(t, caller)

		_, err := c.GetCurrentDay(t.Context())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset by peer")
		assert.Equal(t, 3, caller.calls)
	})
}

func TestNewHexClientInvalidAddress(t *testing.T) {
	cfg := testEthConfig()
	cfg.ContractAddress = "not-an-address"
	_, err := newHexClient(newFakeCaller(t), nil, cfg)
	require.Error(t, err)
}
