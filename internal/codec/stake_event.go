package codec

import (
	"math/big"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

// DecodeStakeStart unpacks the data0 word of a StakeStart log. Staker address
// and stake id are indexed topics and left for the caller to fill in.
func DecodeStakeStart(data0 *big.Int) (*types.StakeStartEvent, error) {
	fields, err := decodeBits("stakeStart.data0", data0, StakeStartWidths)
	if err != nil {
		return nil, err
	}

	stakedDays, err := narrow("stakeStart.stakedDays", fields[2])
	if err != nil {
		return nil, err
	}
	ts, err := narrow("stakeStart.timestamp", fields[5])
	if err != nil {
		return nil, err
	}

	return &types.StakeStartEvent{
		IsAutoStake:  !fields[1].IsZero(),
		StakedDays:   stakedDays,
		StakeShares:  fields[3],
		StakedHearts: fields[4],
		Timestamp:    time.Unix(int64(ts), 0).UTC(),
	}, nil
}

// DecodeStakeEnd unpacks both data words of a StakeEnd log.
func DecodeStakeEnd(data0, data1 *big.Int) (*types.StakeEndEvent, error) {
	first, err := decodeBits("stakeEnd.data0", data0, StakeEndData0Widths)
	if err != nil {
		return nil, err
	}
	second, err := decodeBits("stakeEnd.data1", data1, StakeEndData1Widths)
	if err != nil {
		return nil, err
	}

	ts, err := narrow("stakeEnd.timestamp", first[3])
	if err != nil {
		return nil, err
	}
	servedDays, err := narrow("stakeEnd.servedDays", second[2])
	if err != nil {
		return nil, err
	}

	return &types.StakeEndEvent{
		Payout:       first[0],
		StakeShares:  first[1],
		StakedHearts: first[2],
		Timestamp:    time.Unix(int64(ts), 0).UTC(),
		PrevUnlocked: !second[1].IsZero(),
		ServedDays:   servedDays,
		Penalty:      second[3],
	}, nil
}

func narrow(field string, v sdkmath.Uint) (uint64, error) {
	if !v.BigInt().IsUint64() {
		return 0, newDecodeError(field, "%s does not fit in 64 bits", v)
	}
	return v.Uint64(), nil
}
