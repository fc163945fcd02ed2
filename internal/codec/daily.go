package codec

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	sdkmath "cosmossdk.io/math"
	"github.com/holiman/uint256"

	"github.com/hexstaking/hex-staking-indexer/internal/types"
)

const (
	dailyWordHexLen = 64

	// hex character ranges of a padded daily word
	payoutTotalStart      = 46
	stakeSharesTotalStart = 28
	unclaimedStart        = 12

	DayPayoutTotalBits    = 72
	DayStakeSharesBits    = 72
	DayUnclaimedSatsBits  = 56
	dailyWordUsedBits     = DayPayoutTotalBits + DayStakeSharesBits + DayUnclaimedSatsBits
	dailyWordUnusedPrefix = unclaimedStart
)

// DecodeDailyRecord unpacks one dailyData word. The word is rendered as 64
// zero padded hex characters and sliced at fixed offsets.
func DecodeDailyRecord(raw *big.Int) (types.DailyRecord, error) {
	const layout = "dailyData"
	if raw == nil {
		return types.DailyRecord{}, newDecodeError(layout, "nil word")
	}
	if raw.Sign() < 0 {
		return types.DailyRecord{}, newDecodeError(layout, "negative word %s", raw)
	}
	word, overflow := uint256.FromBig(raw)
	if overflow {
		return types.DailyRecord{}, newDecodeError(layout, "word is %d bits wide", raw.BitLen())
	}

	b32 := word.Bytes32()
	padded := hex.EncodeToString(b32[:])

	if strings.Trim(padded[:dailyWordUnusedPrefix], "0") != "" {
		return types.DailyRecord{}, newDecodeError(layout, "bits above %d are set", dailyWordUsedBits)
	}

	payoutTotal, err := parseHexField(layout+".dayPayoutTotal", padded[payoutTotalStart:dailyWordHexLen], DayPayoutTotalBits)
	if err != nil {
		return types.DailyRecord{}, err
	}
	sharesTotal, err := parseHexField(layout+".dayStakeSharesTotal", padded[stakeSharesTotalStart:payoutTotalStart], DayStakeSharesBits)
	if err != nil {
		return types.DailyRecord{}, err
	}
	unclaimed, err := parseHexField(layout+".dayUnclaimedSatoshisTotal", padded[unclaimedStart:stakeSharesTotalStart], DayUnclaimedSatsBits)
	if err != nil {
		return types.DailyRecord{}, err
	}

	return types.DailyRecord{
		DayPayoutTotal:            payoutTotal,
		DayStakeSharesTotal:       sharesTotal,
		DayUnclaimedSatoshisTotal: unclaimed,
	}, nil
}

// DecodeDailyRange decodes every word of a dailyDataRange result. Element i
// of the result belongs to day beginDay+i.
func DecodeDailyRange(words []*big.Int) ([]types.DailyRecord, error) {
	records := make([]types.DailyRecord, 0, len(words))
	for i, w := range words {
		rec, err := DecodeDailyRecord(w)
		if err != nil {
			return nil, fmt.Errorf("day offset %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// EncodeDailyRecord packs a record the way the contract stores it.
func EncodeDailyRecord(rec types.DailyRecord) (*big.Int, error) {
	return EncodeBits(
		[]sdkmath.Uint{rec.DayUnclaimedSatoshisTotal, rec.DayStakeSharesTotal, rec.DayPayoutTotal},
		[]uint{DayUnclaimedSatsBits, DayStakeSharesBits, DayPayoutTotalBits},
	)
}

func parseHexField(field, s string, maxBits int) (sdkmath.Uint, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return sdkmath.Uint{}, newDecodeError(field, "malformed hex %q", s)
	}
	if v.BitLen() > maxBits {
		return sdkmath.Uint{}, newDecodeError(field, "value is %d bits wide, max %d", v.BitLen(), maxBits)
	}
	return sdkmath.NewUintFromBigInt(v), nil
}
