package codec

import (
	"math/big"
	"strings"

	sdkmath "cosmossdk.io/math"
)

// SatoshiUintSize is the width of each claim statistic.
const SatoshiUintSize = 51

// Packed layouts, most significant field first.
var (
	ClaimStatsWidths    = []uint{SatoshiUintSize, SatoshiUintSize, SatoshiUintSize}
	StakeStartWidths    = []uint{55, 1, 16, 72, 72, 40}
	StakeEndData0Widths = []uint{72, 72, 72, 40}
	StakeEndData1Widths = []uint{167, 1, 16, 72}
)

// DecodeBits splits value into fields of the given widths. The first width
// takes the most significant bits of a container sum(widths) bits wide.
func DecodeBits(value *big.Int, widths []uint) ([]sdkmath.Uint, error) {
	return decodeBits("", value, widths)
}

func decodeBits(layout string, value *big.Int, widths []uint) ([]sdkmath.Uint, error) {
	if value == nil {
		return nil, newDecodeError(layout, "nil value")
	}
	if value.Sign() < 0 {
		return nil, newDecodeError(layout, "negative value %s", value)
	}

	total, err := totalWidth(layout, widths)
	if err != nil {
		return nil, err
	}
	if uint(value.BitLen()) > total {
		return nil, newDecodeError(layout, "value is %d bits wide, layout holds %d", value.BitLen(), total)
	}

	bits := value.Text(2)
	if value.Sign() == 0 {
		bits = ""
	}
	bits = strings.Repeat("0", int(total)-len(bits)) + bits

	fields := make([]sdkmath.Uint, 0, len(widths))
	var offset uint
	for _, w := range widths {
		field, ok := new(big.Int).SetString(bits[offset:offset+w], 2)
		if !ok {
			return nil, newDecodeError(layout, "malformed field at bit %d", offset)
		}
		fields = append(fields, sdkmath.NewUintFromBigInt(field))
		offset += w
	}

	return fields, nil
}

// EncodeBits is the inverse of DecodeBits.
func EncodeBits(fields []sdkmath.Uint, widths []uint) (*big.Int, error) {
	if len(fields) != len(widths) {
		return nil, newDecodeError("", "%d fields for %d widths", len(fields), len(widths))
	}
	if _, err := totalWidth("", widths); err != nil {
		return nil, err
	}

	packed := new(big.Int)
	for i, f := range fields {
		v := f.BigInt()
		if uint(v.BitLen()) > widths[i] {
			return nil, newDecodeError("", "field %d is %d bits wide, max %d", i, v.BitLen(), widths[i])
		}
		packed.Lsh(packed, widths[i])
		packed.Or(packed, v)
	}

	return packed, nil
}

func totalWidth(layout string, widths []uint) (uint, error) {
	if len(widths) == 0 {
		return 0, newDecodeError(layout, "empty layout")
	}

	var total uint
	for i, w := range widths {
		if w == 0 {
			return 0, newDecodeError(layout, "field %d has zero width", i)
		}
		if w > sdkmath.MaxBitLen {
			return 0, newDecodeError(layout, "field %d is wider than %d bits", i, sdkmath.MaxBitLen)
		}
		total += w
	}

	return total, nil
}
