package payout

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
)

// mulDiv returns floor(a*b/d) without bounding the intermediate product.
func mulDiv(op string, a, b, d *big.Int) (*big.Int, error) {
	if d.Sign() == 0 {
		return nil, newDataInconsistencyError(op, "division by zero")
	}
	product := new(big.Int).Mul(a, b)
	return product.Quo(product, d), nil
}

func mulDivUint(op string, a, b, d sdkmath.Uint) (*big.Int, error) {
	return mulDiv(op, a.BigInt(), b.BigInt(), d.BigInt())
}

// toUint narrows a final result back to 256 bits.
func toUint(op string, v *big.Int) (sdkmath.Uint, error) {
	if err := sdkmath.UintOverflow(v); err != nil {
		return sdkmath.Uint{}, newDataInconsistencyError(op, "%v", err)
	}
	return sdkmath.NewUintFromBigInt(v), nil
}
