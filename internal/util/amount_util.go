package util

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Amounts are unsigned integers in the smallest value unit. Postgres numeric
// columns round-trip through decimal.Decimal; these keep the conversion exact.

func DecimalFromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}

func Uint64FromDecimal(d decimal.Decimal) (uint64, error) {
	if !d.IsInteger() {
		return 0, fmt.Errorf("amount %s is not an integer", d.String())
	}
	bi := d.BigInt()
	if bi.Sign() < 0 || !bi.IsUint64() {
		return 0, fmt.Errorf("amount %s out of uint64 range", d.String())
	}
	return bi.Uint64(), nil
}
