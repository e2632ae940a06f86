package helpers

import (
	"fmt"
	"math/big"
)

// SatoshiDecimals is the number of decimal places of every supported coin.
const SatoshiDecimals = 8

// FormatAmount formats an amount in smallest units as a decimal string.
// For example, FormatAmount(100000000, 8) returns "1".
func FormatAmount(amount int64, decimals uint8) string {
	amountBig := big.NewInt(amount)
	sign := ""
	if amountBig.Sign() < 0 {
		sign = "-"
		amountBig.Abs(amountBig)
	}
	if decimals == 0 {
		return sign + amountBig.String()
	}

	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)

	whole, frac := new(big.Int).QuoRem(amountBig, divisor, new(big.Int))
	if frac.Sign() == 0 {
		return sign + whole.String()
	}

	fracStr := fmt.Sprintf("%0*d", int(decimals), frac)
	// Trim trailing zeros
	for len(fracStr) > 0 && fracStr[len(fracStr)-1] == '0' {
		fracStr = fracStr[:len(fracStr)-1]
	}

	return fmt.Sprintf("%s%s.%s", sign, whole.String(), fracStr)
}
