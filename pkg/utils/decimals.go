// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"math/big"
	"strings"

	"github.com/aia-labs/marketplace-cli/pkg/constants"
)

// Convert an integer amount of the given denomination to base units
// (i.e. An amount of 54 with a decimals value of 3 results in 54000)
func ApplyDenomination(amount uint64, decimals uint8) *big.Int {
	multiplier := new(big.Int).Exp(
		big.NewInt(10),
		big.NewInt(int64(decimals)),
		nil,
	)
	return new(big.Int).Mul(
		new(big.Int).SetUint64(amount),
		multiplier,
	)
}

// Convert an integer amount of the default denomination to base units
func ApplyDefaultDenomination(amount uint64) *big.Int {
	return ApplyDenomination(amount, constants.NativeTokenDecimals)
}

// FormatDenomination renders an amount of base units as a decimal amount of
// the given denomination. The fractional part keeps no trailing zeros but
// always has at least one digit (i.e. 10^18 with 18 decimals results in "1.0")
func FormatDenomination(amount *big.Int, decimals uint8) string {
	if amount == nil {
		amount = new(big.Int)
	}
	sign := ""
	if amount.Sign() < 0 {
		sign = "-"
	}
	digits := new(big.Int).Abs(amount).String()
	width := int(decimals) + 1
	if len(digits) < width {
		digits = strings.Repeat("0", width-len(digits)) + digits
	}
	split := len(digits) - int(decimals)
	integer := digits[:split]
	fraction := strings.TrimRight(digits[split:], "0")
	if fraction == "" {
		fraction = "0"
	}
	return sign + integer + "." + fraction
}

// FormatDefaultDenomination renders an amount of base units as whole native tokens
func FormatDefaultDenomination(amount *big.Int) string {
	return FormatDenomination(amount, constants.NativeTokenDecimals)
}
