// Package money holds the currency arithmetic helpers. All gold and USD
// amounts in the system are two-place decimals.
package money

import "github.com/shopspring/decimal"

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
