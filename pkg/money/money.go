package money

import "github.com/shopspring/decimal"

// Round2 rounds to 2 decimal places, half away from zero. All monetary
// values in the ledger are fixed-point at 2 decimals.
func Round2(x float64) float64 {
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}

// Fee computes the marketplace fee for a sale price.
func Fee(price, feePercent float64) float64 {
	return decimal.NewFromFloat(price).
		Mul(decimal.NewFromFloat(feePercent)).
		Div(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}

// Net computes the proceeds left after the fee.
func Net(price, feeAmount float64) float64 {
	return decimal.NewFromFloat(price).
		Sub(decimal.NewFromFloat(feeAmount)).
		Round(2).
		InexactFloat64()
}

// EqualShare returns the per-head percent and amount for an equal split of
// net across n recipients. Each head is rounded independently, so the sum of
// n amounts may drift from net by up to 0.01*(n-1). The drift is accepted,
// not corrected.
func EqualShare(net float64, n int) (percent, amount float64) {
	percent = decimal.NewFromInt(100).
		Div(decimal.NewFromInt(int64(n))).
		Round(2).
		InexactFloat64()
	amount = decimal.NewFromFloat(net).
		Div(decimal.NewFromInt(int64(n))).
		Round(2).
		InexactFloat64()
	return percent, amount
}
