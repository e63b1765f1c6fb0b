package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{name: "No fraction", in: 150000, expected: 150000},
		{name: "Half rounds up", in: 0.125, expected: 0.13},
		{name: "Below half rounds down", in: 44333.333, expected: 44333.33},
		{name: "Two decimals unchanged", in: 35625.00, expected: 35625.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Round2(tt.in), 1e-9)
		})
	}
}

func TestFeeAndNet(t *testing.T) {
	tests := []struct {
		name        string
		price       float64
		feePercent  float64
		expectedFee float64
		expectedNet float64
	}{
		{name: "Default 5 percent", price: 150000, feePercent: 5, expectedFee: 7500, expectedNet: 142500},
		{name: "Large sale", price: 280000, feePercent: 5, expectedFee: 14000, expectedNet: 266000},
		{name: "Zero price", price: 0, feePercent: 5, expectedFee: 0, expectedNet: 0},
		{name: "Zero fee", price: 999.99, feePercent: 0, expectedFee: 0, expectedNet: 999.99},
		{name: "Full fee", price: 1234.56, feePercent: 100, expectedFee: 1234.56, expectedNet: 0},
		{name: "Fraction fee rounds", price: 100.01, feePercent: 3.33, expectedFee: 3.33, expectedNet: 96.68},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := Fee(tt.price, tt.feePercent)
			net := Net(tt.price, fee)
			assert.InDelta(t, tt.expectedFee, fee, 1e-9)
			assert.InDelta(t, tt.expectedNet, net, 1e-9)
		})
	}
}

func TestFeePlusNetReconstructsPrice(t *testing.T) {
	prices := []float64{0, 0.01, 1, 99.99, 150000, 280000, 1234567.89}
	percents := []float64{0, 1, 5, 33.33, 50, 99, 100}

	for _, price := range prices {
		for _, percent := range percents {
			fee := Fee(price, percent)
			net := Net(price, fee)
			assert.InDelta(t, Round2(price), fee+net, 0.011)
		}
	}
}

func TestEqualShare(t *testing.T) {
	tests := []struct {
		name            string
		net             float64
		n               int
		expectedPercent float64
		expectedAmount  float64
	}{
		{name: "Exact split by 4", net: 142500, n: 4, expectedPercent: 25, expectedAmount: 35625},
		{name: "Residual split by 3", net: 133000, n: 3, expectedPercent: 33.33, expectedAmount: 44333.33},
		{name: "Single head", net: 1000, n: 1, expectedPercent: 100, expectedAmount: 1000},
		{name: "Cent drift by 7", net: 100, n: 7, expectedPercent: 14.29, expectedAmount: 14.29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent, amount := EqualShare(tt.net, tt.n)
			assert.InDelta(t, tt.expectedPercent, percent, 1e-9)
			assert.InDelta(t, tt.expectedAmount, amount, 1e-9)
		})
	}
}

func TestEqualShareDriftWithinTolerance(t *testing.T) {
	nets := []float64{142500, 133000, 266000, 100, 0.05}
	for _, net := range nets {
		for n := 1; n <= 40; n++ {
			percent, amount := EqualShare(net, n)
			assert.InDelta(t, 100, percent*float64(n), 0.01*float64(n))
			assert.InDelta(t, net, amount*float64(n), 0.01*float64(n))
		}
	}
}
