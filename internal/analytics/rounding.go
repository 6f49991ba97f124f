package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
)

// RoundMoney rounds v to cents, half up: floor(v*100 + 0.5) / 100.
// Working in decimal keeps values like 1.005 from drifting below the midpoint.
// Infinities and NaN are returned unchanged.
func RoundMoney(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Mul(hundred).Add(half).Floor().Div(hundred).Float64()
	return f
}
