package generator

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// exactDigits is enough fractional digits to print any float64 exactly.
const exactDigits = 1074

// Round2 rounds to two decimals the way JavaScript's toFixed(2) does: the
// exact binary value is rounded, ties go away from zero.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	d, err := decimal.NewFromString(strconv.FormatFloat(x, 'f', exactDigits, 64))
	if err != nil {
		return math.Round(x*100) / 100
	}
	return d.Round(2).InexactFloat64()
}
