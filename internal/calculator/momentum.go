package calculator

import (
	"errors"

	"github.com/markcheno/go-talib"
)

// RSI computes the Wilder-smoothed relative strength of a close series.
// Requires at least period+1 closes. Returns 50.0 if data is insufficient.
func RSI(closes []float64, period int) (float64, error) {
	if period < 2 {
		return 0, errors.New("period must be at least 2")
	}
	if len(closes) < period+1 {
		return 50.0, nil
	}
	rsi := talib.Rsi(closes, period)
	return rsi[len(rsi)-1], nil
}
