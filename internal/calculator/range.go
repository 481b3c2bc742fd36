package calculator

import (
	"errors"
	"fmt"
	"math"

	"CVDScenarios/internal/model"
)

// ErrNoCandles is returned for calculations over an empty sequence.
var ErrNoCandles = errors.New("no candles provided")

// WindowRange scans the candles from index from to the end and returns the
// highest high and the lowest low.
func WindowRange(seq model.Sequence, from int) (high, low float64, err error) {
	if len(seq) == 0 {
		return 0, 0, ErrNoCandles
	}
	if from < 0 || from >= len(seq) {
		return 0, 0, fmt.Errorf("window from %d of %d: %w", from, len(seq), model.ErrOutOfRange)
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := from; i < len(seq); i++ {
		if seq[i].High > high {
			high = seq[i].High
		}
		if seq[i].Low < low {
			low = seq[i].Low
		}
	}
	return high, low, nil
}

// Position returns where current sits within [low, high] (0.0~1.0).
func Position(current, high, low float64) (float64, error) {
	if high == low {
		return 0.5, nil
	}
	if high < low {
		return 0, errors.New("high must be >= low")
	}
	pos := (current - low) / (high - low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos, nil
}
