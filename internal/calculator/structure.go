package calculator

import "CVDScenarios/internal/model"

// TriggerLookback is how many candles before an entry are searched for the
// structure level that triggers it.
const TriggerLookback = 20

// StructureLevel is the price a structure point marks: the high of swing
// highs and the low of swing lows.
func StructureLevel(c model.Candle) float64 {
	if c.StructureLabel.IsHigh() {
		return c.High
	}
	return c.Low
}

// LastStructureBefore returns the latest structure point strictly before
// index at and within lookback candles of it.
func LastStructureBefore(seq model.Sequence, at, lookback int) (model.Candle, bool) {
	if at > len(seq) {
		at = len(seq)
	}
	for i := at - 1; i >= 0 && i > at-lookback; i-- {
		if seq[i].IsStructurePoint {
			return seq[i], true
		}
	}
	return model.Candle{}, false
}
