package calculator

import (
	"fmt"

	"CVDScenarios/internal/model"
)

// RSIPeriod is the lookback used by Summarize.
const RSIPeriod = 14

// Summary condenses one sequence for reports and metrics.
type Summary struct {
	First, Last     float64
	High, Low       float64
	Mean            float64
	RSI             float64
	Position        float64
	StructurePoints int
	Patterns        map[model.Pattern]int
}

// Change is the move from the first to the last close.
func (s Summary) Change() float64 { return s.Last - s.First }

// PatternCount sums the tagged candles.
func (s Summary) PatternCount() int {
	n := 0
	for _, c := range s.Patterns {
		n += c
	}
	return n
}

// Summarize computes the summary of a whole sequence.
func Summarize(seq model.Sequence) (Summary, error) {
	if len(seq) == 0 {
		return Summary{}, ErrNoCandles
	}
	closes := seq.Closes()

	high, low, err := WindowRange(seq, 0)
	if err != nil {
		return Summary{}, err
	}
	mean, err := SMA(closes, len(closes))
	if err != nil {
		return Summary{}, fmt.Errorf("mean close: %w", err)
	}
	rsi, err := RSI(closes, RSIPeriod)
	if err != nil {
		return Summary{}, fmt.Errorf("rsi: %w", err)
	}
	last := closes[len(closes)-1]
	pos, err := Position(last, high, low)
	if err != nil {
		return Summary{}, fmt.Errorf("position: %w", err)
	}

	s := Summary{
		First:    closes[0],
		Last:     last,
		High:     high,
		Low:      low,
		Mean:     mean,
		RSI:      rsi,
		Position: pos,
		Patterns: make(map[model.Pattern]int),
	}
	for _, c := range seq {
		if c.IsStructurePoint {
			s.StructurePoints++
		}
		if c.Pattern != model.PatternNone {
			s.Patterns[c.Pattern]++
		}
	}
	return s, nil
}
