package model

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an index does not address a candle of a sequence.
var ErrOutOfRange = errors.New("index out of range")

// Pattern names a candlestick shape.
type Pattern string

const (
	PatternNone             Pattern = ""
	PatternBullishEngulfing Pattern = "Bullish Engulfing"
	PatternBearishEngulfing Pattern = "Bearish Engulfing"
	PatternHammer           Pattern = "Hammer"
	PatternInvertedHammer   Pattern = "Inverted Hammer"
	PatternDoji             Pattern = "Doji"
)

// StructureLabel marks a swing point of the market structure.
type StructureLabel string

const (
	LabelNone       StructureLabel = ""
	LabelHH         StructureLabel = "HH"
	LabelHL         StructureLabel = "HL"
	LabelLH         StructureLabel = "LH"
	LabelLL         StructureLabel = "LL"
	LabelSupport    StructureLabel = "Support"
	LabelResistance StructureLabel = "Resistance"
)

// IsHigh reports whether the label marks a swing high.
func (l StructureLabel) IsHigh() bool {
	return l == LabelHH || l == LabelLH || l == LabelResistance
}

// IsLow reports whether the label marks a swing low.
func (l StructureLabel) IsLow() bool {
	return l == LabelHL || l == LabelLL || l == LabelSupport
}

// Candle represents a single synthetic bar. Volume is only set on price candles.
type Candle struct {
	Time             int            `json:"time"`
	Open             float64        `json:"open"`
	High             float64        `json:"high"`
	Low              float64        `json:"low"`
	Close            float64        `json:"close"`
	Volume           float64        `json:"volume,omitempty"`
	Pattern          Pattern        `json:"pattern,omitempty"`
	IsStructurePoint bool           `json:"isStructurePoint"`
	StructureLabel   StructureLabel `json:"structureLabel,omitempty"`
}

// Bullish reports whether the candle closed above its open.
func (c Candle) Bullish() bool { return c.Close > c.Open }

// Valid reports whether the body lies within the wicks.
func (c Candle) Valid() bool {
	return c.Low <= min(c.Open, c.Close) && c.High >= max(c.Open, c.Close)
}

// Sequence is an ordered run of candles whose Time equals its position.
type Sequence []Candle

// At returns the candle at index i.
func (s Sequence) At(i int) (Candle, error) {
	if i < 0 || i >= len(s) {
		return Candle{}, fmt.Errorf("candle %d of %d: %w", i, len(s), ErrOutOfRange)
	}
	return s[i], nil
}

// Closes extracts the close of every candle.
func (s Sequence) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, c := range s {
		closes[i] = c.Close
	}
	return closes
}

// StructurePoints returns the candles flagged as swing points, in order.
func (s Sequence) StructurePoints() []Candle {
	var points []Candle
	for _, c := range s {
		if c.IsStructurePoint {
			points = append(points, c)
		}
	}
	return points
}

// Validate checks the OHLC invariant and that time values are dense from 0.
func (s Sequence) Validate() error {
	for i, c := range s {
		if c.Time != i {
			return fmt.Errorf("candle %d: time %d is not dense", i, c.Time)
		}
		if !c.Valid() {
			return fmt.Errorf("candle %d: low %.2f / high %.2f do not cover body %.2f-%.2f",
				i, c.Low, c.High, c.Open, c.Close)
		}
		if c.IsStructurePoint != (c.StructureLabel != LabelNone) {
			return fmt.Errorf("candle %d: structure flag and label %q disagree", i, c.StructureLabel)
		}
	}
	return nil
}
