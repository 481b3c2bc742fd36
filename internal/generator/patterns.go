package generator

import (
	"errors"
	"fmt"

	"CVDScenarios/internal/model"
)

// ErrUnknownShape is returned by Synthesize for a shape outside the closed set.
var ErrUnknownShape = errors.New("unknown candle shape")

// Shape selects one of the candlestick templates.
type Shape int

const (
	ShapeBullishEngulfing Shape = iota + 1
	ShapeBearishEngulfing
	ShapeHammer
	ShapeInvertedHammer
	ShapeDoji
)

// Pattern returns the tag attached to candles built from the shape.
func (s Shape) Pattern() model.Pattern {
	switch s {
	case ShapeBullishEngulfing:
		return model.PatternBullishEngulfing
	case ShapeBearishEngulfing:
		return model.PatternBearishEngulfing
	case ShapeHammer:
		return model.PatternHammer
	case ShapeInvertedHammer:
		return model.PatternInvertedHammer
	case ShapeDoji:
		return model.PatternDoji
	}
	return model.PatternNone
}

func (s Shape) String() string {
	if p := s.Pattern(); p != model.PatternNone {
		return string(p)
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Body is an unrounded candle without time or annotations.
type Body struct {
	Open, High, Low, Close float64
	Pattern                model.Pattern
}

// widen stretches the wicks so they cover the body.
func (b *Body) widen() {
	b.High = max(b.High, b.Open, b.Close)
	b.Low = min(b.Low, b.Open, b.Close)
}

// hammerWickRatio is the minimum wick length of a hammer, in bodies.
const hammerWickRatio = 3

// Synthesize builds the candle for shape around ref using the draws at
// seed, seed+1, seed+2 and seed+3. It does not consume the caller's cursor.
func Synthesize(shape Shape, ref float64, seed int) (Body, error) {
	r0, r1, r2, r3 := Next(seed), Next(seed+1), Next(seed+2), Next(seed+3)
	var b Body
	switch shape {
	case ShapeBullishEngulfing:
		b.Open = ref - r0*1.5 - 0.5
		b.Close = b.Open + r1*4 + 3
		b.High = b.Close + r2*0.8 + 0.3
		b.Low = b.Open - r3*0.8 - 0.3
	case ShapeBearishEngulfing:
		b.Open = ref + r0*1.5 + 0.5
		b.Close = b.Open - r1*4 - 3
		b.High = b.Open + r2*0.8 + 0.3
		b.Low = b.Close - r3*0.8 - 0.3
	case ShapeHammer:
		b.Open = ref - r0*0.8
		b.Close = b.Open + r1*1.2 + 0.8
		wick := max(r2*4+2, (b.Close-b.Open)*hammerWickRatio)
		b.Low = b.Open - wick
		b.High = b.Close + r3*0.4
	case ShapeInvertedHammer:
		b.Open = ref + r0*0.8
		b.Close = b.Open - r1*1.2 - 0.8
		wick := max(r2*4+2, (b.Open-b.Close)*hammerWickRatio)
		b.High = b.Open + wick
		b.Low = b.Close - r3*0.4
	case ShapeDoji:
		b.Open = ref
		b.Close = b.Open + (r0-0.5)*0.3
		b.High = b.Open + r1*2 + 1
		b.Low = b.Open - r2*2 - 1
	default:
		return Body{}, fmt.Errorf("synthesize %v: %w", shape, ErrUnknownShape)
	}
	b.Pattern = shape.Pattern()
	return b, nil
}

// mustSynthesize is used with the fixed shapes of the generators.
func mustSynthesize(shape Shape, ref float64, seed int) Body {
	b, err := Synthesize(shape, ref, seed)
	if err != nil {
		panic(err)
	}
	return b
}
