package generator

import (
	"math"

	"CVDScenarios/internal/model"
)

// Odds of a price candle moving against its pull.
const (
	priceTrendOdds = 0.25
	priceBandOdds  = 0.3
)

// Price generates a price chart of length candles from profile p, drawing
// from seed onward. Every candle carries a volume.
func Price(p Profile, length, seed int) model.Sequence {
	return walk(p, length, seed, priceBuilder{}, true)
}

type priceBuilder struct{}

func (priceBuilder) swing(s Swing, running float64, cur *cursor) Body {
	var b Body
	switch s.Label {
	case model.LabelHL:
		b = mustSynthesize(ShapeHammer, s.Level+2, cur.seed)
	case model.LabelHH:
		b = mustSynthesize(ShapeBullishEngulfing, running, cur.seed)
		b.High, b.Close = s.Level, s.Level-1
	case model.LabelLH:
		b = mustSynthesize(ShapeInvertedHammer, s.Level-2, cur.seed)
	case model.LabelLL:
		b = mustSynthesize(ShapeBearishEngulfing, running, cur.seed)
		b.Low, b.Close = s.Level, s.Level+1
	case model.LabelSupport:
		b = mustSynthesize(ShapeHammer, s.Level+1, cur.seed)
		b.Low, b.Close = s.Level, s.Level+2
	case model.LabelResistance:
		b = mustSynthesize(ShapeInvertedHammer, s.Level-1, cur.seed)
		b.High, b.Close = s.Level, s.Level-2
	}
	return b
}

func (priceBuilder) doji(running float64, cur *cursor) Body {
	b := mustSynthesize(ShapeDoji, running, cur.seed)
	b.Close = running + (cur.peek(0)-0.5)*0.5
	return b
}

func (priceBuilder) hammer(running float64, cur *cursor) Body {
	return mustSynthesize(ShapeHammer, running, cur.seed)
}

func (priceBuilder) band(p Profile, running float64, cur *cursor) Body {
	up := biased(running-p.Floor < p.Ceiling-running, cur.draw(), priceBandOdds)
	size := cur.draw()*1.8 + 0.8

	b := Body{Open: running}
	if up {
		b.Close = min(p.Ceiling-0.5, running+size)
	} else {
		b.Close = max(p.Floor+0.5, running-size)
	}
	b.High = min(p.Ceiling, max(b.Open, b.Close)+cur.draw()*1.5+0.5)
	b.Low = max(p.Floor, min(b.Open, b.Close)-cur.draw()*1.5-0.5)
	return b
}

func (priceBuilder) trend(p Profile, swings swingTable, i int, running float64, cur *cursor) Body {
	d := p.Trend.sign()
	target, steps := swings.target(p, i, running)
	step := (target - running) / float64(steps)

	with := biased(step*d > 0, cur.draw(), priceTrendOdds)
	size := math.Abs(step)*cur.draw()*2 + 1.2

	b := Body{Open: running}
	if with {
		b.Close = running + d*size
	} else {
		b.Close = running - d*size*0.4
	}

	// The wick on the trend side is the longer one.
	hiScale, hiBase, loScale, loBase := 1.5, 0.5, 1.2, 0.4
	if d < 0 {
		hiScale, hiBase, loScale, loBase = loScale, loBase, hiScale, hiBase
	}
	b.High = max(b.Open, b.Close) + cur.draw()*hiScale + hiBase
	b.Low = min(b.Open, b.Close) - cur.draw()*loScale - loBase
	return b
}
