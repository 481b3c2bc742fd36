package generator

import "CVDScenarios/internal/model"

const (
	cvdTrendOdds = 0.35
	cvdBandOdds  = 0.4
)

// CVD generates a cumulative volume delta chart. The value is signed and
// unbounded and the candles carry no volume.
func CVD(p Profile, length, seed int) model.Sequence {
	return walk(p, length, seed, cvdBuilder{}, false)
}

type cvdBuilder struct{}

func (cvdBuilder) swing(s Swing, running float64, cur *cursor) Body {
	// The first draw sizes nothing but keeps later draws in place.
	cur.draw()

	b := Body{Open: running}
	switch s.Label {
	case model.LabelHL, model.LabelSupport:
		b.Close = s.Level + 3
		b.High = running + cur.draw()*6 + 2
		b.Low = s.Level
		b.Pattern = model.PatternHammer
	case model.LabelHH:
		b.Close = s.Level - 2
		b.High = s.Level
		b.Low = running - cur.draw()*5 - 2
	case model.LabelLH, model.LabelResistance:
		b.Close = s.Level - 3
		b.High = s.Level
		b.Low = running - cur.draw()*6 - 2
		b.Pattern = model.PatternInvertedHammer
	case model.LabelLL:
		b.Close = s.Level + 2
		b.High = running + cur.draw()*5 + 2
		b.Low = s.Level
	}
	return b
}

func (cvdBuilder) doji(running float64, cur *cursor) Body {
	b := Body{Open: running, Pattern: model.PatternDoji}
	b.Close = running + (cur.peek(0)-0.5)*2
	b.High = max(b.Open, b.Close) + cur.peek(1)*8 + 3
	b.Low = min(b.Open, b.Close) - cur.peek(2)*8 - 3
	return b
}

func (cvdBuilder) hammer(running float64, _ *cursor) Body {
	return Body{
		Open:    running,
		Close:   running + 4,
		High:    running + 7,
		Low:     running - 12,
		Pattern: model.PatternHammer,
	}
}

func (cvdBuilder) band(p Profile, running float64, cur *cursor) Body {
	up := biased(running-p.Floor < p.Ceiling-running, cur.draw(), cvdBandOdds)
	size := cur.draw()*7 + 3

	b := Body{Open: running}
	if up {
		b.Close = min(p.Ceiling-2, running+size)
	} else {
		b.Close = max(p.Floor+2, running-size)
	}
	b.High = max(b.Open, b.Close) + cur.draw()*6 + 2
	b.Low = min(b.Open, b.Close) - cur.draw()*6 - 2
	return b
}

func (cvdBuilder) trend(p Profile, swings swingTable, i int, running float64, cur *cursor) Body {
	d := p.Trend.sign()
	target, steps := swings.target(p, i, running)
	step := (target - running) / float64(steps)

	with := biased(step*d > 0, cur.draw(), cvdTrendOdds)
	size := cur.draw()*12 + 4

	b := Body{Open: running}
	if with {
		b.Close = running + d*size
	} else {
		b.Close = running - d*size*0.4
	}
	b.High = max(b.Open, b.Close) + cur.draw()*8 + 2
	b.Low = min(b.Open, b.Close) - cur.draw()*8 - 2
	return b
}
