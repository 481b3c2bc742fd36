package generator

import "CVDScenarios/internal/model"

// builder draws the individual candles of one series kind.
type builder interface {
	swing(s Swing, running float64, cur *cursor) Body
	doji(running float64, cur *cursor) Body
	hammer(running float64, cur *cursor) Body
	band(p Profile, running float64, cur *cursor) Body
	trend(p Profile, swings swingTable, i int, running float64, cur *cursor) Body
}

// walk runs the shared candle loop. The running value is the unrounded
// close of the previous candle.
func walk(p Profile, length, seed int, b builder, withVolume bool) model.Sequence {
	if length <= 0 {
		return model.Sequence{}
	}
	swings := newSwingTable(p.Swings, length)
	dojis := indexSet(p.Dojis)
	hammers := indexSet(p.Hammers)
	cur := newCursor(seed)
	running := p.Start

	seq := make(model.Sequence, 0, length)
	for i := 0; i < length; i++ {
		var body Body
		label := model.LabelNone
		swing, isSwing := swings.at(i)
		switch {
		case isSwing:
			body = b.swing(swing, running, cur)
			label = swing.Label
		case dojis[i]:
			body = b.doji(running, cur)
		case hammers[i]:
			body = b.hammer(running, cur)
		case p.Trend == TrendSideways:
			body = b.band(p, running, cur)
		default:
			body = b.trend(p, swings, i, running, cur)
		}
		body.widen()
		running = body.Close
		cur.endCandle()

		c := candleOf(i, body, label)
		if withVolume {
			c.Volume = Round2(cur.draw()*1000 + 500)
		}
		seq = append(seq, c)
	}
	return seq
}

func candleOf(i int, b Body, label model.StructureLabel) model.Candle {
	return model.Candle{
		Time:             i,
		Open:             Round2(b.Open),
		High:             Round2(b.High),
		Low:              Round2(b.Low),
		Close:            Round2(b.Close),
		Pattern:          b.Pattern,
		IsStructurePoint: label != model.LabelNone,
		StructureLabel:   label,
	}
}

// biased reports a move in the favoured direction: likely when along is
// true, unlikely otherwise.
func biased(along bool, r, odds float64) bool {
	if along {
		return r > odds
	}
	return r < odds
}
