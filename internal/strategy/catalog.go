package strategy

import "CVDScenarios/internal/model"

// SequenceLength is the number of candles of every reference chart.
const SequenceLength = 25

// Definition is the fixed authoring data of one scenario.
type Definition struct {
	ID          int
	Title       string
	Price       model.Direction
	CVD         model.Direction
	Action      model.Action
	Sentiment   model.Sentiment
	Color       model.Color
	Description string
	Rule        string

	PriceSeed int
	CVDSeed   int
	Length    int

	Setup SetupRule
}

// seedsFor returns the price and CVD seeds of scenario id.
func seedsFor(id int) (price, cvd int) {
	return 1000 + 2000*(id-1), 2000 + 2000*(id-1)
}

func define(d Definition) Definition {
	d.PriceSeed, d.CVDSeed = seedsFor(d.ID)
	d.Length = SequenceLength
	return d
}

// Catalog returns the nine reference scenarios in id order.
func Catalog() []Definition {
	return []Definition{
		define(Definition{
			ID: 1, Title: "Price UP + CVD UP",
			Price: model.DirectionUp, CVD: model.DirectionUp,
			Action: model.ActionBuy, Sentiment: model.SentimentVeryBullish, Color: model.ColorGreen,
			Description: "Strong bullish confirmation. Both price and volume show buying pressure. High probability long setup.",
			Rule:        "When BOTH Price AND CVD go UP together = STRONG BUY. Enter when CVD breaks previous high (HH).",
			Setup:       closeAt(1.06, 0.98, "1:3"),
		}),
		define(Definition{
			ID: 2, Title: "Price UP + CVD DOWN",
			Price: model.DirectionUp, CVD: model.DirectionDown,
			Action: model.ActionSell, Sentiment: model.SentimentBearishDivergence, Color: model.ColorRed,
			Description: "Price rising but volume declining. Weak buyers, potential reversal. Short at resistance.",
			Rule:        "Price UP but CVD DOWN = FAKE move! Sell when CVD makes lower high (LH) - reversal coming.",
			Setup:       closeAt(0.94, 1.02, "1:3"),
		}),
		define(Definition{
			ID: 3, Title: "Price UP + CVD SIDEWAYS",
			Price: model.DirectionUp, CVD: model.DirectionSideways,
			Action: model.ActionCareful, Sentiment: model.SentimentWeak, Color: model.ColorOrange,
			Description: "Price rising without volume support. Unsustainable move. Wait for confirmation or avoid.",
			Rule:        "Price UP but CVD flat = WEAK. Small target only. Exit fast if CVD starts falling.",
			Setup:       closeAt(1.03, 0.99, "1:1.5"),
		}),
		define(Definition{
			ID: 4, Title: "Price DOWN + CVD UP",
			Price: model.DirectionDown, CVD: model.DirectionUp,
			Action: model.ActionBuy, Sentiment: model.SentimentBullishDivergence, Color: model.ColorGreen,
			Description: "Price falling but buyers accumulating. Reversal setup. Buy at support with tight stop.",
			Rule:        "Price DOWN but CVD UP = Smart money buying the dip! BUY when CVD breaks previous high (HH).",
			Setup:       closeAt(1.07, 0.97, "1:3.5"),
		}),
		define(Definition{
			ID: 5, Title: "Price DOWN + CVD DOWN",
			Price: model.DirectionDown, CVD: model.DirectionDown,
			Action: model.ActionSell, Sentiment: model.SentimentVeryBearish, Color: model.ColorRed,
			Description: "Strong bearish confirmation. Both price and volume show selling pressure. High probability short.",
			Rule:        "BOTH Price AND CVD go DOWN = STRONG SELL. Enter when CVD breaks previous low (LL).",
			Setup:       closeAt(0.93, 1.02, "1:3.5"),
		}),
		define(Definition{
			ID: 6, Title: "Price DOWN + CVD SIDEWAYS",
			Price: model.DirectionDown, CVD: model.DirectionSideways,
			Action: model.ActionCareful, Sentiment: model.SentimentWeak, Color: model.ColorOrange,
			Description: "Price falling without volume confirmation. Weak sellers. Wait for clear direction.",
			Rule:        "Price DOWN but CVD flat = WEAK selling. Small target. Watch for reversal.",
			Setup:       closeAt(0.97, 1.01, "1:1.5"),
		}),
		define(Definition{
			ID: 7, Title: "Price SIDEWAYS + CVD UP",
			Price: model.DirectionSideways, CVD: model.DirectionUp,
			Action: model.ActionPrepareBuy, Sentiment: model.SentimentAccumulation, Color: model.ColorGreen,
			Description: "Smart money accumulating. Price consolidating while buyers load up. Buy breakout above range.",
			Rule:        "Price SIDEWAYS but CVD UP = Accumulation! BUY when price breaks ABOVE the range.",
			Setup:       breakout(1.05, 0.98, "1:2.5"),
		}),
		define(Definition{
			ID: 8, Title: "Price SIDEWAYS + CVD DOWN",
			Price: model.DirectionSideways, CVD: model.DirectionDown,
			Action: model.ActionPrepareSell, Sentiment: model.SentimentDistribution, Color: model.ColorRed,
			Description: "Smart money distributing. Price consolidating while sellers unload. Sell breakdown below range.",
			Rule:        "Price SIDEWAYS but CVD DOWN = Distribution! SELL when price breaks BELOW the range.",
			Setup:       breakout(0.95, 1.02, "1:2.5"),
		}),
		define(Definition{
			ID: 9, Title: "Price SIDEWAYS + CVD SIDEWAYS",
			Price: model.DirectionSideways, CVD: model.DirectionSideways,
			Action: model.ActionWait, Sentiment: model.SentimentNoSignal, Color: model.ColorOrange,
			Description: "No clear direction in price or volume. Market indecision. Stay out until clear signal emerges.",
			Rule:        "BOTH flat = NO SIGNAL. Do NOT trade. Wait for clear direction on BOTH charts.",
			Setup:       SetupRule{Kind: SetupNone},
		}),
	}
}
