package model

// Direction describes where a series is heading.
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionSideways Direction = "sideways"
)

// Directions lists every direction in display order.
var Directions = []Direction{DirectionUp, DirectionDown, DirectionSideways}

// Rank returns the display rank of the direction (up, down, sideways).
func (d Direction) Rank() int {
	switch d {
	case DirectionUp:
		return 0
	case DirectionDown:
		return 1
	case DirectionSideways:
		return 2
	}
	return 3
}

// Action is the recommended trade action.
type Action string

const (
	ActionBuy         Action = "BUY"
	ActionSell        Action = "SELL"
	ActionCareful     Action = "CAREFUL"
	ActionPrepareBuy  Action = "PREPARE BUY"
	ActionPrepareSell Action = "PREPARE SELL"
	ActionWait        Action = "WAIT"
)

// Long reports whether the action commits to a bullish setup.
func (a Action) Long() bool { return a == ActionBuy || a == ActionPrepareBuy }

// Short reports whether the action commits to a bearish setup.
func (a Action) Short() bool { return a == ActionSell || a == ActionPrepareSell }

// Sentiment labels the combined reading of price and CVD.
type Sentiment string

const (
	SentimentVeryBullish       Sentiment = "VERY BULLISH"
	SentimentBullishDivergence Sentiment = "BULLISH DIVERGENCE"
	SentimentVeryBearish       Sentiment = "VERY BEARISH"
	SentimentBearishDivergence Sentiment = "BEARISH DIVERGENCE"
	SentimentAccumulation      Sentiment = "ACCUMULATION"
	SentimentDistribution      Sentiment = "DISTRIBUTION"
	SentimentWeak              Sentiment = "WEAK"
	SentimentNoSignal          Sentiment = "NO SIGNAL"
)

// Color tags the card of a scenario.
type Color string

const (
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
)

// NoEntryTime marks a trade setup without an entry candle.
const NoEntryTime = -1

// TradeSetup holds the entry, target and stop of a scenario.
type TradeSetup struct {
	Entry      float64 `json:"entry"`
	Target     float64 `json:"target"`
	StopLoss   float64 `json:"stopLoss"`
	EntryTime  int     `json:"entryTime"`
	RiskReward string  `json:"riskReward"`
}

// NoTrade is the setup attached to WAIT scenarios.
func NoTrade() TradeSetup {
	return TradeSetup{EntryTime: NoEntryTime, RiskReward: "N/A"}
}

// HasEntry reports whether the setup points at an entry candle.
func (t TradeSetup) HasEntry() bool { return t.EntryTime != NoEntryTime }

// Long reports whether target > entry > stop.
func (t TradeSetup) Long() bool { return t.Target > t.Entry && t.Entry > t.StopLoss }

// Short reports whether target < entry < stop.
func (t TradeSetup) Short() bool { return t.Target < t.Entry && t.Entry < t.StopLoss }

// Scenario is one of the nine price/CVD combinations.
type Scenario struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	PriceDirection Direction  `json:"priceDirection"`
	CVDDirection   Direction  `json:"cvdDirection"`
	Action         Action     `json:"action"`
	Sentiment      Sentiment  `json:"sentiment"`
	Color          Color      `json:"color"`
	Description    string     `json:"description"`
	Rule           string     `json:"rule"`
	PriceData      Sequence   `json:"priceData"`
	CVDData        Sequence   `json:"cvdData"`
	TradeSetup     TradeSetup `json:"tradeSetup"`
}
