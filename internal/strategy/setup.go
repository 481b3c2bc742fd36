package strategy

import (
	"errors"
	"fmt"

	"CVDScenarios/internal/calculator"
	"CVDScenarios/internal/model"
)

// ErrInconsistentSetup is returned when a trade setup contradicts its action.
var ErrInconsistentSetup = errors.New("inconsistent trade setup")

// SetupKind selects how a trade setup is derived from the price chart.
type SetupKind int

const (
	SetupNone SetupKind = iota
	// SetupCloseAt enters on the close of a reference candle.
	SetupCloseAt
	// SetupBreakout enters just beyond the range of a trailing window.
	SetupBreakout
)

// Reference indices of the setups.
const (
	closeEntryIndex   = 15
	breakoutWindow    = 10
	breakoutEntryTime = 16
	breakoutBuffer    = 0.5
)

// SetupRule holds the fixed parameters of one setup.
type SetupRule struct {
	Kind         SetupKind
	EntryIndex   int
	WindowFrom   int
	Buffer       float64
	TargetFactor float64
	StopFactor   float64
	RiskReward   string
}

func closeAt(target, stop float64, rr string) SetupRule {
	return SetupRule{
		Kind:         SetupCloseAt,
		EntryIndex:   closeEntryIndex,
		TargetFactor: target,
		StopFactor:   stop,
		RiskReward:   rr,
	}
}

func breakout(target, stop float64, rr string) SetupRule {
	return SetupRule{
		Kind:         SetupBreakout,
		EntryIndex:   breakoutEntryTime,
		WindowFrom:   breakoutWindow,
		Buffer:       breakoutBuffer,
		TargetFactor: target,
		StopFactor:   stop,
		RiskReward:   rr,
	}
}

// deriveSetup computes the trade setup of a rule over the price chart.
// Breakouts go above the window for long actions and below it otherwise.
func deriveSetup(rule SetupRule, action model.Action, price model.Sequence) (model.TradeSetup, error) {
	var entry float64
	switch rule.Kind {
	case SetupNone:
		return model.NoTrade(), nil
	case SetupCloseAt:
		c, err := price.At(rule.EntryIndex)
		if err != nil {
			return model.TradeSetup{}, fmt.Errorf("entry candle: %w", err)
		}
		entry = c.Close
	case SetupBreakout:
		high, low, err := calculator.WindowRange(price, rule.WindowFrom)
		if err != nil {
			return model.TradeSetup{}, fmt.Errorf("breakout window: %w", err)
		}
		if action.Long() {
			entry = high + rule.Buffer
		} else {
			entry = low - rule.Buffer
		}
	default:
		return model.TradeSetup{}, fmt.Errorf("setup kind %d: %w", rule.Kind, ErrInconsistentSetup)
	}

	return model.TradeSetup{
		Entry:      entry,
		Target:     entry * rule.TargetFactor,
		StopLoss:   entry * rule.StopFactor,
		EntryTime:  rule.EntryIndex,
		RiskReward: rule.RiskReward,
	}, nil
}

// checkSetup verifies that the setup points the way the action does.
// CAREFUL setups follow the price direction.
func checkSetup(d Definition, s model.TradeSetup) error {
	switch {
	case d.Action == model.ActionWait:
		if s != model.NoTrade() {
			return fmt.Errorf("scenario %d: WAIT carries a trade: %w", d.ID, ErrInconsistentSetup)
		}
		return nil
	case d.Action.Long(), d.Action == model.ActionCareful && d.Price == model.DirectionUp:
		if !s.Long() {
			return fmt.Errorf("scenario %d: %s needs target > entry > stop, got %.2f/%.2f/%.2f: %w",
				d.ID, d.Action, s.Target, s.Entry, s.StopLoss, ErrInconsistentSetup)
		}
	case d.Action.Short(), d.Action == model.ActionCareful && d.Price == model.DirectionDown:
		if !s.Short() {
			return fmt.Errorf("scenario %d: %s needs target < entry < stop, got %.2f/%.2f/%.2f: %w",
				d.ID, d.Action, s.Target, s.Entry, s.StopLoss, ErrInconsistentSetup)
		}
	default:
		if !s.Long() && !s.Short() {
			return fmt.Errorf("scenario %d: setup has no direction: %w", d.ID, ErrInconsistentSetup)
		}
	}
	if !s.HasEntry() {
		return fmt.Errorf("scenario %d: missing entry time: %w", d.ID, ErrInconsistentSetup)
	}
	return nil
}
