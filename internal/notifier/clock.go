package notifier

import (
	"fmt"
	"time"

	"CVDScenarios/internal/model"
)

// Clock maps candle positions to a synthetic time of day.
type Clock struct {
	Epoch time.Time
	Bar   time.Duration
}

// At returns the open time of candle i of seq.
func (c Clock) At(seq model.Sequence, i int) (time.Time, error) {
	candle, err := seq.At(i)
	if err != nil {
		return time.Time{}, fmt.Errorf("entry clock: %w", err)
	}
	return c.Epoch.Add(time.Duration(candle.Time) * c.Bar), nil
}
