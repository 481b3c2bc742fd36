package recorder

import (
	"context"
	"time"

	"github.com/google/uuid"

	"CVDScenarios/internal/model"
)

// Series names used in the candles table.
const (
	SeriesPrice = "price"
	SeriesCVD   = "cvd"
)

// Run is one generation of the scenario catalog.
type Run struct {
	ID          string
	GeneratedAt time.Time
	Scenarios   []model.Scenario
}

// NewRun stamps the scenarios with a fresh run id.
func NewRun(scenarios []model.Scenario, at time.Time) *Run {
	return &Run{
		ID:          uuid.NewString(),
		GeneratedAt: at,
		Scenarios:   scenarios,
	}
}

// Recorder exports generated runs for offline analysis.
type Recorder interface {
	RecordRun(ctx context.Context, run *Run) error
	Close() error
}
