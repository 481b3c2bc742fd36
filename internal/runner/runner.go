package runner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"CVDScenarios/internal/logger"
	"CVDScenarios/internal/model"
	"CVDScenarios/internal/notifier"
	"CVDScenarios/internal/observability"
	"CVDScenarios/internal/recorder"
	"CVDScenarios/internal/strategy"
)

// Runner generates the catalog once and hands it to every configured sink.
type Runner struct {
	Definitions []strategy.Definition
	Notifier    notifier.Notifier
	Recorder    recorder.Recorder
	Metrics     *observability.Metrics
	MetricsPath string
	Now         func() time.Time
}

// NewRunner creates a Runner over the built-in catalog.
func NewRunner(n notifier.Notifier, rec recorder.Recorder, m *observability.Metrics, metricsPath string) *Runner {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Runner{
		Definitions: strategy.Catalog(),
		Notifier:    n,
		Recorder:    rec,
		Metrics:     m,
		MetricsPath: metricsPath,
		Now:         time.Now,
	}
}

// Run assembles the scenarios and delivers them. A generation failure aborts
// the run; sink failures are collected and returned together after every sink
// was tried.
func (r *Runner) Run(ctx context.Context) ([]model.Scenario, error) {
	logger.Info("generating scenarios", zap.Int("definitions", len(r.Definitions)))
	start := r.now()
	scenarios, err := strategy.Assemble(r.Definitions)
	if err != nil {
		return nil, fmt.Errorf("assemble scenarios: %w", err)
	}
	elapsed := r.now().Sub(start)
	logger.Info("scenarios generated",
		zap.Int("scenarios", len(scenarios)),
		zap.Duration("elapsed", elapsed))

	var errs error
	if r.Notifier != nil {
		if err := r.Notifier.Notify(scenarios); err != nil {
			logger.Error("notify", zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("notify: %w", err))
		}
	}

	if r.Recorder != nil {
		run := recorder.NewRun(scenarios, start)
		if err := r.Recorder.RecordRun(ctx, run); err != nil {
			logger.Error("record run", zap.String("run", run.ID), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("record run: %w", err))
		} else {
			logger.Debug("run recorded", zap.String("run", run.ID))
		}
	}

	if r.Metrics != nil {
		r.Metrics.ObserveRun(scenarios, elapsed, start)
		if r.MetricsPath != "" {
			if err := r.Metrics.WriteTextfile(r.MetricsPath); err != nil {
				logger.Error("write metrics", zap.Error(err))
				errs = multierr.Append(errs, err)
			}
		}
	}

	return scenarios, errs
}

func (r *Runner) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}
