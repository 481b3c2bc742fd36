package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"CVDScenarios/internal/model"
	"CVDScenarios/internal/observability"
	"CVDScenarios/internal/recorder"
	"CVDScenarios/internal/strategy"
)

type captureNotifier struct {
	got []model.Scenario
	err error
}

func (c *captureNotifier) Notify(scenarios []model.Scenario) error {
	c.got = scenarios
	return c.err
}

type failingRecorder struct{ runs int }

func (f *failingRecorder) RecordRun(_ context.Context, _ *recorder.Run) error {
	f.runs++
	return errors.New("disk full")
}
func (f *failingRecorder) Close() error { return nil }

func fixedClock() func() time.Time {
	t := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func TestRun_DeliversToEverySink(t *testing.T) {
	n := &captureNotifier{}
	m := observability.NewMetrics("")
	path := filepath.Join(t.TempDir(), "cvd.prom")

	r := NewRunner(n, nil, m, path)
	r.Now = fixedClock()
	scenarios, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, scenarios, 9)
	assert.Equal(t, scenarios, n.got)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScenariosByAction.WithLabelValues(string(model.ActionWait))))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestRun_CollectsSinkErrors(t *testing.T) {
	n := &captureNotifier{err: errors.New("broken pipe")}
	rec := &failingRecorder{}
	m := observability.NewMetrics("")

	r := NewRunner(n, rec, m, filepath.Join(t.TempDir(), "missing", "cvd.prom"))
	scenarios, err := r.Run(context.Background())
	require.Error(t, err)

	assert.Len(t, scenarios, 9)
	assert.Equal(t, 1, rec.runs)
	assert.Len(t, multierr.Errors(err), 3)
	assert.ErrorContains(t, err, "broken pipe")
	assert.ErrorContains(t, err, "disk full")
}

func TestRun_InvalidCatalog(t *testing.T) {
	n := &captureNotifier{}
	r := NewRunner(n, nil, nil, "")
	r.Definitions = strategy.Catalog()[:8]

	_, err := r.Run(context.Background())
	require.ErrorIs(t, err, strategy.ErrInvalidCatalog)
	assert.Nil(t, n.got)
}

func TestRun_NoSinks(t *testing.T) {
	r := &Runner{Definitions: strategy.Catalog()}
	scenarios, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, scenarios, 9)
}
