package recorder

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CVDScenarios/internal/strategy"
)

func openRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "scenarios.db"))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func newRun(t *testing.T) *Run {
	t.Helper()
	scenarios, err := strategy.Assemble(strategy.Catalog())
	require.NoError(t, err)
	return NewRun(scenarios, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

func count(t *testing.T, r *SQLiteRecorder, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, r.db.QueryRow(query, args...).Scan(&n))
	return n
}

func TestNewRun(t *testing.T) {
	run := newRun(t)
	_, err := uuid.Parse(run.ID)
	require.NoError(t, err)
	assert.NotEqual(t, run.ID, newRun(t).ID)
	assert.Len(t, run.Scenarios, 9)
}

func TestSQLiteRecorder_RecordRun(t *testing.T) {
	r := openRecorder(t)
	run := newRun(t)
	require.NoError(t, r.RecordRun(context.Background(), run))

	assert.Equal(t, 1, count(t, r, `SELECT COUNT(*) FROM runs WHERE id = ?`, run.ID))
	assert.Equal(t, 9, count(t, r, `SELECT COUNT(*) FROM scenarios WHERE run_id = ?`, run.ID))
	assert.Equal(t, 9*25*2, count(t, r, `SELECT COUNT(*) FROM candles WHERE run_id = ?`, run.ID))
	assert.Equal(t, 9*25, count(t, r, `SELECT COUNT(*) FROM candles WHERE series = ? AND volume > 0`, SeriesPrice))

	var action, rr string
	var entryTime, order int
	require.NoError(t, r.db.QueryRow(
		`SELECT action, risk_reward, entry_time, display_order FROM scenarios WHERE run_id = ? AND scenario_id = 9`, run.ID,
	).Scan(&action, &rr, &entryTime, &order))
	assert.Equal(t, "WAIT", action)
	assert.Equal(t, "N/A", rr)
	assert.Equal(t, -1, entryTime)
	assert.Equal(t, 8, order)

	var close15 float64
	require.NoError(t, r.db.QueryRow(
		`SELECT close FROM candles WHERE run_id = ? AND scenario_id = 1 AND series = 'price' AND time = 15`, run.ID,
	).Scan(&close15))
	assert.Equal(t, run.Scenarios[0].TradeSetup.Entry, close15)

	assert.Equal(t, 6, count(t, r,
		`SELECT COUNT(*) FROM candles WHERE scenario_id = 1 AND series = 'price' AND structure_label IS NOT NULL`))
}

func TestSQLiteRecorder_DuplicateRunRollsBack(t *testing.T) {
	r := openRecorder(t)
	run := newRun(t)
	require.NoError(t, r.RecordRun(context.Background(), run))
	require.Error(t, r.RecordRun(context.Background(), run))

	assert.Equal(t, 1, count(t, r, `SELECT COUNT(*) FROM runs`))
	assert.Equal(t, 9*25*2, count(t, r, `SELECT COUNT(*) FROM candles`))
}

func TestSQLiteRecorder_CanceledContext(t *testing.T) {
	r := openRecorder(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, r.RecordRun(ctx, newRun(t)))
	assert.Equal(t, 0, count(t, r, `SELECT COUNT(*) FROM runs`))
}

func TestNoopRecorder(t *testing.T) {
	var rec Recorder = NewNoopRecorder()
	assert.NoError(t, rec.RecordRun(context.Background(), newRun(t)))
	assert.NoError(t, rec.Close())
}
