package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CVDScenarios/internal/model"
)

func bars() model.Sequence {
	return model.Sequence{
		{Time: 0, Open: 100, High: 101, Low: 99, Close: 100},
		{Time: 1, Open: 100, High: 104, Low: 98, Close: 103, Pattern: model.PatternBullishEngulfing, IsStructurePoint: true, StructureLabel: model.LabelHH},
		{Time: 2, Open: 103, High: 103.5, Low: 97, Close: 98, Pattern: model.PatternDoji},
		{Time: 3, Open: 98, High: 102, Low: 97.5, Close: 101, Pattern: model.PatternDoji, IsStructurePoint: true, StructureLabel: model.LabelHL},
	}
}

func TestWindowRange(t *testing.T) {
	high, low, err := WindowRange(bars(), 0)
	require.NoError(t, err)
	assert.Equal(t, 104.0, high)
	assert.Equal(t, 97.0, low)

	high, low, err = WindowRange(bars(), 3)
	require.NoError(t, err)
	assert.Equal(t, 102.0, high)
	assert.Equal(t, 97.5, low)

	_, _, err = WindowRange(bars(), 4)
	require.ErrorIs(t, err, model.ErrOutOfRange)
	_, _, err = WindowRange(bars(), -1)
	require.ErrorIs(t, err, model.ErrOutOfRange)
	_, _, err = WindowRange(nil, 0)
	require.ErrorIs(t, err, ErrNoCandles)
}

func TestPosition(t *testing.T) {
	tests := []struct {
		current, high, low, want float64
	}{
		{100, 110, 90, 0.5},
		{80, 110, 90, 0},
		{120, 110, 90, 1},
		{5, 5, 5, 0.5},
	}
	for _, tt := range tests {
		got, err := Position(tt.current, tt.high, tt.low)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9)
	}
	_, err := Position(1, 0, 2)
	assert.Error(t, err)
}

func TestSMA(t *testing.T) {
	got, err := SMA([]float64{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.5, got)

	_, err = SMA([]float64{1}, 2)
	assert.Error(t, err)
	_, err = SMA([]float64{1}, 0)
	assert.Error(t, err)
}

func TestRSI(t *testing.T) {
	up := make([]float64, 20)
	for i := range up {
		up[i] = float64(i)
	}
	got, err := RSI(up, 14)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, got, 1e-9)

	down := make([]float64, 20)
	for i := range down {
		down[i] = float64(100 - i)
	}
	got, err = RSI(down, 14)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-9)

	got, err = RSI([]float64{1, 2}, 14)
	require.NoError(t, err)
	assert.Equal(t, 50.0, got)

	_, err = RSI(up, 0)
	assert.Error(t, err)
	_, err = RSI(up, 1)
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	s, err := Summarize(bars())
	require.NoError(t, err)

	assert.Equal(t, 100.0, s.First)
	assert.Equal(t, 101.0, s.Last)
	assert.Equal(t, 1.0, s.Change())
	assert.Equal(t, 104.0, s.High)
	assert.Equal(t, 97.0, s.Low)
	assert.InDelta(t, 100.5, s.Mean, 1e-9)
	assert.Equal(t, 50.0, s.RSI)
	assert.InDelta(t, 4.0/7.0, s.Position, 1e-9)
	assert.Equal(t, 2, s.StructurePoints)
	assert.Equal(t, 2, s.Patterns[model.PatternDoji])
	assert.Equal(t, 3, s.PatternCount())

	_, err = Summarize(model.Sequence{})
	require.ErrorIs(t, err, ErrNoCandles)
}

func TestStructureLevel(t *testing.T) {
	seq := bars()
	assert.Equal(t, 104.0, StructureLevel(seq[1]))
	assert.Equal(t, 97.5, StructureLevel(seq[3]))
}

func TestLastStructureBefore(t *testing.T) {
	seq := bars()

	c, ok := LastStructureBefore(seq, 3, TriggerLookback)
	require.True(t, ok)
	assert.Equal(t, 1, c.Time)

	c, ok = LastStructureBefore(seq, 10, TriggerLookback)
	require.True(t, ok)
	assert.Equal(t, 3, c.Time)

	_, ok = LastStructureBefore(seq, 3, 1)
	assert.False(t, ok)
	_, ok = LastStructureBefore(seq, 0, TriggerLookback)
	assert.False(t, ok)
}
