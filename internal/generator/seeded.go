package generator

import "math"

// SeedStride bounds how far the seed cursor advances for one candle.
// Price candles consume at most 4 draws, the stride of 10 and 1 volume draw.
const SeedStride = 16

// candleStride is the fixed skip applied after every candle.
const candleStride = 10

// Next maps a seed to a pseudo-random scalar in [0, 1).
func Next(seed int) float64 {
	x := math.Sin(float64(seed)) * 10000
	r := x - math.Floor(x)
	if r >= 1 || r < 0 || math.IsNaN(r) {
		return 0
	}
	return r
}

// cursor walks the seed space one draw at a time.
type cursor struct {
	seed int
}

func newCursor(seed int) *cursor {
	return &cursor{seed: seed}
}

// draw returns the scalar at the cursor and advances it.
func (c *cursor) draw() float64 {
	r := Next(c.seed)
	c.seed++
	return r
}

// peek returns the scalar at cursor+offset without moving.
func (c *cursor) peek(offset int) float64 {
	return Next(c.seed + offset)
}

// endCandle applies the per-candle stride.
func (c *cursor) endCandle() {
	c.seed += candleStride
}
