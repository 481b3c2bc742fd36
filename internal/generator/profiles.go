package generator

import (
	"errors"
	"fmt"
	"slices"

	"CVDScenarios/internal/model"
)

// ErrUnknownTrend is returned for a macro pattern or direction without a profile.
var ErrUnknownTrend = errors.New("unknown trend")

// Trend is the macro pattern a sequence follows.
type Trend string

const (
	TrendUp       Trend = "uptrend"
	TrendDown     Trend = "downtrend"
	TrendSideways Trend = "sideways"
)

// sign returns +1 for an uptrend, -1 for a downtrend and 0 otherwise.
func (t Trend) sign() float64 {
	switch t {
	case TrendUp:
		return 1
	case TrendDown:
		return -1
	}
	return 0
}

// TrendOf maps a scenario direction to the macro pattern that draws it.
func TrendOf(d model.Direction) (Trend, error) {
	switch d {
	case model.DirectionUp:
		return TrendUp, nil
	case model.DirectionDown:
		return TrendDown, nil
	case model.DirectionSideways:
		return TrendSideways, nil
	}
	return "", fmt.Errorf("direction %q: %w", d, ErrUnknownTrend)
}

// Swing is a structural point the walk is pulled toward.
type Swing struct {
	At    int
	Label model.StructureLabel
	Level float64
}

// Profile is the immutable table driving one sequence.
type Profile struct {
	Trend Trend
	Start float64

	Swings []Swing

	// Band limits, used by sideways profiles.
	Floor, Ceiling float64

	// Dojis and Hammers are fixed-shape candles of sideways CVD and price walks.
	Dojis   []int
	Hammers []int

	// Trend walks aim HighApproach below a swing high and LowApproach above
	// a swing low. Past the last swing the target moves by TailDrift.
	HighApproach float64
	LowApproach  float64
	TailDrift    float64
}

// PriceProfile returns the swing table of a price chart.
func PriceProfile(t Trend) (Profile, error) {
	switch t {
	case TrendUp:
		return Profile{
			Trend: TrendUp,
			Start: 95,
			Swings: []Swing{
				{3, model.LabelHL, 95},
				{7, model.LabelHH, 108},
				{11, model.LabelHL, 102},
				{15, model.LabelHH, 118},
				{19, model.LabelHL, 112},
				{23, model.LabelHH, 128},
			},
			HighApproach: 3,
			LowApproach:  3,
		}, nil
	case TrendDown:
		return Profile{
			Trend: TrendDown,
			Start: 100,
			Swings: []Swing{
				{3, model.LabelLH, 100},
				{7, model.LabelLL, 88},
				{11, model.LabelLH, 94},
				{15, model.LabelLL, 78},
				{19, model.LabelLH, 84},
				{23, model.LabelLL, 70},
			},
			HighApproach: 3,
			LowApproach:  3,
		}, nil
	case TrendSideways:
		return Profile{
			Trend:   TrendSideways,
			Start:   100,
			Floor:   95,
			Ceiling: 105,
			Swings: []Swing{
				{5, model.LabelSupport, 95},
				{9, model.LabelResistance, 105},
				{13, model.LabelSupport, 95},
				{17, model.LabelResistance, 105},
				{21, model.LabelSupport, 95},
			},
			Dojis: []int{3, 11, 19},
		}, nil
	}
	return Profile{}, fmt.Errorf("price profile %q: %w", t, ErrUnknownTrend)
}

// CVDProfile returns the swing table of a cumulative delta chart.
func CVDProfile(d model.Direction) (Profile, error) {
	switch d {
	case model.DirectionUp:
		return Profile{
			Trend: TrendUp,
			Start: -50,
			Swings: []Swing{
				{5, model.LabelHL, -30},
				{10, model.LabelHH, 80},
				{15, model.LabelHL, 50},
				{20, model.LabelHH, 150},
				{23, model.LabelHL, 120},
			},
			HighApproach: 10,
			LowApproach:  5,
			TailDrift:    8,
		}, nil
	case model.DirectionDown:
		return Profile{
			Trend: TrendDown,
			Start: 50,
			Swings: []Swing{
				{5, model.LabelLH, 30},
				{10, model.LabelLL, -80},
				{15, model.LabelLH, -50},
				{20, model.LabelLL, -150},
				{23, model.LabelLH, -120},
			},
			HighApproach: 5,
			LowApproach:  10,
			TailDrift:    -8,
		}, nil
	case model.DirectionSideways:
		return Profile{
			Trend:   TrendSideways,
			Start:   0,
			Floor:   -40,
			Ceiling: 40,
			Dojis:   []int{0, 9, 18},
			Hammers: []int{13},
		}, nil
	}
	return Profile{}, fmt.Errorf("cvd profile %q: %w", d, ErrUnknownTrend)
}

// swingTable indexes the usable swings of a profile by position. Swings
// outside [0, length), duplicates and unlabeled entries are dropped.
type swingTable struct {
	byAt  map[int]Swing
	order []Swing
}

func newSwingTable(swings []Swing, length int) swingTable {
	t := swingTable{byAt: make(map[int]Swing, len(swings))}
	for _, s := range swings {
		if s.At < 0 || s.At >= length || !(s.Label.IsHigh() || s.Label.IsLow()) {
			continue
		}
		if _, dup := t.byAt[s.At]; dup {
			continue
		}
		t.byAt[s.At] = s
		t.order = append(t.order, s)
	}
	slices.SortFunc(t.order, func(a, b Swing) int { return a.At - b.At })
	return t
}

func (t swingTable) at(i int) (Swing, bool) {
	s, ok := t.byAt[i]
	return s, ok
}

// after returns the first swing strictly after i.
func (t swingTable) after(i int) (Swing, bool) {
	for _, s := range t.order {
		if s.At > i {
			return s, true
		}
	}
	return Swing{}, false
}

// target returns the level a trend walk heads for at position i and the
// number of candles left to reach it.
func (t swingTable) target(p Profile, i int, running float64) (level float64, steps int) {
	next, ok := t.after(i)
	if !ok {
		return running + p.TailDrift, 1
	}
	if next.Label.IsHigh() {
		return next.Level - p.HighApproach, next.At - i
	}
	return next.Level + p.LowApproach, next.At - i
}

// indexSet turns a list of positions into a lookup.
func indexSet(idx []int) map[int]bool {
	set := make(map[int]bool, len(idx))
	for _, i := range idx {
		set[i] = true
	}
	return set
}
