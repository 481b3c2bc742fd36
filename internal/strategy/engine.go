package strategy

import (
	"errors"
	"fmt"
	"slices"

	"CVDScenarios/internal/generator"
	"CVDScenarios/internal/model"
)

// ErrInvalidCatalog is returned when the definitions do not describe the
// nine distinct direction pairs.
var ErrInvalidCatalog = errors.New("invalid scenario catalog")

// ValidateCatalog checks ids, direction pairs and seed spacing.
func ValidateCatalog(defs []Definition) error {
	want := len(model.Directions) * len(model.Directions)
	if len(defs) != want {
		return fmt.Errorf("%d definitions, want %d: %w", len(defs), want, ErrInvalidCatalog)
	}

	ids := make(map[int]bool, len(defs))
	pairs := make(map[[2]model.Direction]int, len(defs))
	type seedUse struct {
		seed, length, id int
	}
	var seeds []seedUse
	for _, d := range defs {
		if ids[d.ID] {
			return fmt.Errorf("duplicate id %d: %w", d.ID, ErrInvalidCatalog)
		}
		ids[d.ID] = true

		if d.Price.Rank() >= len(model.Directions) || d.CVD.Rank() >= len(model.Directions) {
			return fmt.Errorf("scenario %d: directions %q/%q: %w", d.ID, d.Price, d.CVD, ErrInvalidCatalog)
		}
		pair := [2]model.Direction{d.Price, d.CVD}
		if other, dup := pairs[pair]; dup {
			return fmt.Errorf("scenario %d repeats %s/%s of scenario %d: %w", d.ID, d.Price, d.CVD, other, ErrInvalidCatalog)
		}
		pairs[pair] = d.ID

		if d.Length < 0 {
			return fmt.Errorf("scenario %d: negative length %d: %w", d.ID, d.Length, ErrInvalidCatalog)
		}
		seeds = append(seeds, seedUse{d.PriceSeed, d.Length, d.ID}, seedUse{d.CVDSeed, d.Length, d.ID})
	}

	// Every sequence owns [seed, seed+length*SeedStride) of the seed space.
	slices.SortFunc(seeds, func(a, b seedUse) int { return a.seed - b.seed })
	for i := 1; i < len(seeds); i++ {
		prev, cur := seeds[i-1], seeds[i]
		if cur.seed-prev.seed < prev.length*generator.SeedStride || cur.seed == prev.seed {
			return fmt.Errorf("seed %d of scenario %d overlaps seed %d of scenario %d: %w",
				cur.seed, cur.id, prev.seed, prev.id, ErrInvalidCatalog)
		}
	}
	return nil
}

// Build generates the charts of one definition and derives its trade setup.
func Build(d Definition) (model.Scenario, error) {
	trend, err := generator.TrendOf(d.Price)
	if err != nil {
		return model.Scenario{}, fmt.Errorf("scenario %d: %w", d.ID, err)
	}
	pp, err := generator.PriceProfile(trend)
	if err != nil {
		return model.Scenario{}, fmt.Errorf("scenario %d: %w", d.ID, err)
	}
	cp, err := generator.CVDProfile(d.CVD)
	if err != nil {
		return model.Scenario{}, fmt.Errorf("scenario %d: %w", d.ID, err)
	}

	price := generator.Price(pp, d.Length, d.PriceSeed)
	cvd := generator.CVD(cp, d.Length, d.CVDSeed)

	setup, err := deriveSetup(d.Setup, d.Action, price)
	if err != nil {
		return model.Scenario{}, fmt.Errorf("scenario %d: %w", d.ID, err)
	}
	if err := checkSetup(d, setup); err != nil {
		return model.Scenario{}, err
	}

	return model.Scenario{
		ID:             d.ID,
		Title:          d.Title,
		PriceDirection: d.Price,
		CVDDirection:   d.CVD,
		Action:         d.Action,
		Sentiment:      d.Sentiment,
		Color:          d.Color,
		Description:    d.Description,
		Rule:           d.Rule,
		PriceData:      price,
		CVDData:        cvd,
		TradeSetup:     setup,
	}, nil
}

// Assemble validates the catalog, builds every scenario and returns them in
// display order.
func Assemble(defs []Definition) ([]model.Scenario, error) {
	if err := ValidateCatalog(defs); err != nil {
		return nil, err
	}
	scenarios := make([]model.Scenario, 0, len(defs))
	for _, d := range defs {
		s, err := Build(d)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	SortForDisplay(scenarios)
	return scenarios, nil
}

// SortForDisplay orders scenarios by CVD direction, then price direction.
func SortForDisplay(scenarios []model.Scenario) {
	slices.SortStableFunc(scenarios, func(a, b model.Scenario) int {
		if a.CVDDirection != b.CVDDirection {
			return a.CVDDirection.Rank() - b.CVDDirection.Rank()
		}
		return a.PriceDirection.Rank() - b.PriceDirection.Rank()
	})
}

// GroupByCVD splits ordered scenarios into one row per CVD direction.
func GroupByCVD(scenarios []model.Scenario) map[model.Direction][]model.Scenario {
	rows := make(map[model.Direction][]model.Scenario, len(model.Directions))
	for _, s := range scenarios {
		rows[s.CVDDirection] = append(rows[s.CVDDirection], s)
	}
	return rows
}
