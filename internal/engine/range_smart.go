package engine

import (
	"gonum.org/v1/gonum/optimize"
)

// smartRestartFractions are fixed, deterministic starting points sampled
// across the parameter box. gonum does not ship a literal
// differential-evolution method; running optimize.NelderMead (a
// derivative-free simplex method) from several fixed restarts across
// the box is the closest equivalent gonum offers, and keeps the
// result reproducible across runs (no PRNG dependency).
var smartRestartFractions = [][3]float64{
	{0.1, 0.1, 0.1},
	{0.5, 0.5, 0.5},
	{0.9, 0.9, 0.9},
	{0.1, 0.9, 0.5},
	{0.9, 0.1, 0.5},
}

// runRangeSmart optimizes -max(NPV among surviving offers) over the
// 3-d (service_fee_pct, cxa_pct, cac_bonus) box with a derivative-free
// method, bounded by smart_max_iter iterations per restart. The best
// point found is rounded to the configured step grid and re-evaluated
// once; those offers (or none) are returned.
func runRangeSmart(
	customer Customer,
	inventory []InventoryItem,
	baseRate float64,
	cfg EngineConfig,
	tables RiskProfileTables,
	cancel <-chan struct{},
) ([]Offer, error) {
	rp := cfg.Range
	if err := validateRangeParam("service_fee_pct", rp.ServiceFeePct); err != nil {
		return nil, err
	}
	if err := validateRangeParam("cxa_pct", rp.CXAPct); err != nil {
		return nil, err
	}
	if err := validateRangeParam("cac_bonus", rp.CACBonus); err != nil {
		return nil, err
	}

	terms := termOrder(cfg.TermPriority)

	box := [3]RangeParam{rp.ServiceFeePct, rp.CXAPct, rp.CACBonus}
	clamp := func(x []float64) []float64 {
		out := make([]float64, 3)
		for i, v := range x {
			if v < box[i].Min {
				v = box[i].Min
			}
			if v > box[i].Max {
				v = box[i].Max
			}
			out[i] = v
		}
		return out
	}

	objective := func(x []float64) float64 {
		if cancelled(cancel) {
			return 1e9
		}
		x = clamp(x)
		fees := feeSetForCombination(cfg.DefaultFeeSet, x[0], x[1], x[2], cfg.IncludeKavakTotal)
		offers := runPhase(customer, inventory, baseRate, fees, tables, cfg.TierBoundaries, cfg.MinNPVThreshold, terms, cancel)
		if len(offers) == 0 {
			return 1e9
		}
		bestNPV := offers[0].NPV
		for _, o := range offers[1:] {
			if o.NPV > bestNPV {
				bestNPV = o.NPV
			}
		}
		return -bestNPV
	}

	maxIter := rp.SmartMaxIter
	if maxIter <= 0 {
		maxIter = 30
	}

	var bestX []float64
	bestF := 1e9

	for _, frac := range smartRestartFractions {
		if cancelled(cancel) {
			return nil, nil
		}
		start := []float64{
			box[0].Min + frac[0]*(box[0].Max-box[0].Min),
			box[1].Min + frac[1]*(box[1].Max-box[1].Min),
			box[2].Min + frac[2]*(box[2].Max-box[2].Min),
		}

		problem := optimize.Problem{Func: objective}
		settings := &optimize.Settings{MajorIterations: maxIter}
		result, err := optimize.Minimize(problem, start, settings, &optimize.NelderMead{})
		if err != nil && result == nil {
			continue
		}
		if result != nil && result.F < bestF {
			bestF = result.F
			bestX = result.X
		}
	}

	if bestX == nil {
		return nil, nil
	}

	bestX = clamp(bestX)
	finalFees := feeSetForCombination(
		cfg.DefaultFeeSet,
		roundToStep(bestX[0], box[0].Step),
		roundToStep(bestX[1], box[1].Step),
		roundToStep(bestX[2], box[2].Step),
		cfg.IncludeKavakTotal,
	)

	offers := runPhase(customer, inventory, baseRate, finalFees, tables, cfg.TierBoundaries, cfg.MinNPVThreshold, terms, cancel)
	combo := RangeCombination{ServiceFeePct: finalFees.ServiceFeePct, CXAPct: finalFees.CXAPct, CACBonus: finalFees.CACBonus}
	for i := range offers {
		offers[i].ParameterCombination = &combo
	}
	return offers, nil
}

func roundToStep(v, step float64) float64 {
	if step <= 0 {
		return round4(v)
	}
	return round4(float64(int64(v/step+0.5)) * step)
}
