package engine

import "math"

// generateRangeValues enumerates the inclusive [min,max] sweep in
// increments of step, rounding each value to 4 decimals so the grid
// is stable against float accumulation.
func generateRangeValues(p RangeParam) []float64 {
	var values []float64
	for v := p.Min; v <= p.Max+1e-9; v += p.Step {
		values = append(values, round4(v))
	}
	return values
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// validateRangeParam pre-validates one swept parameter: step must be
// positive and the range must be ascending.
func validateRangeParam(name string, p RangeParam) error {
	if p.Step <= 0 {
		return newValidationError(KindInvalidRange, "%s: step must be positive, got %v", name, p.Step)
	}
	if p.Max < p.Min {
		return newValidationError(KindInvalidRange, "%s: range end %v is before start %v", name, p.Max, p.Min)
	}
	return nil
}

// feeSetForCombination builds the fee-set a range-optimization
// combination evaluates with: service-fee/CXA/CAC swept, everything
// else taken from the config's default fee-set.
func feeSetForCombination(base FeeSet, serviceFeePct, cxaPct, cacBonus float64, includeKavakTotal bool) FeeSet {
	fees := base
	fees.ServiceFeePct = serviceFeePct
	fees.CXAPct = cxaPct
	fees.CACBonus = cacBonus
	if !includeKavakTotal {
		fees.KavakTotalAmount = 0
	}
	return fees
}

// runRangeExhaustive enumerates the Cartesian product of
// (service_fee_pct, cxa_pct, cac_bonus) in the documented nested order
// (service-fee outermost, then CXA, then CAC), running one evaluator
// pass per combination and stopping at a combination boundary once
// either counter limit is reached.
func runRangeExhaustive(
	customer Customer,
	inventory []InventoryItem,
	baseRate float64,
	cfg EngineConfig,
	tables RiskProfileTables,
	cancel <-chan struct{},
) ([]Offer, int, error) {
	rp := cfg.Range
	if err := validateRangeParam("service_fee_pct", rp.ServiceFeePct); err != nil {
		return nil, 0, err
	}
	if err := validateRangeParam("cxa_pct", rp.CXAPct); err != nil {
		return nil, 0, err
	}
	if err := validateRangeParam("cac_bonus", rp.CACBonus); err != nil {
		return nil, 0, err
	}

	serviceFeeValues := generateRangeValues(rp.ServiceFeePct)
	cxaValues := generateRangeValues(rp.CXAPct)
	cacValues := generateRangeValues(rp.CACBonus)

	terms := termOrder(cfg.TermPriority)

	var allOffers []Offer
	combinationsTested := 0
	validOffersFound := 0

	maxCombinations := rp.MaxCombinationsToTest
	earlyStop := rp.EarlyStopOnOffers

outer:
	for _, serviceFeePct := range serviceFeeValues {
		for _, cxaPct := range cxaValues {
			for _, cacBonus := range cacValues {
				if cancelled(cancel) {
					return nil, combinationsTested, nil
				}

				combinationsTested++

				fees := feeSetForCombination(cfg.DefaultFeeSet, serviceFeePct, cxaPct, cacBonus, cfg.IncludeKavakTotal)
				offers := runPhase(customer, inventory, baseRate, fees, tables, cfg.TierBoundaries, cfg.MinNPVThreshold, terms, cancel)

				combo := RangeCombination{ServiceFeePct: serviceFeePct, CXAPct: cxaPct, CACBonus: cacBonus}
				for i := range offers {
					offers[i].ParameterCombination = &combo
				}
				allOffers = append(allOffers, offers...)
				validOffersFound += len(offers)

				if maxCombinations > 0 && combinationsTested >= maxCombinations {
					break outer
				}
				if earlyStop > 0 && validOffersFound >= earlyStop {
					break outer
				}
			}
		}
	}

	return allOffers, combinationsTested, nil
}
