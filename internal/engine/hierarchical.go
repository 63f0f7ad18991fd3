package engine

// hierarchicalPhase builds the fee-set for one ladder rung from the
// config's default fee-set.
func hierarchicalPhase(base FeeSet, zeroServiceFee, zeroCXA bool, cacBonus float64, includeKavakTotal bool) FeeSet {
	fees := base
	if zeroServiceFee {
		fees.ServiceFeePct = 0
	}
	if zeroCXA {
		fees.CXAPct = 0
	}
	fees.CACBonus = cacBonus
	if !includeKavakTotal {
		fees.KavakTotalAmount = 0
	}
	return fees
}

// runHierarchical implements the two-phase concession ladder: phase 1
// (max-profit, the config's default fee-set with no CAC bonus), then
// phases 2-L1/2-L2/2-L3 progressively conceding service fee, CAC bonus
// and CXA. The ladder stops at the first phase that yields at least
// one surviving offer; later, more subsidized phases are never tried.
func runHierarchical(
	customer Customer,
	inventory []InventoryItem,
	baseRate float64,
	cfg EngineConfig,
	tables RiskProfileTables,
	cancel <-chan struct{},
) []Offer {
	terms := termOrder(cfg.TermPriority)

	phases := []FeeSet{
		hierarchicalPhase(cfg.DefaultFeeSet, false, false, 0, cfg.IncludeKavakTotal),
		hierarchicalPhase(cfg.DefaultFeeSet, true, false, 0, cfg.IncludeKavakTotal),
		hierarchicalPhase(cfg.DefaultFeeSet, true, false, cfg.MaxCACBonus, cfg.IncludeKavakTotal),
		hierarchicalPhase(cfg.DefaultFeeSet, true, true, cfg.MaxCACBonus, cfg.IncludeKavakTotal),
	}

	for _, fees := range phases {
		if cancelled(cancel) {
			return nil
		}
		offers := runPhase(customer, inventory, baseRate, fees, tables, cfg.TierBoundaries, cfg.MinNPVThreshold, terms, cancel)
		if len(offers) > 0 {
			return offers
		}
	}
	return nil
}
