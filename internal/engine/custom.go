package engine

// runCustom implements the custom-parameter strategy: a single sweep
// over inventory x terms using the fee-set supplied directly in
// EngineConfig, with the same NPV filter as a hierarchical phase and
// no further stopping rule.
func runCustom(
	customer Customer,
	inventory []InventoryItem,
	baseRate float64,
	cfg EngineConfig,
	tables RiskProfileTables,
	cancel <-chan struct{},
) []Offer {
	terms := termOrder(cfg.TermPriority)
	fees := cfg.CustomFeeSet
	if !cfg.IncludeKavakTotal {
		fees.KavakTotalAmount = 0
	}
	return runPhase(customer, inventory, baseRate, fees, tables, cfg.TierBoundaries, cfg.MinNPVThreshold, terms, cancel)
}
