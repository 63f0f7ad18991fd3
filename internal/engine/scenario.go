package engine

// ScenarioResult aggregates a batch run of Generate across a sample of
// customers: tier distribution, offer counts, and NPV totals.
type ScenarioResult struct {
	StrategyUsed       string
	CustomersProcessed int
	CustomersErrored   int
	TotalOffers        int
	TotalNPV           float64
	OffersByTier       map[string]int
	AverageOffersPerCustomer float64
	AverageNPVPerOffer       float64
}

// RunScenario runs the engine once per customer in customers against
// the same inventory and config, and aggregates the resulting offer
// counts and NPV totals. A per-customer failure (an invalid customer
// record, most commonly) is counted and skipped rather than aborting
// the batch.
func RunScenario(e *Engine, customers []Customer, inventory []InventoryItem, cfg EngineConfig) ScenarioResult {
	result := ScenarioResult{
		StrategyUsed: cfg.Strategy,
		OffersByTier: map[string]int{TierRefresh: 0, TierUpgrade: 0, TierMaxUpgrade: 0},
	}

	for _, customer := range customers {
		genResult, err := e.Generate(customer, inventory, cfg, nil)
		if err != nil {
			result.CustomersErrored++
			continue
		}
		result.CustomersProcessed++

		for tier, offers := range genResult.OffersByTier {
			result.OffersByTier[tier] += len(offers)
			result.TotalOffers += len(offers)
			for _, o := range offers {
				result.TotalNPV += o.NPV
			}
		}
	}

	if result.CustomersProcessed > 0 {
		result.AverageOffersPerCustomer = float64(result.TotalOffers) / float64(result.CustomersProcessed)
	}
	if result.TotalOffers > 0 {
		result.AverageNPVPerOffer = result.TotalNPV / float64(result.TotalOffers)
	}
	return result
}
