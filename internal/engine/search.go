package engine

// termOrder returns the loan terms to try, in the order term_priority
// selects. Term 36/48/60/72 months cover the inventory's standard
// financing ladder; shorter-first and longer-first simply reverse the
// order relative to the other sweep direction.
func termOrder(priority string) []int {
	standard := []int{36, 48, 60, 72}
	switch priority {
	case TermPriorityShorterFirst:
		return []int{36, 48, 60, 72}
	case TermPriorityLongerFirst:
		return []int{72, 60, 48, 36}
	default:
		return standard
	}
}

// cancelled reports whether the cooperative cancellation signal has
// fired. A nil channel is never cancelled.
func cancelled(cancel <-chan struct{}) bool {
	if cancel == nil {
		return false
	}
	select {
	case <-cancel:
		return true
	default:
		return false
	}
}

// runPhase sweeps inventory x terms-in-priority-order for one fee-set,
// delegating per-candidate costing to the evaluator and keeping only
// offers whose NPV clears minNPVThreshold. Cancellation is checked at
// the top of each inventory-row iteration.
func runPhase(
	customer Customer,
	inventory []InventoryItem,
	baseRate float64,
	fees FeeSet,
	tables RiskProfileTables,
	tiers TierBoundaries,
	minNPVThreshold float64,
	terms []int,
	cancel <-chan struct{},
) []Offer {
	var found []Offer
	for _, car := range inventory {
		if cancelled(cancel) {
			return nil
		}
		for _, term := range terms {
			offer, ok := evaluateOffer(customer, car, term, baseRate, fees, tables, tiers)
			if !ok {
				continue
			}
			if offer.NPV < minNPVThreshold {
				continue
			}
			found = append(found, offer)
		}
	}
	return found
}
