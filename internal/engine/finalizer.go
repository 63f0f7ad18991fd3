package engine

import (
	"sort"
	"strconv"
)

// tierPriority orders tiers for the finalizer's output ordering:
// refresh, then upgrade, then max_upgrade.
var tierPriority = map[string]int{
	TierRefresh:    0,
	TierUpgrade:    1,
	TierMaxUpgrade: 2,
}

// finalize deduplicates offers by (car, term) keeping the highest-NPV
// survivor, ranks within tier by NPV descending, and caps per-tier
// count. The result is a map keyed by tier name, which carries no
// order; orderedTierNames gives the refresh < upgrade < max_upgrade
// order.
func finalize(offers []Offer, currentMonthlyPayment float64, tiers TierBoundaries, maxOffersPerTier int) map[string][]Offer {
	byKey := make(map[string]Offer, len(offers))
	order := make([]string, 0, len(offers))

	for _, o := range offers {
		// Recompute payment_delta defensively; the evaluator already
		// set it, but the finalizer is the source of truth.
		if currentMonthlyPayment != 0 {
			o.PaymentDelta = o.MonthlyPayment/currentMonthlyPayment - 1
		}
		tier, ok := classifyTier(o.PaymentDelta, tiers)
		if !ok {
			continue
		}
		o.Tier = tier

		key := o.CarID + "|" + strconv.Itoa(o.Term)
		if existing, seen := byKey[key]; !seen || o.NPV > existing.NPV {
			if !seen {
				order = append(order, key)
			}
			byKey[key] = o
		}
	}

	deduped := make([]Offer, 0, len(order))
	for _, key := range order {
		deduped = append(deduped, byKey[key])
	}

	byTier := make(map[string][]Offer)
	for _, o := range deduped {
		byTier[o.Tier] = append(byTier[o.Tier], o)
	}

	result := make(map[string][]Offer)
	for tier, group := range byTier {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].NPV > group[j].NPV
		})

		rank := 0
		var lastNPV float64
		for i := range group {
			if i == 0 || group[i].NPV != lastNPV {
				rank++
				lastNPV = group[i].NPV
			}
			group[i].NPVRankWithinTier = rank
		}

		if maxOffersPerTier > 0 && len(group) > maxOffersPerTier {
			group = group[:maxOffersPerTier]
		}
		result[tier] = group
	}
	return result
}

// orderedTierNames returns the tier names present in result, ordered
// refresh < upgrade < max_upgrade.
func orderedTierNames(byTier map[string][]Offer) []string {
	names := make([]string, 0, len(byTier))
	for name := range byTier {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return tierPriority[names[i]] < tierPriority[names[j]]
	})
	return names
}
