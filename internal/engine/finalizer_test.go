package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func offer(carID string, term int, monthlyPayment, npv float64) Offer {
	return Offer{CarID: carID, Term: term, MonthlyPayment: monthlyPayment, NPV: npv}
}

func TestFinalize_DedupesByCarAndTermKeepingHighestNPV(t *testing.T) {
	offers := []Offer{
		offer("car-1", 48, 6100, 8000), // delta ~0.0167 -> refresh
		offer("car-1", 48, 6100, 12000),
	}
	result := finalize(offers, 6000, testTiers(), 0)

	var all []Offer
	for _, group := range result {
		all = append(all, group...)
	}
	if assert.Len(t, all, 1) {
		assert.Equal(t, 12000.0, all[0].NPV)
	}
}

func TestFinalize_PartitionsByTier(t *testing.T) {
	offers := []Offer{
		offer("car-1", 36, 6200, 1000), // delta ~0.0333 -> refresh
		offer("car-2", 48, 7200, 2000), // delta 0.20 -> upgrade
	}
	result := finalize(offers, 6000, testTiers(), 0)
	assert.Len(t, result[TierRefresh], 1)
	assert.Len(t, result[TierUpgrade], 1)
}

func TestFinalize_DropsOffersThatDontClassify(t *testing.T) {
	offers := []Offer{
		offer("car-1", 36, 60000, 1000), // far outside every tier
	}
	result := finalize(offers, 6000, testTiers(), 0)
	for _, group := range result {
		assert.Empty(t, group)
	}
}

func TestFinalize_RanksDescendingByNPVWithDenseTiesAndCapsPerTier(t *testing.T) {
	offers := []Offer{
		offer("car-1", 36, 6100, 5000),
		offer("car-2", 36, 6100, 9000),
		offer("car-3", 36, 6100, 9000),
		offer("car-4", 36, 6100, 1000),
	}
	result := finalize(offers, 6000, testTiers(), 2)
	group := result[TierRefresh]
	if assert.Len(t, group, 2) {
		assert.Equal(t, 9000.0, group[0].NPV)
		assert.Equal(t, 1, group[0].NPVRankWithinTier)
		assert.Equal(t, 9000.0, group[1].NPV)
		assert.Equal(t, 1, group[1].NPVRankWithinTier, "tied NPVs share the same dense rank")
	}
}

func TestOrderedTierNames_SortsRefreshBeforeUpgradeBeforeMaxUpgrade(t *testing.T) {
	byTier := map[string][]Offer{
		TierMaxUpgrade: {offer("car-1", 36, 1, 1)},
		TierRefresh:    {offer("car-2", 36, 1, 1)},
		TierUpgrade:    {offer("car-3", 36, 1, 1)},
	}
	assert.Equal(t, []string{TierRefresh, TierUpgrade, TierMaxUpgrade}, orderedTierNames(byTier))
}

func TestOrderedTierNames_HandlesPartialTierSets(t *testing.T) {
	byTier := map[string][]Offer{TierUpgrade: {offer("car-1", 36, 1, 1)}}
	assert.Equal(t, []string{TierUpgrade}, orderedTierNames(byTier))
}
