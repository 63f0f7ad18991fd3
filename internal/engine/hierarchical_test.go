package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func inventoryOf(cars ...InventoryItem) []InventoryItem { return cars }

func TestTermOrder(t *testing.T) {
	assert.Equal(t, []int{36, 48, 60, 72}, termOrder(TermPriorityStandard))
	assert.Equal(t, []int{36, 48, 60, 72}, termOrder(TermPriorityShorterFirst))
	assert.Equal(t, []int{72, 60, 48, 36}, termOrder(TermPriorityLongerFirst))
	assert.Equal(t, []int{36, 48, 60, 72}, termOrder("unknown-priority"))
}

func TestCancelled_NilChannelNeverCancelled(t *testing.T) {
	assert.False(t, cancelled(nil))
}

func TestCancelled_ClosedChannelIsCancelled(t *testing.T) {
	ch := make(chan struct{})
	close(ch)
	assert.True(t, cancelled(ch))
}

// A customer whose equity can't clear any phase's down-payment
// requirement finds no offers at any rung of the ladder.
func tightCustomer() Customer {
	c := testCustomer()
	c.VehicleEquity = 1000
	c.CurrentMonthlyPayment = 3000
	return c
}

func TestRunHierarchical_StopsAtFirstSuccessfulPhase(t *testing.T) {
	customer := testCustomer()
	cfg := DefaultEngineConfig()
	cfg.DefaultFeeSet.ServiceFeePct = 0
	cfg.DefaultFeeSet.CXAPct = 0
	cfg.MinNPVThreshold = 0

	offers := runHierarchical(customer, inventoryOf(testCar()), 0.20, cfg, testTables(), nil)
	assert.NotEmpty(t, offers, "phase 1 (max profit) should already succeed for a well-qualified customer")
	for _, o := range offers {
		assert.Equal(t, 0.0, o.FeeSet.CACBonus, "no CAC-bonus phase should run once phase 1 succeeds")
	}
}

func TestRunHierarchical_ReturnsNilWhenNoPhaseQualifies(t *testing.T) {
	customer := tightCustomer()
	cfg := DefaultEngineConfig()
	offers := runHierarchical(customer, inventoryOf(testCar()), 0.20, cfg, testTables(), nil)
	assert.Nil(t, offers)
}

func TestRunHierarchical_CancellationShortCircuitsImmediately(t *testing.T) {
	customer := testCustomer()
	cfg := DefaultEngineConfig()
	ch := make(chan struct{})
	close(ch)
	offers := runHierarchical(customer, inventoryOf(testCar()), 0.20, cfg, testTables(), ch)
	assert.Nil(t, offers)
}

func TestHierarchicalPhase_ZeroesRequestedFields(t *testing.T) {
	base := FeeSet{ServiceFeePct: 0.05, CXAPct: 0.04, KavakTotalAmount: 15000}
	fees := hierarchicalPhase(base, true, true, 7500, false)
	assert.Equal(t, 0.0, fees.ServiceFeePct)
	assert.Equal(t, 0.0, fees.CXAPct)
	assert.Equal(t, 7500.0, fees.CACBonus)
	assert.Equal(t, 0.0, fees.KavakTotalAmount)
}

func TestRunPhase_FiltersByNPVThreshold(t *testing.T) {
	customer := testCustomer()
	fees := FeeSet{ServiceFeePct: 0.05, CXAPct: 0.04, CACBonus: 5000, KavakTotalAmount: 15000}
	terms := termOrder(TermPriorityStandard)

	all := runPhase(customer, inventoryOf(testCar()), 0.20, fees, testTables(), testTiers(), 0, terms, nil)
	assert.NotEmpty(t, all)

	unreachable := runPhase(customer, inventoryOf(testCar()), 0.20, fees, testTables(), testTiers(), 1e12, terms, nil)
	assert.Empty(t, unreachable)
}
