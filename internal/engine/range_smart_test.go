package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundToStep(t *testing.T) {
	assert.Equal(t, 0.05, roundToStep(0.0498, 0.01))
	assert.Equal(t, 100.0, roundToStep(149.0, 100))
}

func TestRoundToStep_NonPositiveStepFallsBackToRound4(t *testing.T) {
	assert.Equal(t, round4(0.12345), roundToStep(0.12345, 0))
}

func TestRunRangeSmart_ReturnsErrorOnInvalidRangeParam(t *testing.T) {
	customer := testCustomer()
	cfg := DefaultEngineConfig()
	cfg.Strategy = StrategyRange
	cfg.Range.Smart = true
	cfg.Range.CXAPct.Step = -1

	offers, err := runRangeSmart(customer, inventoryOf(testCar()), 0.20, cfg, testTables(), nil)
	assert.Error(t, err)
	assert.Nil(t, offers)
}

// A smoke test only: gonum's NelderMead is not guaranteed to land on
// any particular point, but for a well-qualified customer and a
// generous NPV threshold it should find a feasible combination.
func TestRunRangeSmart_FindsAFeasibleCombinationForQualifiedCustomer(t *testing.T) {
	customer := testCustomer()
	cfg := DefaultEngineConfig()
	cfg.Strategy = StrategyRange
	cfg.Range.Smart = true
	cfg.MinNPVThreshold = 0
	cfg.Range.SmartMaxIter = 20

	offers, err := runRangeSmart(customer, inventoryOf(testCar()), 0.20, cfg, testTables(), nil)
	assert.NoError(t, err)
	for _, o := range offers {
		assert.NotNil(t, o.ParameterCombination)
	}
}

func TestRunRangeSmart_CancellationReturnsNoError(t *testing.T) {
	customer := testCustomer()
	cfg := DefaultEngineConfig()
	cfg.Strategy = StrategyRange
	cfg.Range.Smart = true
	ch := make(chan struct{})
	close(ch)

	offers, err := runRangeSmart(customer, inventoryOf(testCar()), 0.20, cfg, testTables(), ch)
	assert.NoError(t, err)
	assert.Nil(t, offers)
}
