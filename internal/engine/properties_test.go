package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_EmptyInventoryYieldsEmptyResultNotError(t *testing.T) {
	e := testEngine()
	result, err := e.Generate(testCustomer(), nil, DefaultEngineConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Summary.TotalOffers)
}

func TestGenerate_AllCarsCheaperThanCurrentYieldsEmptyResult(t *testing.T) {
	e := testEngine()
	customer := testCustomer()
	cheap := testCar()
	cheap.SalesPrice = customer.CurrentCarPrice - 1

	result, err := e.Generate(customer, inventoryOf(cheap), DefaultEngineConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Summary.TotalOffers)
}

func TestGenerate_UnreachableNPVThresholdYieldsEmptyResult(t *testing.T) {
	e := testEngine()
	cfg := DefaultEngineConfig()
	cfg.MinNPVThreshold = 1e12

	result, err := e.Generate(testCustomer(), inventoryOf(testCar()), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Summary.TotalOffers)
}

// Disabling Kavak-Total must strip it from every offer and strictly
// lower the monthly payment relative to the same candidate with it on.
func TestEvaluateOffer_ExcludingKavakTotalStrictlyLowersPayment(t *testing.T) {
	customer := testCustomer()
	withKavak := FeeSet{ServiceFeePct: 0.05, CXAPct: 0.04, KavakTotalAmount: 15000, GPSInstallationFee: 350, GPSMonthlyFee: 199}
	withoutKavak := withKavak
	withoutKavak.KavakTotalAmount = 0

	on, okOn := evaluateOffer(customer, testCar(), 48, 0.20, withKavak, testTables(), testTiers())
	off, okOff := evaluateOffer(customer, testCar(), 48, 0.20, withoutKavak, testTables(), testTiers())
	require.True(t, okOn)
	require.True(t, okOff)

	assert.Equal(t, 0.0, off.KavakTotalAmount)
	assert.Less(t, off.MonthlyPayment, on.MonthlyPayment)
}

// car_price - effective_equity is the loan principal, and the total
// financed amount layers the service fee, Kavak-Total, and insurance on
// top of it. GPS installation and GPS monthly never appear in either.
func TestEvaluateOffer_FinancingAccountingIdentity(t *testing.T) {
	customer := testCustomer()
	car := testCar()
	fees := FeeSet{ServiceFeePct: 0.05, CXAPct: 0.04, CACBonus: 5000, KavakTotalAmount: 15000, GPSInstallationFee: 350, GPSMonthlyFee: 199}

	offer, ok := evaluateOffer(customer, car, 48, 0.20, fees, testTables(), testTiers())
	require.True(t, ok)

	gpsInstallWithTax := fees.GPSInstallationFee * (1 + TaxRate)
	wantEquity := customer.VehicleEquity + fees.CACBonus - car.SalesPrice*fees.CXAPct - gpsInstallWithTax
	assert.InDelta(t, wantEquity, offer.EffectiveEquity, 0.01)

	loanPrincipal := car.SalesPrice - wantEquity
	wantFinanced := loanPrincipal + offer.ServiceFeeAmount + offer.KavakTotalAmount + offer.InsuranceAmount
	assert.InDelta(t, wantFinanced, offer.TotalFinanced, 0.01)
}

// With no financed fee buckets, the loan principal plus the effective
// equity reconstructs the car price exactly.
func TestEvaluateOffer_GPSNeverFinanced(t *testing.T) {
	customer := testCustomer()
	// Without financed fee buckets the candidate payment drops below
	// the fixture's usual 6000; keep the delta inside the refresh tier.
	customer.CurrentMonthlyPayment = 5500
	car := testCar()
	fees := FeeSet{GPSInstallationFee: 350, GPSMonthlyFee: 199}
	zeroInsurance := 0.0
	fees.InsuranceAmountOverride = &zeroInsurance

	offer, ok := evaluateOffer(customer, car, 36, 0.20, fees, testTables(), testTiers())
	require.True(t, ok)

	assert.InDelta(t, car.SalesPrice, offer.TotalFinanced+offer.EffectiveEquity, 0.01)
}

// Two exhaustive range runs over identical inputs walk the same
// combination grid and produce the same offers in the same order.
func TestRunRangeExhaustive_Deterministic(t *testing.T) {
	customer := testCustomer()
	cfg := DefaultEngineConfig()
	cfg.Strategy = StrategyRange
	cfg.MinNPVThreshold = 0
	cfg.Range.ServiceFeePct = RangeParam{Min: 0, Max: 0.02, Step: 0.01}
	cfg.Range.CXAPct = RangeParam{Min: 0, Max: 0.02, Step: 0.01}
	cfg.Range.CACBonus = RangeParam{Min: 0, Max: 0, Step: 100}
	cfg.Range.EarlyStopOnOffers = 0
	cfg.Range.MaxCombinationsToTest = 0

	first, testedFirst, err := runRangeExhaustive(customer, inventoryOf(testCar()), 0.20, cfg, testTables(), nil)
	require.NoError(t, err)
	second, testedSecond, err := runRangeExhaustive(customer, inventoryOf(testCar()), 0.20, cfg, testTables(), nil)
	require.NoError(t, err)

	assert.Equal(t, testedFirst, testedSecond)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].CarID, second[i].CarID)
		assert.Equal(t, first[i].Term, second[i].Term)
		assert.Equal(t, first[i].MonthlyPayment, second[i].MonthlyPayment)
		assert.Equal(t, first[i].NPV, second[i].NPV)
		assert.Equal(t, *first[i].ParameterCombination, *second[i].ParameterCombination)
	}
}
