package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Payment equivalence: with every fee bucket zero and gps_monthly=0,
// the bucket method collapses to a single-bucket PMT at the
// tax-grossed principal rate.
func TestCalculateMonthlyPayment_EquivalesSingleBucketPMT(t *testing.T) {
	const loan = 100000.0
	const annualRate = 0.20
	const term = 60

	got := CalculateMonthlyPayment(loan, annualRate, term, 0, 0, 0, 0)
	want := Payment(annualRate*(1+TaxRate)/12, term, loan)

	assert.InDelta(t, want, got, want*1e-4)
}

// Kavak payment parity: L=100000, rate=0.20, term=60.
func TestCalculateMonthlyPayment_KavakParityScenario(t *testing.T) {
	got := CalculateMonthlyPayment(100000, 0.20, 60, 0, 0, 0, 0)
	want := Payment(0.20*1.16/12, 60, 100000)
	assert.InDelta(t, want, got, 1e-6)
}

func TestCalculateMonthlyPayment_InsuranceAmortizesOver12MonthsRegardlessOfTerm(t *testing.T) {
	with72 := CalculateMonthlyPayment(0, 0.20, 72, 0, 0, 12000, 0)
	with36 := CalculateMonthlyPayment(0, 0.20, 36, 0, 0, 12000, 0)
	// Insurance always amortizes over 12 months, so changing the loan
	// term must not change the insurance bucket's contribution.
	assert.InDelta(t, with72, with36, 1e-9)
}

func TestCalculateMonthlyPayment_GPSMonthlyAddedFlat(t *testing.T) {
	base := CalculateMonthlyPayment(100000, 0.20, 60, 0, 0, 0, 0)
	withGPS := CalculateMonthlyPayment(100000, 0.20, 60, 0, 0, 0, 250)
	assert.InDelta(t, base+250, withGPS, 1e-9)
}

func TestCalculateMonthlyPayment_DegenerateBucketsContributeZero(t *testing.T) {
	got := CalculateMonthlyPayment(0, 0, 0, 0, 0, 0, 0)
	assert.Equal(t, 0.0, got)
}

func TestCalculateMonthlyPayment_IncludeKavakTotalIncreasesPayment(t *testing.T) {
	without := CalculateMonthlyPayment(100000, 0.20, 60, 5000, 0, 10999, 199)
	with := CalculateMonthlyPayment(100000, 0.20, 60, 5000, 15000, 10999, 199)
	assert.Greater(t, with, without)
}
