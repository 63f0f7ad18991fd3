package engine

import (
	"math"

	"github.com/google/uuid"
)

// evaluateOffer applies the ordered checks from the offer evaluator
// against one (customer, car, term, feeSet) candidate. It returns the
// constructed Offer and true on success, or a zero Offer and false if
// any hard filter rejects the candidate. NaN/Inf appearing in any
// intermediate silently drops the candidate rather than propagating a
// poisoned offer.
func evaluateOffer(
	customer Customer,
	car InventoryItem,
	term int,
	baseRate float64,
	fees FeeSet,
	tables RiskProfileTables,
	tiers TierBoundaries,
) (Offer, bool) {
	// 1. Price filter.
	if car.SalesPrice <= customer.CurrentCarPrice {
		return Offer{}, false
	}

	// 2. CXA, GPS installation (with tax), effective equity.
	cxaAmount := car.SalesPrice * fees.CXAPct
	gpsInstallWithTax := fees.GPSInstallationFee * (1 + TaxRate)
	gpsMonthlyWithTax := fees.GPSMonthlyFee * (1 + TaxRate)

	effectiveEquity := customer.VehicleEquity + fees.CACBonus - cxaAmount - gpsInstallWithTax

	// 3. Loan principal needed.
	loanPrincipalNeeded := car.SalesPrice - effectiveEquity
	if loanPrincipalNeeded <= 0 {
		return Offer{}, false
	}

	// 4. Service fee, Kavak-Total, insurance amounts.
	serviceFeeAmount := car.SalesPrice * fees.ServiceFeePct
	kavakTotalAmount := fees.KavakTotalAmount

	var insuranceAmount float64
	if fees.InsuranceAmountOverride != nil {
		insuranceAmount = *fees.InsuranceAmountOverride
	} else if amt, ok := tables.InsuranceFor(customer.RiskProfile); ok {
		insuranceAmount = amt
	}

	// 5. Total financed (GPS installation/monthly are never financed).
	totalFinanced := loanPrincipalNeeded + serviceFeeAmount + kavakTotalAmount + insuranceAmount

	// 6. Down-payment check.
	minDownPaymentFrac, ok := tables.MinDownPaymentFor(customer.RiskIndex, term)
	if !ok {
		return Offer{}, false
	}
	if effectiveEquity < car.SalesPrice*minDownPaymentFrac {
		return Offer{}, false
	}

	// 7. Term-dependent rate.
	finalRate := baseRate + termPremium(term)

	// 8. Monthly payment via the bucket method.
	monthlyPayment := CalculateMonthlyPayment(
		loanPrincipalNeeded,
		finalRate,
		term,
		serviceFeeAmount,
		kavakTotalAmount,
		insuranceAmount,
		gpsMonthlyWithTax,
	)
	if !isFinite(monthlyPayment) {
		return Offer{}, false
	}

	// 9. Payment delta, must land in a tier.
	if customer.CurrentMonthlyPayment == 0 {
		return Offer{}, false
	}
	paymentDelta := monthlyPayment/customer.CurrentMonthlyPayment - 1
	if !isFinite(paymentDelta) {
		return Offer{}, false
	}
	tier, ok := classifyTier(paymentDelta, tiers)
	if !ok {
		return Offer{}, false
	}

	// 10. NPV of the interest cash-flow stream, discounted at the base
	// monthly rate (without tax), net-present-valued to period 0.
	npv := npvOfTotalFinanced(loanPrincipalNeeded, serviceFeeAmount, kavakTotalAmount, insuranceAmount, finalRate, term)
	if !isFinite(npv) {
		return Offer{}, false
	}

	offer := Offer{
		ID:               uuid.NewString(),
		CarID:            car.ID,
		Model:            car.Model,
		Term:             term,
		MonthlyPayment:   roundToCent(monthlyPayment),
		PaymentDelta:     paymentDelta,
		EffectiveEquity:  roundToCent(effectiveEquity),
		TotalFinanced:    roundToCent(totalFinanced),
		CXAAmount:        roundToCent(cxaAmount),
		ServiceFeeAmount: roundToCent(serviceFeeAmount),
		KavakTotalAmount: roundToCent(kavakTotalAmount),
		InsuranceAmount:  roundToCent(insuranceAmount),
		GPSInstallFee:    roundToCent(gpsInstallWithTax),
		GPSMonthlyFee:    roundToCent(gpsMonthlyWithTax),
		InterestRate:     finalRate,
		NPV:              roundToCent(npv),
		FeeSet:           fees,
		Tier:             tier,
	}
	return offer, true
}

// termPremium is the rate add-on for longer terms: 60 -> +1pp, 72 -> +1.5pp.
func termPremium(term int) float64 {
	switch term {
	case 60:
		return 0.01
	case 72:
		return 0.015
	default:
		return 0
	}
}

// classifyTier maps a payment-delta ratio onto a named tier, checking
// boundaries in the fixed order refresh, upgrade, max_upgrade. The
// first matching interval wins, which matters only when boundaries
// are misconfigured to overlap.
func classifyTier(paymentDelta float64, tiers TierBoundaries) (string, bool) {
	switch {
	case paymentDelta >= tiers.RefreshMin && paymentDelta <= tiers.RefreshMax:
		return TierRefresh, true
	case paymentDelta >= tiers.UpgradeMin && paymentDelta <= tiers.UpgradeMax:
		return TierUpgrade, true
	case paymentDelta >= tiers.MaxUpgradeMin && paymentDelta <= tiers.MaxUpgradeMax:
		return TierMaxUpgrade, true
	default:
		return "", false
	}
}

// npvOfTotalFinanced pools every financed amount (main loan, service
// fee, Kavak-Total, insurance) into one balance amortized over the
// loan term, and discounts its interest cash-flow stream at the base
// monthly rate, without the tax gross-up the principal split uses.
// The insurance bucket's 12-month payment horizon applies only to the
// monthly payment, never here.
func npvOfTotalFinanced(loanPrincipal, serviceFee, kavakTotal, insurance, annualRate float64, term int) float64 {
	total := loanPrincipal + serviceFee + kavakTotal + insurance
	if total == 0 || term <= 0 {
		return 0
	}
	discountRate := annualRate / 12

	cashflows := make([]float64, term+1)
	for period := 1; period <= term; period++ {
		cashflows[period] = InterestForPeriod(discountRate, period, term, total)
	}

	return NPV(discountRate, cashflows)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// roundToCent applies monetary rounding at a reporting boundary; it is
// never used mid-calculation.
func roundToCent(v float64) float64 {
	return math.Round(v*100) / 100
}
