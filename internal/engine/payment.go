package engine

// bucket is one financed component of the monthly payment: an amount
// amortized over its own horizon, independent of the other buckets.
type bucket struct {
	amount  float64
	horizon int
}

// CalculateMonthlyPayment implements the "bucket method": each financed
// component is amortized independently and the results are summed. The
// principal split for every bucket uses monthly rate
// annualRate*(1+TaxRate)/12 while the interest split uses annualRate/12
// and is then grossed up by (1+TaxRate), the business convention that
// VAT applies explicitly to the interest component while the scheduled
// principal already reflects a tax-grossed cash flow. Insurance always
// amortizes over a fixed 12 months regardless of termMonths. GPS monthly
// (already tax-inclusive) is added flat, never amortized.
func CalculateMonthlyPayment(
	loanPrincipal float64,
	annualRate float64,
	termMonths int,
	serviceFeeAmount float64,
	kavakTotalAmount float64,
	insuranceAmount float64,
	gpsMonthlyWithTax float64,
) float64 {
	principalRate := annualRate * (1 + TaxRate) / 12
	interestRate := annualRate / 12

	buckets := []bucket{
		{amount: loanPrincipal, horizon: termMonths},
		{amount: serviceFeeAmount, horizon: termMonths},
		{amount: kavakTotalAmount, horizon: termMonths},
		{amount: insuranceAmount, horizon: 12},
	}

	total := 0.0
	for _, b := range buckets {
		if b.amount == 0 || b.horizon <= 0 {
			continue
		}
		principal := PrincipalForPeriod(principalRate, 1, b.horizon, b.amount)
		interest := InterestForPeriod(interestRate, 1, b.horizon, b.amount) * (1 + TaxRate)
		total += principal + interest
	}

	return total + gpsMonthlyWithTax
}
