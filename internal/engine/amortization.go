package engine

import "math"

// AmortizationTable returns up to summary.TermMonths rows describing
// the standard level-payment schedule for summary, rounded to cents
// at each row. Each row's principal is the difference of its rounded
// beginning and ending balances, so every row balances to the cent.
// It stops early once the ending balance reaches zero
// and truncates the final payment so principal never overshoots the
// remaining balance.
func AmortizationTable(summary OfferSummary) ([]AmortizationRow, error) {
	if summary.LoanAmount <= 0 {
		return nil, newValidationError(KindInvalidLoanParams, "loan_amount must be > 0")
	}
	if summary.MonthlyPayment <= 0 {
		return nil, newValidationError(KindInvalidLoanParams, "monthly_payment must be > 0")
	}
	if summary.TermMonths <= 0 {
		return nil, newValidationError(KindInvalidLoanParams, "term_months must be > 0")
	}

	monthlyRate := summary.AnnualRate / 12
	balance := summary.LoanAmount

	// The running balance stays unrounded so the schedule doesn't drift
	// over long terms; each emitted row is rounded to cents.
	rows := make([]AmortizationRow, 0, summary.TermMonths)
	for month := 1; month <= summary.TermMonths; month++ {
		if balance <= 0.005 {
			break
		}

		interest := balance * monthlyRate
		payment := summary.MonthlyPayment
		principal := payment - interest

		if principal > balance {
			principal = balance
			payment = principal + interest
		}

		ending := balance - principal
		if math.Abs(ending) < 0.005 {
			ending = 0
		}

		beginningRounded := roundToCent(balance)
		endingRounded := roundToCent(ending)
		rows = append(rows, AmortizationRow{
			Month:            month,
			BeginningBalance: beginningRounded,
			Payment:          roundToCent(payment),
			Principal:        roundToCent(beginningRounded - endingRounded),
			Interest:         roundToCent(interest),
			EndingBalance:    endingRounded,
		})

		balance = ending
	}

	return rows, nil
}
