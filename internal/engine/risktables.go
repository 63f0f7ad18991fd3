package engine

// riskGrades lists the risk-profile grades in ascending risk order.
// "Low"/"Medium"/"High" are coarse aliases for the first three indices.
var riskGrades = []string{
	"Low", "Medium", "High",
	"AAA", "AA", "A", "A1", "A2", "B",
	"C1", "C2", "C3", "D1", "D2", "D3",
	"E1", "E2", "E3", "E4", "E5",
	"F1", "F2", "F3", "F4",
	"B_SB", "C1_SB", "C2_SB", "E5_SB", "Z",
}

// riskIndexOf maps "Low"/"AAA" to index 0, "Medium"/"AA" to 1,
// "High"/"A" to 2; the remaining grades increase monotonically with
// credit risk.
var riskIndexOf = map[string]int{
	"Low": 0, "Medium": 1, "High": 2,
	"AAA": 0, "AA": 1, "A": 2, "A1": 3, "A2": 4, "B": 5,
	"C1": 6, "C2": 7, "C3": 8, "D1": 9, "D2": 10, "D3": 11,
	"E1": 12, "E2": 13, "E3": 14, "E4": 15, "E5": 16,
	"F1": 17, "F2": 18, "F3": 19, "F4": 20,
	"B_SB": 21, "C1_SB": 22, "C2_SB": 23, "E5_SB": 24, "Z": 25,
}

var amortizationTermsOffered = []int{36, 48, 60, 72}

// DefaultRiskProfileTables builds the process-wide risk tables a host
// loads once at startup. Rates climb with credit risk, 18% at the
// lowest-risk grades up to 34% at the riskiest; minimum down payment
// follows the same shape, slightly higher for terms of 60 months and
// up. A host with its own underwriting tables injects them through
// the Engine instead of using these.
func DefaultRiskProfileTables() RiskProfileTables {
	interestRate := make(map[string]float64, len(riskGrades))
	minDownPayment := make(map[int]map[int]float64, len(riskIndexOf))
	insurance := make(map[string]float64, len(riskGrades))

	maxIndex := 0
	for _, idx := range riskIndexOf {
		if idx > maxIndex {
			maxIndex = idx
		}
	}

	for name, idx := range riskIndexOf {
		// Linear ramp from 18% at index 0 to 34% at the riskiest index.
		rate := 0.18 + (0.34-0.18)*float64(idx)/float64(maxIndex)
		interestRate[name] = rate
		insurance[name] = 10999.0

		byTerm := minDownPayment[idx]
		if byTerm == nil {
			byTerm = make(map[int]float64, len(amortizationTermsOffered))
		}
		for _, term := range amortizationTermsOffered {
			base := 0.10 + 0.12*float64(idx)/float64(maxIndex)
			termAdj := 0.0
			if term >= 60 {
				termAdj = 0.02
			}
			frac := base + termAdj
			if frac > 1 {
				frac = 1
			}
			byTerm[term] = frac
		}
		minDownPayment[idx] = byTerm
	}

	return RiskProfileTables{
		InterestRate:   interestRate,
		MinDownPayment: minDownPayment,
		Insurance:      insurance,
	}
}
