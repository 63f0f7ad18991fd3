// Package engine implements the trade-up offer generation engine: the
// financial primitives, payment calculator, offer evaluator, tier
// classifier, search strategies, finalizer, and offer cache. It has no
// knowledge of HTTP, templating, or persistence; hosts drive it through
// Generate, AmortizationTable, and ConfigHash.
package engine

import "time"

// Strategy selector values for EngineConfig.Strategy.
const (
	StrategyHierarchical = "hierarchical"
	StrategyCustom       = "custom"
	StrategyRange        = "range"
)

// TermPriority values for EngineConfig.TermPriority.
const (
	TermPriorityStandard     = "standard"
	TermPriorityShorterFirst = "shorter-first"
	TermPriorityLongerFirst  = "longer-first"
)

// Tier names, in first-match iteration order.
const (
	TierRefresh    = "refresh"
	TierUpgrade    = "upgrade"
	TierMaxUpgrade = "max_upgrade"
)

// TaxRate is the process-wide value-added-tax rate applied to the
// interest component of every amortized bucket.
const TaxRate = 0.16

// Customer is immutable within a request.
type Customer struct {
	ID                    string
	CurrentMonthlyPayment float64
	VehicleEquity         float64
	OutstandingBalance    float64
	CurrentCarPrice       float64
	RiskProfile           string
	RiskIndex             int
}

// InventoryItem is immutable. Region/Kilometers/Color/Promotion are
// informational metadata only; the evaluator never reads them.
type InventoryItem struct {
	ID         string
	Model      string
	SalesPrice float64
	Region     string
	Kilometers int
	Color      string
	Promotion  string
}

// RiskProfileTables are process-wide read-only constants loaded once at
// startup and passed into the engine as a dependency, so tests can
// supply fixtures.
type RiskProfileTables struct {
	InterestRate   map[string]float64      // risk name -> annual rate
	MinDownPayment map[int]map[int]float64 // risk index -> term months -> fraction
	Insurance      map[string]float64      // risk name -> fixed amount
}

// InterestRateFor returns the base annual interest rate for a risk name.
func (t RiskProfileTables) InterestRateFor(riskName string) (float64, bool) {
	rate, ok := t.InterestRate[riskName]
	return rate, ok
}

// MinDownPaymentFor returns the minimum down-payment fraction for a
// (risk index, term) pair.
func (t RiskProfileTables) MinDownPaymentFor(riskIndex, term int) (float64, bool) {
	byTerm, ok := t.MinDownPayment[riskIndex]
	if !ok {
		return 0, false
	}
	frac, ok := byTerm[term]
	return frac, ok
}

// InsuranceFor returns the table fallback insurance amount for a risk name.
func (t RiskProfileTables) InsuranceFor(riskName string) (float64, bool) {
	amt, ok := t.Insurance[riskName]
	return amt, ok
}

// FeeSet parameterizes one evaluator pass.
type FeeSet struct {
	ServiceFeePct    float64
	CXAPct           float64
	CACBonus         float64
	KavakTotalAmount float64
	// InsuranceAmountOverride, when non-nil, takes precedence over the
	// risk-table fallback.
	InsuranceAmountOverride *float64
	GPSInstallationFee      float64
	GPSMonthlyFee           float64
}

// TierBoundaries holds the three named payment-delta intervals, each
// [min,max] on the signed payment-delta ratio. Checked in the fixed
// order refresh, upgrade, max_upgrade; the first match wins.
type TierBoundaries struct {
	RefreshMin    float64
	RefreshMax    float64
	UpgradeMin    float64
	UpgradeMax    float64
	MaxUpgradeMin float64
	MaxUpgradeMax float64
}

// RangeParam is an inclusive [min,max] swept in increments of Step.
type RangeParam struct {
	Min  float64
	Max  float64
	Step float64
}

// RangeParams configures the range-optimization strategy.
type RangeParams struct {
	ServiceFeePct RangeParam
	CXAPct        RangeParam
	CACBonus      RangeParam

	MaxOffersPerTier      int
	MaxCombinationsToTest int
	EarlyStopOnOffers     int

	Smart        bool
	SmartMaxIter int
}

// EngineConfig is the full, typed configuration for one Generate call.
type EngineConfig struct {
	Strategy          string
	IncludeKavakTotal bool
	MinNPVThreshold   float64
	TermPriority      string
	TierBoundaries    TierBoundaries

	// DefaultFeeSet is phase 1's fee-set in the hierarchical ladder and
	// the baseline the range strategies perturb.
	DefaultFeeSet FeeSet
	MaxCACBonus   float64

	// CustomFeeSet is used only by the custom-parameter strategy.
	CustomFeeSet FeeSet

	Range RangeParams

	// CacheTTL overrides the offer cache's default 24h TTL when > 0.
	CacheTTL time.Duration

	// LastUpdated is set by a host that persists configuration; it is
	// never part of the canonical hash (see ConfigHash).
	LastUpdated *time.Time
}

// cacheTTL returns the configured cache TTL, defaulting to 24h.
func (c EngineConfig) cacheTTL() time.Duration {
	if c.CacheTTL > 0 {
		return c.CacheTTL
	}
	return 24 * time.Hour
}

// RangeCombination is the (service_fee_pct, cxa_pct, cac_bonus) point
// attached to offers produced by the range-optimization strategy.
type RangeCombination struct {
	ServiceFeePct float64
	CXAPct        float64
	CACBonus      float64
}

// Offer is constructed by the evaluator and made immutable once the
// finalizer assigns Tier and NPVRankWithinTier.
type Offer struct {
	ID    string
	CarID string
	Model string
	Term  int

	MonthlyPayment float64
	PaymentDelta   float64

	EffectiveEquity  float64
	TotalFinanced    float64
	CXAAmount        float64
	ServiceFeeAmount float64
	KavakTotalAmount float64
	InsuranceAmount  float64
	GPSInstallFee    float64
	GPSMonthlyFee    float64

	InterestRate float64
	NPV          float64

	FeeSet               FeeSet
	ParameterCombination *RangeCombination

	Tier              string
	NPVRankWithinTier int
}

// Summary carries counts for a Generate call.
type Summary struct {
	StrategyUsed       string
	TotalOffers        int
	OffersByTier       map[string]int
	CombinationsTested int
	Cancelled          bool
}

// GenerateResult is the return value of Generate. ExecutionID identifies
// one Generate call for tracing/log correlation; it is assigned fresh
// whenever Generate computes a result (including cache misses that are
// about to be written back). A cache hit returns the stored result, so
// it keeps the ExecutionID of the call that produced it.
type GenerateResult struct {
	ExecutionID  string
	OffersByTier map[string][]Offer
	TierOrder    []string
	Summary      Summary
}

// AmortizationRow is one row of the amortization table operation.
type AmortizationRow struct {
	Month            int
	BeginningBalance float64
	Payment          float64
	Principal        float64
	Interest         float64
	EndingBalance    float64
}

// OfferSummary is the minimal input AmortizationTable needs: a loan
// amount, the rate actually applied, the term, and the monthly payment
// already computed by the payment calculator.
type OfferSummary struct {
	LoanAmount     float64
	AnnualRate     float64
	TermMonths     int
	MonthlyPayment float64
}
