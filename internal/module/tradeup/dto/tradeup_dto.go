// Package dto carries the JSON request/response shapes for the trade-up
// HTTP host and converts them to/from internal/engine's domain types,
// keeping wire concerns out of the engine.
package dto

import (
	"time"

	"tradeupengine/internal/engine"
)

// CustomerInput is the wire shape of engine.Customer.
type CustomerInput struct {
	ID                    string  `json:"id" binding:"required"`
	CurrentMonthlyPayment float64 `json:"current_monthly_payment" binding:"required,gt=0"`
	VehicleEquity         float64 `json:"vehicle_equity"`
	OutstandingBalance    float64 `json:"outstanding_balance"`
	CurrentCarPrice       float64 `json:"current_car_price" binding:"required,gt=0"`
	RiskProfile           string  `json:"risk_profile" binding:"required"`
	RiskIndex             int     `json:"risk_index"`
}

func (c CustomerInput) ToEngine() engine.Customer {
	return engine.Customer{
		ID:                    c.ID,
		CurrentMonthlyPayment: c.CurrentMonthlyPayment,
		VehicleEquity:         c.VehicleEquity,
		OutstandingBalance:    c.OutstandingBalance,
		CurrentCarPrice:       c.CurrentCarPrice,
		RiskProfile:           c.RiskProfile,
		RiskIndex:             c.RiskIndex,
	}
}

// InventoryItemInput is the wire shape of engine.InventoryItem.
type InventoryItemInput struct {
	ID         string  `json:"id" binding:"required"`
	Model      string  `json:"model"`
	SalesPrice float64 `json:"sales_price" binding:"required,gt=0"`
	Region     string  `json:"region"`
	Kilometers int     `json:"kilometers"`
	Color      string  `json:"color"`
	Promotion  string  `json:"promotion"`
}

func (i InventoryItemInput) ToEngine() engine.InventoryItem {
	return engine.InventoryItem{
		ID:         i.ID,
		Model:      i.Model,
		SalesPrice: i.SalesPrice,
		Region:     i.Region,
		Kilometers: i.Kilometers,
		Color:      i.Color,
		Promotion:  i.Promotion,
	}
}

// FeeSetInput is the wire shape of engine.FeeSet.
type FeeSetInput struct {
	ServiceFeePct           float64  `json:"service_fee_pct"`
	CXAPct                  float64  `json:"cxa_pct"`
	CACBonus                float64  `json:"cac_bonus"`
	KavakTotalAmount        float64  `json:"kavak_total_amount"`
	InsuranceAmountOverride *float64 `json:"insurance_amount_override,omitempty"`
	GPSInstallationFee      float64  `json:"gps_installation_fee"`
	GPSMonthlyFee           float64  `json:"gps_monthly_fee"`
}

func (f FeeSetInput) ToEngine() engine.FeeSet {
	return engine.FeeSet{
		ServiceFeePct:           f.ServiceFeePct,
		CXAPct:                  f.CXAPct,
		CACBonus:                f.CACBonus,
		KavakTotalAmount:        f.KavakTotalAmount,
		InsuranceAmountOverride: f.InsuranceAmountOverride,
		GPSInstallationFee:      f.GPSInstallationFee,
		GPSMonthlyFee:           f.GPSMonthlyFee,
	}
}

// TierBoundariesInput is the wire shape of engine.TierBoundaries. A zero
// value (all fields omitted) falls back to engine.DefaultEngineConfig's
// boundaries during conversion.
type TierBoundariesInput struct {
	RefreshMin    float64 `json:"refresh_min"`
	RefreshMax    float64 `json:"refresh_max"`
	UpgradeMin    float64 `json:"upgrade_min"`
	UpgradeMax    float64 `json:"upgrade_max"`
	MaxUpgradeMin float64 `json:"max_upgrade_min"`
	MaxUpgradeMax float64 `json:"max_upgrade_max"`
}

func (t TierBoundariesInput) ToEngine() engine.TierBoundaries {
	return engine.TierBoundaries{
		RefreshMin:    t.RefreshMin,
		RefreshMax:    t.RefreshMax,
		UpgradeMin:    t.UpgradeMin,
		UpgradeMax:    t.UpgradeMax,
		MaxUpgradeMin: t.MaxUpgradeMin,
		MaxUpgradeMax: t.MaxUpgradeMax,
	}
}

func (t TierBoundariesInput) isZero() bool {
	return t == TierBoundariesInput{}
}

// RangeParamInput is the wire shape of engine.RangeParam.
type RangeParamInput struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

func (r RangeParamInput) ToEngine() engine.RangeParam {
	return engine.RangeParam{Min: r.Min, Max: r.Max, Step: r.Step}
}

// RangeParamsInput is the wire shape of engine.RangeParams.
type RangeParamsInput struct {
	ServiceFeePct         RangeParamInput `json:"service_fee_pct"`
	CXAPct                RangeParamInput `json:"cxa_pct"`
	CACBonus              RangeParamInput `json:"cac_bonus"`
	MaxOffersPerTier      int             `json:"max_offers_per_tier"`
	MaxCombinationsToTest int             `json:"max_combinations_to_test"`
	EarlyStopOnOffers     int             `json:"early_stop_on_offers"`
	Smart                 bool            `json:"smart"`
	SmartMaxIter          int             `json:"smart_max_iter"`
}

func (r RangeParamsInput) ToEngine() engine.RangeParams {
	return engine.RangeParams{
		ServiceFeePct:         r.ServiceFeePct.ToEngine(),
		CXAPct:                r.CXAPct.ToEngine(),
		CACBonus:              r.CACBonus.ToEngine(),
		MaxOffersPerTier:      r.MaxOffersPerTier,
		MaxCombinationsToTest: r.MaxCombinationsToTest,
		EarlyStopOnOffers:     r.EarlyStopOnOffers,
		Smart:                 r.Smart,
		SmartMaxIter:          r.SmartMaxIter,
	}
}

// EngineConfigInput is the wire shape of engine.EngineConfig. Any field
// left at its zero value falls back to the matching field in
// engine.DefaultEngineConfig, so a caller may submit a partial config
// ("just strategy") or omit it entirely.
type EngineConfigInput struct {
	Strategy          string              `json:"strategy"`
	IncludeKavakTotal *bool               `json:"include_kavak_total,omitempty"`
	MinNPVThreshold   float64             `json:"min_npv_threshold"`
	TermPriority      string              `json:"term_priority"`
	TierBoundaries    TierBoundariesInput `json:"tier_boundaries"`
	DefaultFeeSet     *FeeSetInput        `json:"default_fee_set,omitempty"`
	MaxCACBonus       float64             `json:"max_cac_bonus"`
	CustomFeeSet      *FeeSetInput        `json:"custom_fee_set,omitempty"`
	Range             *RangeParamsInput   `json:"range,omitempty"`
	CacheTTLSeconds   int                 `json:"cache_ttl_seconds"`
}

// ToEngine overlays the submitted fields onto engine.DefaultEngineConfig()
// so a partial request only overrides what it names.
func (e EngineConfigInput) ToEngine() engine.EngineConfig {
	cfg := engine.DefaultEngineConfig()

	if e.Strategy != "" {
		cfg.Strategy = e.Strategy
	}
	if e.IncludeKavakTotal != nil {
		cfg.IncludeKavakTotal = *e.IncludeKavakTotal
	}
	if e.MinNPVThreshold != 0 {
		cfg.MinNPVThreshold = e.MinNPVThreshold
	}
	if e.TermPriority != "" {
		cfg.TermPriority = e.TermPriority
	}
	if !e.TierBoundaries.isZero() {
		cfg.TierBoundaries = e.TierBoundaries.ToEngine()
	}
	if e.DefaultFeeSet != nil {
		cfg.DefaultFeeSet = e.DefaultFeeSet.ToEngine()
	}
	if e.MaxCACBonus != 0 {
		cfg.MaxCACBonus = e.MaxCACBonus
	}
	if e.CustomFeeSet != nil {
		cfg.CustomFeeSet = e.CustomFeeSet.ToEngine()
	}
	if e.Range != nil {
		cfg.Range = e.Range.ToEngine()
	}
	if e.CacheTTLSeconds > 0 {
		cfg.CacheTTL = time.Duration(e.CacheTTLSeconds) * time.Second
	}
	return cfg
}

// GenerateInput is the request body for POST /generate.
type GenerateInput struct {
	Customer  CustomerInput        `json:"customer" binding:"required"`
	Inventory []InventoryItemInput `json:"inventory" binding:"required,min=1"`
	Config    EngineConfigInput    `json:"config"`
}

// OfferOutput is the wire shape of engine.Offer.
type OfferOutput struct {
	ID                   string                `json:"id"`
	CarID                string                `json:"car_id"`
	Model                string                `json:"model"`
	Term                 int                   `json:"term"`
	MonthlyPayment       float64               `json:"monthly_payment"`
	PaymentDelta         float64               `json:"payment_delta"`
	EffectiveEquity      float64               `json:"effective_equity"`
	TotalFinanced        float64               `json:"total_financed"`
	CXAAmount            float64               `json:"cxa_amount"`
	ServiceFeeAmount     float64               `json:"service_fee_amount"`
	KavakTotalAmount     float64               `json:"kavak_total_amount"`
	InsuranceAmount      float64               `json:"insurance_amount"`
	GPSInstallFee        float64               `json:"gps_install_fee"`
	GPSMonthlyFee        float64               `json:"gps_monthly_fee"`
	InterestRate         float64               `json:"interest_rate"`
	NPV                  float64               `json:"npv"`
	ParameterCombination *RangeCombinationView `json:"parameter_combination,omitempty"`
	Tier                 string                `json:"tier"`
	NPVRankWithinTier    int                   `json:"npv_rank_within_tier"`
}

// RangeCombinationView is the wire shape of engine.RangeCombination.
type RangeCombinationView struct {
	ServiceFeePct float64 `json:"service_fee_pct"`
	CXAPct        float64 `json:"cxa_pct"`
	CACBonus      float64 `json:"cac_bonus"`
}

func FromOffer(o engine.Offer) OfferOutput {
	out := OfferOutput{
		ID:                o.ID,
		CarID:             o.CarID,
		Model:             o.Model,
		Term:              o.Term,
		MonthlyPayment:    o.MonthlyPayment,
		PaymentDelta:      o.PaymentDelta,
		EffectiveEquity:   o.EffectiveEquity,
		TotalFinanced:     o.TotalFinanced,
		CXAAmount:         o.CXAAmount,
		ServiceFeeAmount:  o.ServiceFeeAmount,
		KavakTotalAmount:  o.KavakTotalAmount,
		InsuranceAmount:   o.InsuranceAmount,
		GPSInstallFee:     o.GPSInstallFee,
		GPSMonthlyFee:     o.GPSMonthlyFee,
		InterestRate:      o.InterestRate,
		NPV:               o.NPV,
		Tier:              o.Tier,
		NPVRankWithinTier: o.NPVRankWithinTier,
	}
	if o.ParameterCombination != nil {
		out.ParameterCombination = &RangeCombinationView{
			ServiceFeePct: o.ParameterCombination.ServiceFeePct,
			CXAPct:        o.ParameterCombination.CXAPct,
			CACBonus:      o.ParameterCombination.CACBonus,
		}
	}
	return out
}

// SummaryOutput is the wire shape of engine.Summary.
type SummaryOutput struct {
	StrategyUsed       string         `json:"strategy_used"`
	TotalOffers        int            `json:"total_offers"`
	OffersByTier       map[string]int `json:"offers_by_tier"`
	CombinationsTested int            `json:"combinations_tested"`
	Cancelled          bool           `json:"cancelled"`
}

// GenerateOutput is the response body for POST /generate. TierOrder lists
// the tier names present in OffersByTier in priority order (refresh,
// upgrade, max_upgrade) since JSON object keys carry no order of their
// own.
type GenerateOutput struct {
	ExecutionID  string                   `json:"execution_id"`
	OffersByTier map[string][]OfferOutput `json:"offers_by_tier"`
	TierOrder    []string                 `json:"tier_order"`
	Summary      SummaryOutput            `json:"summary"`
}

func FromGenerateResult(r *engine.GenerateResult) GenerateOutput {
	byTier := make(map[string][]OfferOutput, len(r.OffersByTier))
	for tier, offers := range r.OffersByTier {
		views := make([]OfferOutput, len(offers))
		for i, o := range offers {
			views[i] = FromOffer(o)
		}
		byTier[tier] = views
	}
	return GenerateOutput{
		ExecutionID:  r.ExecutionID,
		OffersByTier: byTier,
		TierOrder:    r.TierOrder,
		Summary: SummaryOutput{
			StrategyUsed:       r.Summary.StrategyUsed,
			TotalOffers:        r.Summary.TotalOffers,
			OffersByTier:       r.Summary.OffersByTier,
			CombinationsTested: r.Summary.CombinationsTested,
			Cancelled:          r.Summary.Cancelled,
		},
	}
}

// AmortizationTableInput is the request body for POST /amortization-table.
type AmortizationTableInput struct {
	LoanAmount     float64 `json:"loan_amount" binding:"required,gt=0"`
	AnnualRate     float64 `json:"annual_rate" binding:"required,gt=0"`
	TermMonths     int     `json:"term_months" binding:"required,gt=0"`
	MonthlyPayment float64 `json:"monthly_payment" binding:"required,gt=0"`
}

func (a AmortizationTableInput) ToEngine() engine.OfferSummary {
	return engine.OfferSummary{
		LoanAmount:     a.LoanAmount,
		AnnualRate:     a.AnnualRate,
		TermMonths:     a.TermMonths,
		MonthlyPayment: a.MonthlyPayment,
	}
}

// ConfigHashInput is the request body for POST /config-hash. It is
// deliberately the full EngineConfigInput shape so a host can hash exactly
// what it is about to submit to /generate.
type ConfigHashInput struct {
	Config EngineConfigInput `json:"config"`
}

// ConfigHashOutput is the response body for POST /config-hash.
type ConfigHashOutput struct {
	Hash string `json:"hash"`
}
