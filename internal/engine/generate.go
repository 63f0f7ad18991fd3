package engine

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine ties together the risk-profile tables (injected rather than
// read from a package global, so tests can supply fixtures), an
// offer cache, and structured logging around the three search
// strategies.
type Engine struct {
	Tables RiskProfileTables
	Cache  Cache
	Logger *zap.Logger
}

// NewEngine constructs an Engine. A nil logger falls back to a no-op
// logger so the engine is usable without DI wiring in tests.
func NewEngine(tables RiskProfileTables, cache Cache, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Engine{Tables: tables, Cache: cache, Logger: logger}
}

// Generate selects a strategy from cfg.Strategy, runs it, finalizes
// the survivors, and stores the result in the cache keyed by
// (customer.ID, ConfigHash(cfg)). Validation errors are returned as
// *ValidationError; infeasibility, cancellation, and cache failures
// are represented in the result, never as an error.
func (e *Engine) Generate(customer Customer, inventory []InventoryItem, cfg EngineConfig, cancel <-chan struct{}) (*GenerateResult, error) {
	if err := validateCustomer(customer, e.Tables); err != nil {
		return nil, err
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	hash, err := ConfigHash(cfg)
	if err != nil {
		return nil, newValidationError(KindInvalidConfig, "failed to hash config: %v", err)
	}
	cacheKey := customer.ID + ":" + hash

	if cached, ok := e.Cache.Get(cacheKey); ok {
		e.Logger.Debug("offer cache hit", zap.String("customer_id", customer.ID), zap.String("config_hash", hash))
		return cached, nil
	}

	if cancelled(cancel) {
		return &GenerateResult{
			ExecutionID:  uuid.NewString(),
			OffersByTier: map[string][]Offer{},
			Summary:      Summary{StrategyUsed: cfg.Strategy, OffersByTier: map[string]int{}, Cancelled: true},
		}, nil
	}

	baseRate, ok := e.Tables.InterestRateFor(customer.RiskProfile)
	if !ok {
		return nil, newValidationError(KindInvalidCustomer, "unknown risk profile %q", customer.RiskProfile)
	}

	var rawOffers []Offer
	combinationsTested := 0

	switch cfg.Strategy {
	case StrategyCustom:
		rawOffers = runCustom(customer, inventory, baseRate, cfg, e.Tables, cancel)
	case StrategyRange:
		if cfg.Range.Smart {
			offers, serr := runRangeSmart(customer, inventory, baseRate, cfg, e.Tables, cancel)
			if serr != nil {
				return nil, serr
			}
			rawOffers = offers
		} else {
			offers, tested, rerr := runRangeExhaustive(customer, inventory, baseRate, cfg, e.Tables, cancel)
			if rerr != nil {
				return nil, rerr
			}
			rawOffers = offers
			combinationsTested = tested
		}
	case StrategyHierarchical, "":
		rawOffers = runHierarchical(customer, inventory, baseRate, cfg, e.Tables, cancel)
	default:
		return nil, newValidationError(KindInvalidConfig, "unknown strategy %q", cfg.Strategy)
	}

	if cancelled(cancel) {
		return &GenerateResult{
			ExecutionID:  uuid.NewString(),
			OffersByTier: map[string][]Offer{},
			Summary:      Summary{StrategyUsed: cfg.Strategy, OffersByTier: map[string]int{}, Cancelled: true, CombinationsTested: combinationsTested},
		}, nil
	}

	maxPerTier := 0
	if cfg.Strategy == StrategyRange {
		maxPerTier = cfg.Range.MaxOffersPerTier
	}
	byTier := finalize(rawOffers, customer.CurrentMonthlyPayment, cfg.TierBoundaries, maxPerTier)

	total := 0
	counts := make(map[string]int, len(byTier))
	for tier, group := range byTier {
		counts[tier] = len(group)
		total += len(group)
	}

	result := &GenerateResult{
		ExecutionID:  uuid.NewString(),
		OffersByTier: byTier,
		TierOrder:    orderedTierNames(byTier),
		Summary: Summary{
			StrategyUsed:       cfg.Strategy,
			TotalOffers:        total,
			OffersByTier:       counts,
			CombinationsTested: combinationsTested,
		},
	}

	e.Cache.Put(cacheKey, result, cfg.cacheTTL())
	return result, nil
}

func validateCustomer(c Customer, tables RiskProfileTables) error {
	if c.ID == "" {
		return newValidationError(KindInvalidCustomer, "customer id is required")
	}
	if c.CurrentMonthlyPayment <= 0 {
		return newValidationError(KindInvalidCustomer, "current_monthly_payment must be > 0")
	}
	if c.CurrentCarPrice <= 0 {
		return newValidationError(KindInvalidCustomer, "current_car_price must be > 0")
	}
	if _, ok := tables.InterestRateFor(c.RiskProfile); !ok {
		return newValidationError(KindInvalidCustomer, "unknown risk profile %q", c.RiskProfile)
	}
	return nil
}

func validateConfig(cfg EngineConfig) error {
	switch cfg.Strategy {
	case StrategyHierarchical, StrategyCustom, StrategyRange, "":
	default:
		return newValidationError(KindInvalidConfig, "unknown strategy %q", cfg.Strategy)
	}
	if cfg.Strategy == StrategyRange {
		if err := validateRangeParam("service_fee_pct", cfg.Range.ServiceFeePct); err != nil {
			return err
		}
		if err := validateRangeParam("cxa_pct", cfg.Range.CXAPct); err != nil {
			return err
		}
		if err := validateRangeParam("cac_bonus", cfg.Range.CACBonus); err != nil {
			return err
		}
	}
	return nil
}
