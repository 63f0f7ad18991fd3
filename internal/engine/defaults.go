package engine

// DefaultEngineConfig returns the engine's baseline configuration: a
// 5% service fee, 4% CXA, 5,000 MXN CAC bonus, Kavak-Total included,
// and the three standard payment-delta tiers.
func DefaultEngineConfig() EngineConfig {
	defaultFees := FeeSet{
		ServiceFeePct:      0.05,
		CXAPct:             0.04,
		CACBonus:           5000.0,
		KavakTotalAmount:   15000.0,
		GPSInstallationFee: 350.0,
		GPSMonthlyFee:      199.0,
	}

	return EngineConfig{
		Strategy:          StrategyHierarchical,
		IncludeKavakTotal: true,
		MinNPVThreshold:   5000.0,
		TermPriority:      TermPriorityStandard,
		TierBoundaries: TierBoundaries{
			RefreshMin:    -0.05,
			RefreshMax:    0.05,
			UpgradeMin:    0.0501,
			UpgradeMax:    0.25,
			MaxUpgradeMin: 0.2501,
			MaxUpgradeMax: 1.0,
		},
		DefaultFeeSet: defaultFees,
		MaxCACBonus:   10000.0,
		CustomFeeSet:  defaultFees,
		Range: RangeParams{
			ServiceFeePct:         RangeParam{Min: 0, Max: 0.05, Step: 0.0001},
			CXAPct:                RangeParam{Min: 0, Max: 0.04, Step: 0.0001},
			CACBonus:              RangeParam{Min: 0, Max: 10000, Step: 100},
			MaxOffersPerTier:      50,
			MaxCombinationsToTest: 1000,
			EarlyStopOnOffers:     100,
			SmartMaxIter:          30,
		},
	}
}
