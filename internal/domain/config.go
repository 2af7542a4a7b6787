package domain

import "fairslot/internal/db/models/postgres/public/model"

// EngineConfig holds every tunable the allocation engine reads. It is
// constructed once at startup and passed into the services - scoring code
// never re-parses config blobs.
type EngineConfig struct {
	Validator ValidatorConfig
	Roi       RoiConfig
	Fairness  FairnessConfig
}

type ValidatorConfig struct {
	MinBidAmount float64
	MaxBidAmount float64

	// hard ceiling as a percentage of the asset's daily value
	MaxBidPctOfAssetValue float64
	// warning-only floor as a percentage of the asset's daily value
	RecommendedMinPctOfAssetValue float64

	// daily budget and max single bid applied to every LOB
	DefaultLobDailyBudget float64
	DefaultLobMaxBid      float64
	BudgetWarnThreshold   float64 // fraction of daily budget, e.g. 0.8

	UserMaxBidPerAsset    float64
	UserDailySpendCap     float64
	UserMaxConcurrentBids int

	// anti bidding-war rule
	BidWarWindowMinutes int
	MaxBidIncrement     float64

	// hard cap multipliers on asset daily value, by asset level
	LevelMultipliers map[model.AssetLevel]float64
}

type RoiConfig struct {
	LookbackDays        int
	DelayedLookbackDays int
	RevenueFloor        float64

	ImmediateRevenueCap float64
	EngagementCap       float64
	ConversionCap       float64
	DelayedRevenueCap   float64
}

type FairnessConfig struct {
	MonetizationBaseMultiplier float64
	TimeFairnessDecay          float64
	TimeFairnessCap            float64
	TimeFairnessNoHistory      float64

	// strategic priority per LOB; unlisted LOBs default to 1.0
	StrategicWeights map[string]float64

	BookingHistoryWindowDays int
	BookingHistoryMaxPenalty float64
	BookingHistoryBonus      float64

	InternalAvailabilityBonus    float64
	ExternalAvailabilityFactor   float64
	MonetizationOverQuotaPenalty float64

	BusinessHoursStart       int // hour, inclusive
	BusinessHoursEnd         int // hour, exclusive
	TimeRestrictionViolation float64

	// bounds on the optional per-asset goval adjustment expression
	AdjustmentMin float64
	AdjustmentMax float64
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Validator: ValidatorConfig{
			MinBidAmount:                  100,
			MaxBidAmount:                  1_000_000,
			MaxBidPctOfAssetValue:         300,
			RecommendedMinPctOfAssetValue: 10,
			DefaultLobDailyBudget:         100_000,
			DefaultLobMaxBid:              50_000,
			BudgetWarnThreshold:           0.8,
			UserMaxBidPerAsset:            50_000,
			UserDailySpendCap:             200_000,
			UserMaxConcurrentBids:         10,
			BidWarWindowMinutes:           30,
			MaxBidIncrement:               5_000,
			LevelMultipliers: map[model.AssetLevel]float64{
				model.AssetLevel_Primary:   3.0,
				model.AssetLevel_Secondary: 2.5,
				model.AssetLevel_Tertiary:  2.0,
			},
		},
		Roi: RoiConfig{
			LookbackDays:        30,
			DelayedLookbackDays: 7,
			RevenueFloor:        1.5,
			ImmediateRevenueCap: 2.0,
			EngagementCap:       1.5,
			ConversionCap:       1.8,
			DelayedRevenueCap:   1.6,
		},
		Fairness: FairnessConfig{
			MonetizationBaseMultiplier: 1.2,
			TimeFairnessDecay:          0.05,
			TimeFairnessCap:            3.0,
			TimeFairnessNoHistory:      2.0,
			StrategicWeights: map[string]float64{
				"pharmacy":     1.5,
				"diagnostics":  1.4,
				"consultation": 1.3,
				"wellness":     1.1,
				"monetization": 1.2,
			},
			BookingHistoryWindowDays:     30,
			BookingHistoryMaxPenalty:     0.5,
			BookingHistoryBonus:          1.5,
			InternalAvailabilityBonus:    1.2,
			ExternalAvailabilityFactor:   0.8,
			MonetizationOverQuotaPenalty: 0.1,
			BusinessHoursStart:           9,
			BusinessHoursEnd:             18,
			TimeRestrictionViolation:     0.3,
			AdjustmentMin:                0.5,
			AdjustmentMax:                2.0,
		},
	}
}
