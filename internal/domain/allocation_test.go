package domain

import (
	"testing"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_DefaultAssetConfig(t *testing.T) {
	tests := []struct {
		level             model.AssetLevel
		internalPct       float64
		externalPct       float64
		monetizationLimit float64
	}{
		{model.AssetLevel_Primary, 0.6, 0.4, 0.2},
		{model.AssetLevel_Secondary, 0.7, 0.3, 0.15},
		{model.AssetLevel_Tertiary, 0.8, 0.2, 0.1},
	}
	for _, tc := range tests {
		t.Run(tc.level.String(), func(t *testing.T) {
			cfg := DefaultAssetConfig(tc.level)
			require.Equal(t, tc.internalPct, cfg.InternalPct)
			require.Equal(t, tc.externalPct, cfg.ExternalPct)
			require.Equal(t, tc.monetizationLimit, cfg.MonetizationLimit)
		})
	}
}

func Test_QuotaRounding(t *testing.T) {
	t.Run("fractional slots floor rather than round", func(t *testing.T) {
		cfg := DefaultAssetConfig(model.AssetLevel_Primary)
		require.Equal(t, 3, cfg.InternalQuota(5))
		require.Equal(t, 1, cfg.MonetizationQuota(5))
	})

	t.Run("small assets can have a zero monetization quota", func(t *testing.T) {
		cfg := DefaultAssetConfig(model.AssetLevel_Tertiary)
		require.Equal(t, 0, cfg.MonetizationQuota(9))
	})
}

func Test_NewAllocationBreakdown(t *testing.T) {
	sa := model.SlotAllocation{
		SlotAllocationID:      uuid.New(),
		AssetID:               uuid.New(),
		Date:                  util.NewDate(2026, 9, 1),
		TotalSlots:            10,
		InternalAllocated:     6,
		ExternalAllocated:     4,
		MonetizationAllocated: 2,
	}

	b := NewAllocationBreakdown(sa)
	require.Equal(t, "2026-09-01", b.Date)
	require.Equal(t, 60.0, b.InternalPct)
	require.Equal(t, 40.0, b.ExternalPct)
	require.Equal(t, 20.0, b.MonetizationPct)
}

func Test_PriorityForOffset(t *testing.T) {
	require.Equal(t, SuggestionPriority_High, PriorityForOffset(1))
	require.Equal(t, SuggestionPriority_High, PriorityForOffset(7))
	require.Equal(t, SuggestionPriority_Medium, PriorityForOffset(8))
	require.Equal(t, SuggestionPriority_Medium, PriorityForOffset(14))
	require.Equal(t, SuggestionPriority_Low, PriorityForOffset(15))
	require.Equal(t, SuggestionPriority_Low, PriorityForOffset(30))
}
