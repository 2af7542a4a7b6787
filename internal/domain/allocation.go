package domain

import (
	"math"

	"fairslot/internal/db/models/postgres/public/model"
)

// ResolvedAssetConfig is the single source of truth for an asset's quota
// split, produced by the asset config service (asset-specific override row,
// else asset-level defaults).
type ResolvedAssetConfig struct {
	InternalPct        float64
	ExternalPct        float64
	MonetizationLimit  float64
	FairnessExpression *string
}

// InternalQuota is the number of slots reserved for internal bidders.
func (c ResolvedAssetConfig) InternalQuota(totalSlots int32) int {
	return int(math.Floor(float64(totalSlots) * c.InternalPct))
}

// MonetizationQuota is the hard ceiling on monetization slots. A small
// asset with a low limit can legitimately resolve to zero.
func (c ResolvedAssetConfig) MonetizationQuota(totalSlots int32) int {
	return int(math.Floor(float64(totalSlots) * c.MonetizationLimit))
}

func DefaultAssetConfig(level model.AssetLevel) ResolvedAssetConfig {
	switch level {
	case model.AssetLevel_Primary:
		return ResolvedAssetConfig{InternalPct: 0.6, ExternalPct: 0.4, MonetizationLimit: 0.2}
	case model.AssetLevel_Secondary:
		return ResolvedAssetConfig{InternalPct: 0.7, ExternalPct: 0.3, MonetizationLimit: 0.15}
	default:
		return ResolvedAssetConfig{InternalPct: 0.8, ExternalPct: 0.2, MonetizationLimit: 0.1}
	}
}

// AllocationBreakdown is the per-(asset, date) view returned to callers:
// raw counts plus the percentages they work out to.
type AllocationBreakdown struct {
	AssetID               string  `json:"assetId"`
	Date                  string  `json:"date"`
	TotalSlots            int32   `json:"totalSlots"`
	InternalAllocated     int32   `json:"internalAllocated"`
	ExternalAllocated     int32   `json:"externalAllocated"`
	MonetizationAllocated int32   `json:"monetizationAllocated"`
	InternalPct           float64 `json:"internalPct"`
	ExternalPct           float64 `json:"externalPct"`
	MonetizationPct       float64 `json:"monetizationPct"`
}

func NewAllocationBreakdown(sa model.SlotAllocation) AllocationBreakdown {
	b := AllocationBreakdown{
		AssetID:               sa.AssetID.String(),
		Date:                  sa.Date.Format("2006-01-02"),
		TotalSlots:            sa.TotalSlots,
		InternalAllocated:     sa.InternalAllocated,
		ExternalAllocated:     sa.ExternalAllocated,
		MonetizationAllocated: sa.MonetizationAllocated,
	}
	if sa.TotalSlots > 0 {
		total := float64(sa.TotalSlots)
		b.InternalPct = float64(sa.InternalAllocated) / total * 100
		b.ExternalPct = float64(sa.ExternalAllocated) / total * 100
		b.MonetizationPct = float64(sa.MonetizationAllocated) / total * 100
	}
	return b
}
