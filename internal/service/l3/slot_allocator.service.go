package l3_service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/domain"
	"fairslot/internal/repository"
	l1_service "fairslot/internal/service/l1"
	l2_service "fairslot/internal/service/l2"
	"fairslot/internal/util"
)

// SlotAllocatorService partitions an asset's daily slots into the
// internal/external quota split and fills each partition with the highest
// scoring candidate bids.
type SlotAllocatorService interface {
	Allocate(ctx context.Context, tx *sql.Tx, in AllocateInput) (*AllocateOutput, error)
}

type AllocateInput struct {
	Asset      model.Asset
	Date       time.Time
	Candidates []model.Bid
}

type ScoredBid struct {
	Bid   model.Bid
	Score *model.FairnessScore
}

type AllocateOutput struct {
	// Allocated bids hold a slot for the date. Unallocated bids were not
	// selected this cycle but may be re-offered later - they are not
	// rejected.
	Allocated   []ScoredBid
	Unallocated []ScoredBid
	Breakdown   domain.AllocationBreakdown
}

type slotAllocatorServiceHandler struct {
	AssetConfigService       l1_service.AssetConfigService
	FairnessService          l2_service.FairnessService
	SlotAllocationRepository repository.SlotAllocationRepository
}

func NewSlotAllocatorService(
	assetConfigService l1_service.AssetConfigService,
	fairnessService l2_service.FairnessService,
	slotAllocationRepository repository.SlotAllocationRepository,
) SlotAllocatorService {
	return slotAllocatorServiceHandler{
		AssetConfigService:       assetConfigService,
		FairnessService:          fairnessService,
		SlotAllocationRepository: slotAllocationRepository,
	}
}

func (h slotAllocatorServiceHandler) Allocate(ctx context.Context, tx *sql.Tx, in AllocateInput) (*AllocateOutput, error) {
	cfg, err := h.AssetConfigService.Resolve(in.Asset.AssetID, in.Asset.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve asset config: %w", err)
	}

	date := util.StartOfDay(in.Date)
	sa, err := h.SlotAllocationRepository.GetOrCreate(tx, in.Asset.AssetID, date, in.Asset.TotalSlots)
	if err != nil {
		return nil, err
	}

	var internal, external []ScoredBid
	for _, bid := range in.Candidates {
		score, err := h.FairnessService.Score(ctx, tx, bid, in.Asset)
		if err != nil {
			return nil, fmt.Errorf("failed to score bid %s: %w", bid.BidID, err)
		}
		sb := ScoredBid{Bid: bid, Score: score}
		if bid.BidderClass == model.BidderClass_Internal {
			internal = append(internal, sb)
		} else {
			external = append(external, sb)
		}
	}

	RankScoredBids(internal)
	RankScoredBids(external)

	internalQuota := cfg.InternalQuota(sa.TotalSlots) - int(sa.InternalAllocated)
	if internalQuota < 0 {
		internalQuota = 0
	}
	allocated, unallocated := take(internal, internalQuota)

	externalQuota := int(sa.TotalSlots) - cfg.InternalQuota(sa.TotalSlots) - int(sa.ExternalAllocated)
	if externalQuota < 0 {
		externalQuota = 0
	}
	monetizationRemaining := cfg.MonetizationQuota(sa.TotalSlots) - int(sa.MonetizationAllocated)

	picked := 0
	for _, sb := range external {
		if picked >= externalQuota {
			unallocated = append(unallocated, sb)
			continue
		}
		if sb.Bid.BidderClass == model.BidderClass_Monetization {
			if monetizationRemaining <= 0 {
				unallocated = append(unallocated, sb)
				continue
			}
			monetizationRemaining--
		}
		allocated = append(allocated, sb)
		picked++
	}

	for _, sb := range allocated {
		err = h.SlotAllocationRepository.Increment(tx, sa.SlotAllocationID, sb.Bid.BidderClass, 1)
		if err != nil {
			return nil, err
		}
	}

	updated, err := h.SlotAllocationRepository.Get(tx, in.Asset.AssetID, date)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		updated = sa
	}

	return &AllocateOutput{
		Allocated:   allocated,
		Unallocated: unallocated,
		Breakdown:   domain.NewAllocationBreakdown(*updated),
	}, nil
}

// RankScoredBids orders candidates by the auction tie-break policy: higher
// fairness score first, then higher bid amount, then earlier submission.
func RankScoredBids(bids []ScoredBid) {
	sort.SliceStable(bids, func(i, j int) bool {
		if bids[i].Score.FinalScore != bids[j].Score.FinalScore {
			return bids[i].Score.FinalScore > bids[j].Score.FinalScore
		}
		if !bids[i].Bid.Amount.Equal(bids[j].Bid.Amount) {
			return bids[i].Bid.Amount.GreaterThan(bids[j].Bid.Amount)
		}
		return bids[i].Bid.CreatedAt.Before(bids[j].Bid.CreatedAt)
	})
}

func take(bids []ScoredBid, n int) (selected, rest []ScoredBid) {
	if n > len(bids) {
		n = len(bids)
	}
	return bids[:n], append([]ScoredBid{}, bids[n:]...)
}
