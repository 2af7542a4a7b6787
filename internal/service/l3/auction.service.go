package l3_service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/db/models/postgres/public/table"
	"fairslot/internal/domain"
	"fairslot/internal/logger"
	"fairslot/internal/repository"
	l1_service "fairslot/internal/service/l1"
	l2_service "fairslot/internal/service/l2"
	"fairslot/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

const (
	lockAttempts   = 3
	lockRetryDelay = 50 * time.Millisecond

	suggestionWindowDays = 30
	maxSuggestions       = 10
)

// AuctionService runs the lifecycle of a per-(asset, date) auction: opening
// it, resolving it to exactly one winner, and offering alternatives to
// bidders who lost.
type AuctionService interface {
	Start(ctx context.Context, in StartAuctionInput) (*model.Auction, error)
	End(ctx context.Context, auctionID uuid.UUID) (*EndAuctionOutput, error)
	SuggestAlternatives(ctx context.Context, bidID uuid.UUID) (*domain.SuggestionSet, error)
	// SweepExpired ends every active auction whose deadline has passed.
	SweepExpired(ctx context.Context, now time.Time) (int, error)
}

type StartAuctionInput struct {
	AssetID  uuid.UUID
	Date     time.Time
	ClosesAt time.Time
}

type EndAuctionOutput struct {
	Auction model.Auction
	Winner  *ScoredBid
	Losers  []ScoredBid
}

type auctionServiceHandler struct {
	Db                       *sql.DB
	AssetRepository          repository.AssetRepository
	AuctionRepository        repository.AuctionRepository
	BidRepository            repository.BidRepository
	SlotAllocationRepository repository.SlotAllocationRepository
	AdvisoryLockRepository   repository.AdvisoryLockRepository
	FairnessScoreRepository  repository.FairnessScoreRepository
	AssetConfigService       l1_service.AssetConfigService
	FairnessService          l2_service.FairnessService
}

func NewAuctionService(
	db *sql.DB,
	assetRepository repository.AssetRepository,
	auctionRepository repository.AuctionRepository,
	bidRepository repository.BidRepository,
	slotAllocationRepository repository.SlotAllocationRepository,
	advisoryLockRepository repository.AdvisoryLockRepository,
	fairnessScoreRepository repository.FairnessScoreRepository,
	assetConfigService l1_service.AssetConfigService,
	fairnessService l2_service.FairnessService,
) AuctionService {
	return auctionServiceHandler{
		Db:                       db,
		AssetRepository:          assetRepository,
		AuctionRepository:        auctionRepository,
		BidRepository:            bidRepository,
		SlotAllocationRepository: slotAllocationRepository,
		AdvisoryLockRepository:   advisoryLockRepository,
		FairnessScoreRepository:  fairnessScoreRepository,
		AssetConfigService:       assetConfigService,
		FairnessService:          fairnessService,
	}
}

func (h auctionServiceHandler) Start(ctx context.Context, in StartAuctionInput) (*model.Auction, error) {
	asset, err := h.AssetRepository.Get(in.AssetID)
	if err != nil {
		return nil, err
	}

	date := util.StartOfDay(in.Date)
	closesAt := in.ClosesAt
	if closesAt.IsZero() {
		closesAt = date
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin txn: %w", err)
	}
	defer tx.Rollback()

	if err := h.acquireTargetLock(tx, asset.AssetID, date); err != nil {
		return nil, err
	}

	existing, err := h.AuctionRepository.GetByTarget(tx, asset.AssetID, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("auction for asset %s on %s already exists: %w",
			asset.AssetID, date.Format("2006-01-02"), domain.ErrConflict)
	}

	sa, err := h.SlotAllocationRepository.GetOrCreate(tx, asset.AssetID, date, asset.TotalSlots)
	if err != nil {
		return nil, err
	}
	if slotsRemaining(*sa) < 1 {
		return nil, fmt.Errorf("slot %s on %s is fully allocated: %w",
			asset.AssetID, date.Format("2006-01-02"), domain.ErrConflict)
	}

	auction, err := h.AuctionRepository.Add(tx, model.Auction{
		AssetID:  asset.AssetID,
		Date:     date,
		Status:   model.AuctionStatus_Active,
		ClosesAt: closesAt,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit txn: %w", err)
	}

	return auction, nil
}

// End resolves the auction to at most one winner. All active bids on the
// target are re-scored against current state inside the critical section,
// the top-ranked bid wins, every other bid loses, and every score row is
// frozen with its outcome. Ending an auction twice is a conflict, as is
// resolving onto a slot the batch allocator has already filled.
func (h auctionServiceHandler) End(ctx context.Context, auctionID uuid.UUID) (*EndAuctionOutput, error) {
	stale, err := h.AuctionRepository.Get(auctionID)
	if err != nil {
		return nil, err
	}
	asset, err := h.AssetRepository.Get(stale.AssetID)
	if err != nil {
		return nil, err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin txn: %w", err)
	}
	defer tx.Rollback()

	if err := h.acquireTargetLock(tx, stale.AssetID, stale.Date); err != nil {
		return nil, err
	}

	auction, err := h.AuctionRepository.GetByTarget(tx, stale.AssetID, stale.Date)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, fmt.Errorf("auction %s: %w", auctionID, domain.ErrNotFound)
	}
	if auction.Status != model.AuctionStatus_Active {
		return nil, fmt.Errorf("auction %s is already %s: %w", auctionID, auction.Status, domain.ErrAuctionClosed)
	}

	active := model.BidStatus_Active
	startDate := util.StartOfDay(auction.Date)
	bids, err := h.BidRepository.List(tx, repository.BidListFilter{
		AssetID:   &auction.AssetID,
		Status:    &active,
		StartDate: &startDate,
	})
	if err != nil {
		return nil, err
	}

	if len(bids) == 0 {
		out, err := h.cancel(tx, *auction)
		if err != nil {
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit txn: %w", err)
		}
		return out, nil
	}

	sa, err := h.SlotAllocationRepository.GetOrCreate(tx, auction.AssetID, startDate, asset.TotalSlots)
	if err != nil {
		return nil, err
	}
	if slotsRemaining(*sa) < 1 {
		return nil, fmt.Errorf("slot %s on %s is fully allocated: %w",
			auction.AssetID, startDate.Format("2006-01-02"), domain.ErrConflict)
	}

	ranked := make([]ScoredBid, 0, len(bids))
	for _, bid := range bids {
		score, err := h.FairnessService.Compute(ctx, tx, bid, *asset)
		if err != nil {
			return nil, fmt.Errorf("failed to score bid %s: %w", bid.BidID, err)
		}
		ranked = append(ranked, ScoredBid{Bid: bid, Score: score})
	}
	RankScoredBids(ranked)

	winner := ranked[0]
	losers := ranked[1:]

	wonBid, err := h.settleBid(tx, winner, model.BidStatus_Won, model.AllocationResult_Allocated)
	if err != nil {
		return nil, err
	}
	winner.Bid = *wonBid

	for i, loser := range losers {
		lostBid, err := h.settleBid(tx, loser, model.BidStatus_Lost, model.AllocationResult_Rejected)
		if err != nil {
			return nil, err
		}
		losers[i].Bid = *lostBid
	}

	err = h.SlotAllocationRepository.Increment(tx, sa.SlotAllocationID, winner.Bid.BidderClass, 1)
	if err != nil {
		return nil, err
	}

	closedAt := time.Now().UTC()
	updated, err := h.AuctionRepository.Update(tx, auction.AuctionID, model.Auction{
		Status:       model.AuctionStatus_Completed,
		WinningBidID: &winner.Bid.BidID,
		ClosedAt:     &closedAt,
	}, postgres.ColumnList{table.Auction.Status, table.Auction.WinningBidID, table.Auction.ClosedAt})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit txn: %w", err)
	}

	return &EndAuctionOutput{
		Auction: *updated,
		Winner:  &winner,
		Losers:  losers,
	}, nil
}

func slotsRemaining(sa model.SlotAllocation) int {
	return int(sa.TotalSlots - sa.InternalAllocated - sa.ExternalAllocated)
}

func (h auctionServiceHandler) cancel(tx *sql.Tx, auction model.Auction) (*EndAuctionOutput, error) {
	closedAt := time.Now().UTC()
	updated, err := h.AuctionRepository.Update(tx, auction.AuctionID, model.Auction{
		Status:   model.AuctionStatus_Cancelled,
		ClosedAt: &closedAt,
	}, postgres.ColumnList{table.Auction.Status, table.Auction.ClosedAt})
	if err != nil {
		return nil, err
	}

	return &EndAuctionOutput{Auction: *updated}, nil
}

func (h auctionServiceHandler) settleBid(tx *sql.Tx, sb ScoredBid, status model.BidStatus, result model.AllocationResult) (*model.Bid, error) {
	updated, err := h.BidRepository.Update(tx, sb.Bid.BidID, model.Bid{
		Status: status,
	}, postgres.ColumnList{table.Bid.Status})
	if err != nil {
		return nil, err
	}

	frozen := *sb.Score
	frozen.Result = result
	frozen.Frozen = true
	_, err = h.FairnessScoreRepository.Upsert(tx, frozen)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// SuggestAlternatives builds remediation for a bid that did not get its slot:
// why it was rejected, plus open slots on the same asset over the coming
// weeks and on equivalent assets for the original date.
func (h auctionServiceHandler) SuggestAlternatives(ctx context.Context, bidID uuid.UUID) (*domain.SuggestionSet, error) {
	bid, err := h.BidRepository.Get(bidID)
	if err != nil {
		return nil, err
	}
	asset, err := h.AssetRepository.Get(bid.AssetID)
	if err != nil {
		return nil, err
	}

	reason, err := h.rejectionReason(*bid, *asset)
	if err != nil {
		return nil, err
	}

	set := &domain.SuggestionSet{
		BidID:  bid.BidID,
		Reason: reason,
		Hint:   reason.RemediationHint(),
	}

	today := util.StartOfDay(time.Now().UTC())
	horizon := today.AddDate(0, 0, suggestionWindowDays)

	allocations, err := h.SlotAllocationRepository.List(asset.AssetID, today, horizon)
	if err != nil {
		return nil, err
	}
	byDate := map[string]model.SlotAllocation{}
	for _, sa := range allocations {
		byDate[sa.Date.Format("2006-01-02")] = sa
	}

	requested := util.StartOfDay(bid.StartDate)
	for offset := 1; offset <= suggestionWindowDays && len(set.Alternatives) < maxSuggestions; offset++ {
		date := today.AddDate(0, 0, offset)
		if date.Equal(requested) {
			continue
		}
		remaining := int(asset.TotalSlots)
		if sa, ok := byDate[date.Format("2006-01-02")]; ok {
			remaining = slotsRemaining(sa)
		}
		if remaining <= 0 {
			continue
		}
		set.Alternatives = append(set.Alternatives, domain.AlternativeSlot{
			AssetID:        asset.AssetID,
			Date:           date,
			SlotsRemaining: remaining,
			Priority:       domain.PriorityForOffset(offset),
		})
	}

	peers, err := h.equivalentAssetSlots(*asset, requested, today)
	if err != nil {
		return nil, err
	}
	for _, alt := range peers {
		if len(set.Alternatives) >= maxSuggestions {
			break
		}
		set.Alternatives = append(set.Alternatives, alt)
	}

	return set, nil
}

// equivalentAssetSlots finds same-level assets with open capacity on the
// bidder's original date.
func (h auctionServiceHandler) equivalentAssetSlots(asset model.Asset, date, today time.Time) ([]domain.AlternativeSlot, error) {
	peers, err := h.AssetRepository.List(repository.AssetListFilter{Level: &asset.Level})
	if err != nil {
		return nil, err
	}

	offset := util.DaysBetween(today, date)
	if offset < 1 {
		offset = 1
	}

	out := []domain.AlternativeSlot{}
	for _, peer := range peers {
		if peer.AssetID == asset.AssetID {
			continue
		}
		remaining := int(peer.TotalSlots)
		sa, err := h.SlotAllocationRepository.Get(nil, peer.AssetID, date)
		if err != nil {
			return nil, err
		}
		if sa != nil {
			remaining = slotsRemaining(*sa)
		}
		if remaining <= 0 {
			continue
		}
		out = append(out, domain.AlternativeSlot{
			AssetID:        peer.AssetID,
			Date:           date,
			SlotsRemaining: remaining,
			Priority:       domain.PriorityForOffset(offset),
		})
	}

	return out, nil
}

func (h auctionServiceHandler) rejectionReason(bid model.Bid, asset model.Asset) (domain.RejectionReason, error) {
	auction, err := h.AuctionRepository.GetByTarget(nil, bid.AssetID, util.StartOfDay(bid.StartDate))
	if err != nil {
		return "", err
	}
	if auction != nil && auction.Status == model.AuctionStatus_Completed &&
		auction.WinningBidID != nil && *auction.WinningBidID != bid.BidID {
		if bid.BidderClass == model.BidderClass_Monetization {
			exhausted, err := h.monetizationExhausted(bid, asset)
			if err != nil {
				return "", err
			}
			if exhausted {
				return domain.RejectionReason_QuotaExceeded, nil
			}
		}
		return domain.RejectionReason_Conflict, nil
	}

	if bid.BidderClass == model.BidderClass_Monetization {
		exhausted, err := h.monetizationExhausted(bid, asset)
		if err != nil {
			return "", err
		}
		if exhausted {
			return domain.RejectionReason_QuotaExceeded, nil
		}
	}

	return domain.RejectionReason_Fairness, nil
}

func (h auctionServiceHandler) monetizationExhausted(bid model.Bid, asset model.Asset) (bool, error) {
	cfg, err := h.AssetConfigService.Resolve(asset.AssetID, asset.Level)
	if err != nil {
		return false, err
	}
	quota := cfg.MonetizationQuota(asset.TotalSlots)
	if quota == 0 {
		return true, nil
	}

	sa, err := h.SlotAllocationRepository.Get(nil, asset.AssetID, util.StartOfDay(bid.StartDate))
	if err != nil {
		return false, err
	}

	return sa != nil && int(sa.MonetizationAllocated) >= quota, nil
}

func (h auctionServiceHandler) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	log := logger.FromContext(ctx)

	expired, err := h.AuctionRepository.ListExpired(now)
	if err != nil {
		return 0, err
	}

	ended := 0
	for _, auction := range expired {
		_, err := h.End(ctx, auction.AuctionID)
		if err != nil {
			// another worker may have taken the target; skip and let the
			// next sweep retry anything still active
			log.Warnw("failed to end expired auction",
				"auctionId", auction.AuctionID.String(),
				"error", err,
			)
			continue
		}
		ended++
	}

	return ended, nil
}

// acquireTargetLock takes the per-(asset, date) advisory lock with a short
// bounded retry. Contention is expected to be brief; callers surface
// ErrLockContention rather than queueing behind a long-running resolution.
func (h auctionServiceHandler) acquireTargetLock(tx *sql.Tx, assetID uuid.UUID, date time.Time) error {
	date = util.StartOfDay(date)
	for attempt := 0; attempt < lockAttempts; attempt++ {
		acquired, err := h.AdvisoryLockRepository.TryAcquireSlotLock(tx, assetID, date)
		if err != nil {
			return err
		}
		if acquired {
			return nil
		}
		time.Sleep(lockRetryDelay)
	}

	return fmt.Errorf("target asset %s date %s: %w", assetID, date.Format("2006-01-02"), domain.ErrLockContention)
}
