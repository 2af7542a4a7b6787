package l3_service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/db/models/postgres/public/table"
	"fairslot/internal/domain"
	"fairslot/internal/repository"
	l1_service "fairslot/internal/service/l1"
	l2_service "fairslot/internal/service/l2"
	"fairslot/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BidService is the write path for bids: validate, persist, score. A user
// holds at most one active bid per (asset, date); submitting again updates
// that bid in place.
type BidService interface {
	Submit(ctx context.Context, in SubmitBidInput) (*SubmitBidOutput, error)
	// DryRun validates without persisting anything.
	DryRun(ctx context.Context, in SubmitBidInput) (domain.ValidationResult, error)
	Withdraw(ctx context.Context, bidID uuid.UUID, userAccountID uuid.UUID) (*model.Bid, error)
}

type SubmitBidInput struct {
	CampaignID    uuid.UUID
	UserAccountID uuid.UUID
	Lob           string
	BidderClass   model.BidderClass
	AssetID       uuid.UUID
	Amount        decimal.Decimal
	MaxAmount     *decimal.Decimal
	StartDate     time.Time
	EndDate       time.Time
}

type SubmitBidOutput struct {
	Bid        *model.Bid
	Score      *model.FairnessScore
	Validation domain.ValidationResult
	// Resubmitted is true when the submission updated an existing active
	// bid instead of creating a new one.
	Resubmitted bool
}

type bidServiceHandler struct {
	Db                     *sql.DB
	AssetRepository        repository.AssetRepository
	BidRepository          repository.BidRepository
	AuctionRepository      repository.AuctionRepository
	AdvisoryLockRepository repository.AdvisoryLockRepository
	BidValidatorService    l1_service.BidValidatorService
	FairnessService        l2_service.FairnessService
}

func NewBidService(
	db *sql.DB,
	assetRepository repository.AssetRepository,
	bidRepository repository.BidRepository,
	auctionRepository repository.AuctionRepository,
	advisoryLockRepository repository.AdvisoryLockRepository,
	bidValidatorService l1_service.BidValidatorService,
	fairnessService l2_service.FairnessService,
) BidService {
	return bidServiceHandler{
		Db:                     db,
		AssetRepository:        assetRepository,
		BidRepository:          bidRepository,
		AuctionRepository:      auctionRepository,
		AdvisoryLockRepository: advisoryLockRepository,
		BidValidatorService:    bidValidatorService,
		FairnessService:        fairnessService,
	}
}

func (h bidServiceHandler) Submit(ctx context.Context, in SubmitBidInput) (*SubmitBidOutput, error) {
	asset, err := h.AssetRepository.Get(in.AssetID)
	if err != nil {
		return nil, err
	}

	startDate := util.StartOfDay(in.StartDate)
	endDate := util.StartOfDay(in.EndDate)
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date %s is before start date %s",
			endDate.Format("2006-01-02"), startDate.Format("2006-01-02"))
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin txn: %w", err)
	}
	defer tx.Rollback()

	if err := h.acquireTargetLock(tx, asset.AssetID, startDate); err != nil {
		return nil, err
	}

	if err := h.checkAuctionOpen(tx, asset.AssetID, startDate); err != nil {
		return nil, err
	}

	existing, err := h.findActiveBid(tx, in, startDate)
	if err != nil {
		return nil, err
	}

	candidate := model.Bid{
		CampaignID:    in.CampaignID,
		UserAccountID: in.UserAccountID,
		Lob:           in.Lob,
		BidderClass:   in.BidderClass,
		Amount:        in.Amount,
		MaxAmount:     in.MaxAmount,
		Status:        model.BidStatus_Active,
		AssetID:       in.AssetID,
		StartDate:     startDate,
		EndDate:       endDate,
	}
	if existing != nil {
		candidate.BidID = existing.BidID
		candidate.CreatedAt = existing.CreatedAt
	}

	validation, err := h.BidValidatorService.Validate(ctx, tx, candidate, *asset)
	if err != nil {
		return nil, err
	}
	if !validation.Valid {
		return &SubmitBidOutput{Validation: validation}, nil
	}

	var bid *model.Bid
	if existing != nil {
		bid, err = h.BidRepository.Update(tx, existing.BidID, candidate, postgres.ColumnList{
			table.Bid.Amount,
			table.Bid.MaxAmount,
			table.Bid.EndDate,
		})
	} else {
		bid, err = h.BidRepository.Add(tx, candidate)
	}
	if err != nil {
		return nil, err
	}

	score, err := h.FairnessService.Score(ctx, tx, *bid, *asset)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit txn: %w", err)
	}

	return &SubmitBidOutput{
		Bid:         bid,
		Score:       score,
		Validation:  validation,
		Resubmitted: existing != nil,
	}, nil
}

func (h bidServiceHandler) DryRun(ctx context.Context, in SubmitBidInput) (domain.ValidationResult, error) {
	asset, err := h.AssetRepository.Get(in.AssetID)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	startDate := util.StartOfDay(in.StartDate)
	existing, err := h.findActiveBid(nil, in, startDate)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	candidate := model.Bid{
		CampaignID:    in.CampaignID,
		UserAccountID: in.UserAccountID,
		Lob:           in.Lob,
		BidderClass:   in.BidderClass,
		Amount:        in.Amount,
		MaxAmount:     in.MaxAmount,
		Status:        model.BidStatus_Active,
		AssetID:       in.AssetID,
		StartDate:     startDate,
		EndDate:       util.StartOfDay(in.EndDate),
	}
	if existing != nil {
		candidate.BidID = existing.BidID
	}

	return h.BidValidatorService.Validate(ctx, nil, candidate, *asset)
}

func (h bidServiceHandler) Withdraw(ctx context.Context, bidID uuid.UUID, userAccountID uuid.UUID) (*model.Bid, error) {
	bid, err := h.BidRepository.Get(bidID)
	if err != nil {
		return nil, err
	}
	if bid.UserAccountID != userAccountID {
		return nil, fmt.Errorf("bid %s: %w", bidID, domain.ErrNotFound)
	}
	if bid.Status != model.BidStatus_Active {
		return nil, fmt.Errorf("bid %s is %s and cannot be withdrawn: %w", bidID, bid.Status, domain.ErrConflict)
	}

	return h.BidRepository.Update(nil, bidID, model.Bid{
		Status: model.BidStatus_Cancelled,
	}, postgres.ColumnList{table.Bid.Status})
}

// checkAuctionOpen rejects submissions against a target whose auction has
// already been resolved or whose deadline has passed.
func (h bidServiceHandler) checkAuctionOpen(tx *sql.Tx, assetID uuid.UUID, date time.Time) error {
	auction, err := h.AuctionRepository.GetByTarget(tx, assetID, date)
	if err != nil {
		return err
	}
	if auction == nil {
		return nil
	}
	if auction.Status != model.AuctionStatus_Active {
		return fmt.Errorf("auction for asset %s on %s is %s: %w",
			assetID, date.Format("2006-01-02"), auction.Status, domain.ErrAuctionClosed)
	}
	if time.Now().UTC().After(auction.ClosesAt) {
		return fmt.Errorf("auction for asset %s on %s closed at %s: %w",
			assetID, date.Format("2006-01-02"), auction.ClosesAt.Format(time.RFC3339), domain.ErrAuctionClosed)
	}

	return nil
}

func (h bidServiceHandler) findActiveBid(tx *sql.Tx, in SubmitBidInput, startDate time.Time) (*model.Bid, error) {
	active := model.BidStatus_Active
	bids, err := h.BidRepository.List(tx, repository.BidListFilter{
		UserAccountID: &in.UserAccountID,
		AssetID:       &in.AssetID,
		StartDate:     &startDate,
		Status:        &active,
	})
	if err != nil {
		return nil, err
	}
	if len(bids) == 0 {
		return nil, nil
	}

	return &bids[0], nil
}

func (h bidServiceHandler) acquireTargetLock(tx *sql.Tx, assetID uuid.UUID, date time.Time) error {
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
