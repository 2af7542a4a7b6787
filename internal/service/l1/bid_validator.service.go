package l1_service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/domain"
	"fairslot/internal/repository"
	"fairslot/internal/util"

	"github.com/shopspring/decimal"
)

// BidValidatorService accepts or rejects a proposed bid against global,
// per-LOB, per-user and per-asset-level limits. Pure over repository state:
// the caller persists the bid only on a valid result.
type BidValidatorService interface {
	Validate(ctx context.Context, tx *sql.Tx, bid model.Bid, asset model.Asset) (domain.ValidationResult, error)
}

type bidValidatorServiceHandler struct {
	BidRepository    repository.BidRepository
	BidCapRepository repository.BidCapRepository
	Config           domain.ValidatorConfig
}

func NewBidValidatorService(
	bidRepository repository.BidRepository,
	bidCapRepository repository.BidCapRepository,
	config domain.ValidatorConfig,
) BidValidatorService {
	return bidValidatorServiceHandler{
		BidRepository:    bidRepository,
		BidCapRepository: bidCapRepository,
		Config:           config,
	}
}

func (h bidValidatorServiceHandler) Validate(ctx context.Context, tx *sql.Tx, bid model.Bid, asset model.Asset) (domain.ValidationResult, error) {
	result := domain.ValidationResult{Valid: true}
	amount := bid.Amount.InexactFloat64()
	assetValue := asset.ValuePerDay.InexactFloat64()

	h.checkGlobalBounds(&result, amount, assetValue)
	if !result.Valid {
		return result, nil
	}

	if err := h.checkLobBudget(tx, &result, bid, amount); err != nil {
		return result, err
	}
	if !result.Valid {
		return result, nil
	}

	if err := h.checkUserLimits(tx, &result, bid, amount); err != nil {
		return result, err
	}
	if !result.Valid {
		return result, nil
	}

	if err := h.checkAssetLevelCaps(&result, bid, asset, amount, assetValue); err != nil {
		return result, err
	}
	if !result.Valid {
		return result, nil
	}

	if err := h.checkBidWar(tx, &result, bid); err != nil {
		return result, err
	}

	return result, nil
}

func (h bidValidatorServiceHandler) checkGlobalBounds(result *domain.ValidationResult, amount, assetValue float64) {
	if amount < h.Config.MinBidAmount {
		result.AddError(fmt.Sprintf("bid amount %.2f is below the minimum of %.2f", amount, h.Config.MinBidAmount))
	}
	if amount > h.Config.MaxBidAmount {
		result.AddError(fmt.Sprintf("bid amount %.2f exceeds the maximum of %.2f", amount, h.Config.MaxBidAmount))
	}
	ceiling := assetValue * h.Config.MaxBidPctOfAssetValue / 100
	if ceiling > 0 && amount > ceiling {
		result.AddError(fmt.Sprintf("bid amount %.2f exceeds %.0f%% of the asset's daily value", amount, h.Config.MaxBidPctOfAssetValue))
	}
}

func (h bidValidatorServiceHandler) checkLobBudget(tx *sql.Tx, result *domain.ValidationResult, bid model.Bid, amount float64) error {
	if amount > h.Config.DefaultLobMaxBid {
		result.AddError(fmt.Sprintf("bid amount %.2f exceeds the LOB max bid of %.2f", amount, h.Config.DefaultLobMaxBid))
		return nil
	}

	today := util.StartOfDay(time.Now().UTC())
	active := model.BidStatus_Active
	bids, err := h.BidRepository.List(tx, repository.BidListFilter{
		Lob:          &bid.Lob,
		Status:       &active,
		CreatedAtGte: &today,
	})
	if err != nil {
		return fmt.Errorf("failed to compute lob daily spend: %w", err)
	}

	spend := decimal.Zero
	for _, b := range bids {
		if b.BidID == bid.BidID {
			continue
		}
		spend = spend.Add(b.Amount)
	}
	projected := spend.InexactFloat64() + amount

	if projected > h.Config.DefaultLobDailyBudget {
		result.AddError(fmt.Sprintf("bid would push LOB %s daily spend to %.2f, over the budget of %.2f",
			bid.Lob, projected, h.Config.DefaultLobDailyBudget))
		return nil
	}
	if projected > h.Config.DefaultLobDailyBudget*h.Config.BudgetWarnThreshold {
		result.AddWarning(fmt.Sprintf("LOB %s has used %.0f%% of its daily budget",
			bid.Lob, projected/h.Config.DefaultLobDailyBudget*100))
	}

	return nil
}

func (h bidValidatorServiceHandler) checkUserLimits(tx *sql.Tx, result *domain.ValidationResult, bid model.Bid, amount float64) error {
	if amount > h.Config.UserMaxBidPerAsset {
		result.AddError(fmt.Sprintf("bid amount %.2f exceeds the per-asset user limit of %.2f", amount, h.Config.UserMaxBidPerAsset))
		return nil
	}

	active := model.BidStatus_Active
	userBids, err := h.BidRepository.List(tx, repository.BidListFilter{
		UserAccountID: &bid.UserAccountID,
		Status:        &active,
	})
	if err != nil {
		return fmt.Errorf("failed to list user bids: %w", err)
	}

	spend := decimal.Zero
	concurrent := 0
	for _, b := range userBids {
		if b.BidID == bid.BidID {
			continue
		}
		concurrent++
		if util.StartOfDay(b.CreatedAt).Equal(util.StartOfDay(time.Now().UTC())) {
			spend = spend.Add(b.Amount)
		}
	}

	if spend.InexactFloat64()+amount > h.Config.UserDailySpendCap {
		result.AddError(fmt.Sprintf("bid would exceed the user's daily spend cap of %.2f", h.Config.UserDailySpendCap))
		return nil
	}
	if concurrent >= h.Config.UserMaxConcurrentBids {
		result.AddError(fmt.Sprintf("user already holds %d active bids, the maximum allowed", concurrent))
	}

	return nil
}

func (h bidValidatorServiceHandler) checkAssetLevelCaps(result *domain.ValidationResult, bid model.Bid, asset model.Asset, amount, assetValue float64) error {
	multiplier, ok := h.Config.LevelMultipliers[asset.Level]
	if !ok {
		multiplier = 1.0
	}
	capRow, err := h.BidCapRepository.Get(bid.Lob, asset.Level)
	if err != nil {
		return err
	}
	if capRow != nil {
		multiplier = capRow.MaxBidMultiplier
	}

	if amount > assetValue*multiplier {
		result.AddError(fmt.Sprintf("bid amount %.2f exceeds the %s-level cap of %.2f",
			amount, asset.Level, assetValue*multiplier))
		return nil
	}
	if amount < assetValue*h.Config.RecommendedMinPctOfAssetValue/100 {
		result.AddWarning(fmt.Sprintf("bid amount %.2f is below %.0f%% of the asset's daily value; it is unlikely to win",
			amount, h.Config.RecommendedMinPctOfAssetValue))
	}

	return nil
}

// checkBidWar enforces the fair-bidding rule: within a rolling window a
// user may not raise their own bid on the same target by more than the
// configured increment.
func (h bidValidatorServiceHandler) checkBidWar(tx *sql.Tx, result *domain.ValidationResult, bid model.Bid) error {
	windowStart := time.Now().UTC().Add(-time.Duration(h.Config.BidWarWindowMinutes) * time.Minute)
	startDate := util.StartOfDay(bid.StartDate)
	recent, err := h.BidRepository.List(tx, repository.BidListFilter{
		UserAccountID: &bid.UserAccountID,
		AssetID:       &bid.AssetID,
		StartDate:     &startDate,
		UpdatedAtGte:  &windowStart,
	})
	if err != nil {
		return fmt.Errorf("failed to list recent bids: %w", err)
	}

	// a resubmission shares the persisted row's id; the row still holds
	// the prior amount because nothing is written until validation passes
	for _, prior := range recent {
		increment := bid.Amount.Sub(prior.Amount).InexactFloat64()
		if increment > h.Config.MaxBidIncrement {
			result.AddError(fmt.Sprintf("bid raises your prior bid by %.2f within %d minutes; the maximum increment is %.2f",
				increment, h.Config.BidWarWindowMinutes, h.Config.MaxBidIncrement))
			return nil
		}
	}

	return nil
}
