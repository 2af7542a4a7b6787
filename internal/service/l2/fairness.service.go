package l2_service

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/domain"
	"fairslot/internal/logger"
	"fairslot/internal/repository"
	l1_service "fairslot/internal/service/l1"
	"fairslot/internal/util"

	"github.com/google/uuid"
	"github.com/maja42/goval"
)

// FairnessService combines asset value, booking recency, strategic
// priority, normalized ROI, bid amount and booking history into the single
// scalar used to rank competing bids.
type FairnessService interface {
	// Compute calculates the score without persisting it.
	Compute(ctx context.Context, tx *sql.Tx, bid model.Bid, asset model.Asset) (*model.FairnessScore, error)
	// Score computes and upserts the pending score row for audit.
	Score(ctx context.Context, tx *sql.Tx, bid model.Bid, asset model.Asset) (*model.FairnessScore, error)
}

type fairnessServiceHandler struct {
	RoiService               l1_service.RoiService
	AssetConfigService       l1_service.AssetConfigService
	BidRepository            repository.BidRepository
	SlotAllocationRepository repository.SlotAllocationRepository
	BidCapRepository         repository.BidCapRepository
	FairnessScoreRepository  repository.FairnessScoreRepository
	Config                   domain.FairnessConfig
}

func NewFairnessService(
	roiService l1_service.RoiService,
	assetConfigService l1_service.AssetConfigService,
	bidRepository repository.BidRepository,
	slotAllocationRepository repository.SlotAllocationRepository,
	bidCapRepository repository.BidCapRepository,
	fairnessScoreRepository repository.FairnessScoreRepository,
	config domain.FairnessConfig,
) FairnessService {
	return fairnessServiceHandler{
		RoiService:               roiService,
		AssetConfigService:       assetConfigService,
		BidRepository:            bidRepository,
		SlotAllocationRepository: slotAllocationRepository,
		BidCapRepository:         bidCapRepository,
		FairnessScoreRepository:  fairnessScoreRepository,
		Config:                   config,
	}
}

func (h fairnessServiceHandler) Compute(ctx context.Context, tx *sql.Tx, bid model.Bid, asset model.Asset) (*model.FairnessScore, error) {
	cfg, err := h.AssetConfigService.Resolve(asset.AssetID, asset.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve asset config: %w", err)
	}

	baseScore := asset.Importance * asset.ValuePerDay.InexactFloat64()
	if bid.BidderClass == model.BidderClass_Monetization {
		baseScore *= h.Config.MonetizationBaseMultiplier
	}

	lastBooking, err := h.lastBookingByLob(tx, bid.Lob, asset.AssetID)
	if err != nil {
		return nil, err
	}
	timeFairness := timeFairnessFactor(h.Config, lastBooking, time.Now().UTC())

	strategicWeight := 1.0
	if w, ok := h.Config.StrategicWeights[bid.Lob]; ok {
		strategicWeight = w
	}

	normalizedRoi, err := h.RoiService.Normalize(ctx, bid.Lob, asset.AssetID, bid.Amount.InexactFloat64())
	if err != nil {
		return nil, err
	}

	maxMultiplier, err := h.RoiService.MaxBidMultiplier(bid.Lob)
	if err != nil {
		return nil, err
	}
	cappedBidAmount := cappedBidAmountFactor(bid.Amount.InexactFloat64(), maxMultiplier)

	daysBooked, err := h.recentDaysBookedByLob(tx, bid.Lob, asset.AssetID)
	if err != nil {
		return nil, err
	}
	bookingHistory := bookingHistoryFactor(h.Config, daysBooked)

	slotAvailability, err := h.slotAvailabilityFactor(tx, bid, asset, cfg)
	if err != nil {
		return nil, err
	}

	restriction, err := h.timeRestriction(bid.Lob, asset.Level)
	if err != nil {
		return nil, err
	}
	timeRestrictionF := timeRestrictionFactor(h.Config, restriction, bid.CreatedAt)

	finalScore := baseScore *
		timeFairness *
		strategicWeight *
		normalizedRoi *
		cappedBidAmount *
		bookingHistory *
		slotAvailability *
		timeRestrictionF

	if cfg.FairnessExpression != nil {
		finalScore = h.applyAdjustment(ctx, *cfg.FairnessExpression, finalScore, map[string]interface{}{
			"score":           finalScore,
			"baseScore":       baseScore,
			"timeFairness":    timeFairness,
			"strategicWeight": strategicWeight,
			"normalizedRoi":   normalizedRoi,
			"bidAmount":       bid.Amount.InexactFloat64(),
		})
	}

	return &model.FairnessScore{
		BidID:                  bid.BidID,
		AssetID:                asset.AssetID,
		BaseScore:              baseScore,
		TimeFairness:           timeFairness,
		StrategicWeight:        strategicWeight,
		NormalizedRoi:          normalizedRoi,
		CappedBidAmount:        cappedBidAmount,
		BookingHistoryFactor:   bookingHistory,
		SlotAvailabilityFactor: slotAvailability,
		TimeRestrictionFactor:  timeRestrictionF,
		FinalScore:             finalScore,
		Result:                 model.AllocationResult_Pending,
	}, nil
}

func (h fairnessServiceHandler) Score(ctx context.Context, tx *sql.Tx, bid model.Bid, asset model.Asset) (*model.FairnessScore, error) {
	score, err := h.Compute(ctx, tx, bid, asset)
	if err != nil {
		return nil, err
	}

	return h.FairnessScoreRepository.Upsert(tx, *score)
}

// timeFairnessFactor boosts LOBs that have not booked this asset recently.
// An LOB with no booking history at all gets a high fixed priority.
func timeFairnessFactor(cfg domain.FairnessConfig, lastBooking *time.Time, now time.Time) float64 {
	if lastBooking == nil {
		return cfg.TimeFairnessNoHistory
	}
	days := util.DaysBetween(*lastBooking, now)
	if days < 0 {
		days = 0
	}
	return math.Min(1+float64(days)*cfg.TimeFairnessDecay, cfg.TimeFairnessCap)
}

// cappedBidAmountFactor scales the raw amount down for LOBs whose metric
// spec allows a high nominal multiplier, so metric-inflated bids cannot
// dominate on amount alone.
func cappedBidAmountFactor(amount, maxBidMultiplier float64) float64 {
	if maxBidMultiplier <= 1 {
		return amount
	}
	return amount / maxBidMultiplier
}

// bookingHistoryFactor penalizes LOBs that recently over-booked the asset
// and rewards ones with no recent bookings at all.
func bookingHistoryFactor(cfg domain.FairnessConfig, daysBooked int) float64 {
	if daysBooked == 0 {
		return cfg.BookingHistoryBonus
	}
	window := float64(cfg.BookingHistoryWindowDays)
	return 1 - math.Min(float64(daysBooked)/window, cfg.BookingHistoryMaxPenalty)
}

// timeRestrictionFactor applies the business-hours rule: restricted classes
// submitting outside 09:00-18:00 are penalized but never zeroed.
func timeRestrictionFactor(cfg domain.FairnessConfig, restriction model.TimeRestriction, submittedAt time.Time) float64 {
	if restriction != model.TimeRestriction_BusinessHours {
		return 1.0
	}
	hour := submittedAt.UTC().Hour()
	if hour >= cfg.BusinessHoursStart && hour < cfg.BusinessHoursEnd {
		return 1.0
	}
	return cfg.TimeRestrictionViolation
}

func (h fairnessServiceHandler) slotAvailabilityFactor(tx *sql.Tx, bid model.Bid, asset model.Asset, cfg domain.ResolvedAssetConfig) (float64, error) {
	switch bid.BidderClass {
	case model.BidderClass_Internal:
		return h.Config.InternalAvailabilityBonus, nil
	case model.BidderClass_Monetization:
		quota := cfg.MonetizationQuota(asset.TotalSlots)
		allocated := 0
		sa, err := h.SlotAllocationRepository.Get(tx, asset.AssetID, util.StartOfDay(bid.StartDate))
		if err != nil {
			return 0, err
		}
		if sa != nil {
			allocated = int(sa.MonetizationAllocated)
		}
		if allocated < quota {
			return 1.0, nil
		}
		return h.Config.MonetizationOverQuotaPenalty, nil
	default:
		return h.Config.ExternalAvailabilityFactor, nil
	}
}

func (h fairnessServiceHandler) timeRestriction(lob string, level model.AssetLevel) (model.TimeRestriction, error) {
	capRow, err := h.BidCapRepository.Get(lob, level)
	if err != nil {
		return "", err
	}
	if capRow == nil {
		return model.TimeRestriction_AnyTime, nil
	}
	return capRow.TimeRestriction, nil
}

func (h fairnessServiceHandler) lastBookingByLob(tx *sql.Tx, lob string, assetID uuid.UUID) (*time.Time, error) {
	won := model.BidStatus_Won
	bids, err := h.BidRepository.List(tx, repository.BidListFilter{
		Lob:     &lob,
		AssetID: &assetID,
		Status:  &won,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list won bids for lob %s: %w", lob, err)
	}
	if len(bids) == 0 {
		return nil, nil
	}

	latest := bids[0].StartDate
	for _, b := range bids[1:] {
		if b.StartDate.After(latest) {
			latest = b.StartDate
		}
	}
	return &latest, nil
}

// recentDaysBookedByLob counts booked days by this LOB on this asset inside
// the booking-history window.
func (h fairnessServiceHandler) recentDaysBookedByLob(tx *sql.Tx, lob string, assetID uuid.UUID) (int, error) {
	windowStart := util.StartOfDay(time.Now().UTC()).AddDate(0, 0, -h.Config.BookingHistoryWindowDays)
	won := model.BidStatus_Won
	bids, err := h.BidRepository.List(tx, repository.BidListFilter{
		Lob:          &lob,
		AssetID:      &assetID,
		Status:       &won,
		StartDateGte: &windowStart,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list recent bookings for lob %s: %w", lob, err)
	}

	days := 0
	for _, b := range bids {
		days += util.DaysBetween(b.StartDate, b.EndDate) + 1
	}
	return days, nil
}

// applyAdjustment evaluates the per-asset goval expression and clamps its
// effect so a misconfigured expression cannot swing scores arbitrarily.
func (h fairnessServiceHandler) applyAdjustment(ctx context.Context, expression string, score float64, vars map[string]interface{}) float64 {
	log := logger.FromContext(ctx)

	eval := goval.NewEvaluator()
	result, err := eval.Evaluate(expression, vars, nil)
	if err != nil {
		log.Warnw("fairness adjustment expression failed, keeping raw score", "error", err)
		return score
	}

	adjusted, ok := toFloat(result)
	if !ok || score <= 0 {
		return score
	}

	ratio := adjusted / score
	ratio = math.Max(h.Config.AdjustmentMin, math.Min(ratio, h.Config.AdjustmentMax))
	return score * ratio
}

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}
