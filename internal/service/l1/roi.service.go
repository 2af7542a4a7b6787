package l1_service

import (
	"context"
	"fmt"
	"math"
	"time"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/domain"
	"fairslot/internal/logger"
	"fairslot/internal/repository"
	"fairslot/internal/util"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
)

// neutralRoi is substituted whenever historical data is missing or a
// baseline is zero. Degraded data never fails the scoring pipeline.
const neutralRoi = 1.0

// RoiService converts a LOB's class-specific success metric into a scalar
// comparable against raw revenue.
type RoiService interface {
	Normalize(ctx context.Context, lob string, assetID uuid.UUID, bidAmount float64) (float64, error)
	MaxBidMultiplier(lob string) (float64, error)
}

type roiServiceHandler struct {
	RoiMetricSpecRepository     repository.RoiMetricSpecRepository
	PerformanceMetricRepository repository.PerformanceMetricRepository
	Config                      domain.RoiConfig
}

func NewRoiService(
	roiMetricSpecRepository repository.RoiMetricSpecRepository,
	performanceMetricRepository repository.PerformanceMetricRepository,
	config domain.RoiConfig,
) RoiService {
	return roiServiceHandler{
		RoiMetricSpecRepository:     roiMetricSpecRepository,
		PerformanceMetricRepository: performanceMetricRepository,
		Config:                      config,
	}
}

func (h roiServiceHandler) Normalize(ctx context.Context, lob string, assetID uuid.UUID, bidAmount float64) (float64, error) {
	log := logger.FromContext(ctx)

	spec, err := h.RoiMetricSpecRepository.Get(lob)
	if err != nil {
		return 0, fmt.Errorf("failed to load roi spec for lob %s: %w", lob, err)
	}
	if spec == nil {
		log.Warnw("no roi metric spec for lob, using neutral roi", "lob", lob)
		return neutralRoi, nil
	}

	var out float64
	switch spec.MetricType {
	case model.MetricType_ImmediateRevenue:
		out, err = h.immediateRevenue(lob, assetID, h.Config.LookbackDays)
	case model.MetricType_Engagement:
		out, err = h.targetRelative(lob, assetID, model.MetricType_Engagement, spec, h.Config.EngagementCap)
	case model.MetricType_Conversion:
		out, err = h.targetRelative(lob, assetID, model.MetricType_Conversion, spec, h.Config.ConversionCap)
	case model.MetricType_DelayedRevenue:
		out, err = h.delayedRevenue(lob, assetID, spec)
	default:
		return 0, fmt.Errorf("unknown metric type %s for lob %s", spec.MetricType, lob)
	}
	if err != nil {
		// metrics lookup failures degrade to neutral rather than
		// aborting the whole scoring pass
		log.Warnw("metrics lookup failed, using neutral roi", "lob", lob, "asset", assetID, "error", err)
		return neutralRoi, nil
	}

	return math.Min(out, spec.MaxBidMultiplier), nil
}

func (h roiServiceHandler) MaxBidMultiplier(lob string) (float64, error) {
	spec, err := h.RoiMetricSpecRepository.Get(lob)
	if err != nil {
		return 0, fmt.Errorf("failed to load roi spec for lob %s: %w", lob, err)
	}
	if spec == nil {
		return neutralRoi, nil
	}
	return spec.MaxBidMultiplier, nil
}

// immediateRevenue compares the LOB's revenue on this asset against the
// asset's average daily revenue across all LOBs.
func (h roiServiceHandler) immediateRevenue(lob string, assetID uuid.UUID, lookbackDays int) (float64, error) {
	since := util.StartOfDay(time.Now().UTC()).AddDate(0, 0, -lookbackDays)
	metricType := model.MetricType_ImmediateRevenue

	lobRows, err := h.PerformanceMetricRepository.List(repository.PerformanceMetricListFilter{
		Lob:        &lob,
		AssetID:    &assetID,
		MetricType: &metricType,
		DateGte:    &since,
	})
	if err != nil {
		return 0, err
	}
	assetRows, err := h.PerformanceMetricRepository.List(repository.PerformanceMetricListFilter{
		AssetID:    &assetID,
		MetricType: &metricType,
		DateGte:    &since,
	})
	if err != nil {
		return 0, err
	}
	if len(lobRows) == 0 || len(assetRows) == 0 {
		return neutralRoi, nil
	}

	lobRevenue := sumValues(lobRows)
	avgDailyRevenue, err := stats.Mean(dailyTotals(assetRows))
	if err != nil || avgDailyRevenue == 0 {
		return neutralRoi, nil
	}

	efficiency := lobRevenue / (avgDailyRevenue * float64(lookbackDays))
	if efficiency < h.Config.RevenueFloor {
		return efficiency / h.Config.RevenueFloor, nil
	}

	return math.Min(efficiency, h.Config.ImmediateRevenueCap), nil
}

// targetRelative handles engagement and conversion metrics: actuals over
// the LOB's target, scaled by the normalization factor that expresses how
// many units of the metric are worth one revenue unit.
func (h roiServiceHandler) targetRelative(lob string, assetID uuid.UUID, metricType model.MetricType, spec *model.RoiMetricSpec, capValue float64) (float64, error) {
	since := util.StartOfDay(time.Now().UTC()).AddDate(0, 0, -h.Config.LookbackDays)

	rows, err := h.PerformanceMetricRepository.List(repository.PerformanceMetricListFilter{
		Lob:        &lob,
		AssetID:    &assetID,
		MetricType: &metricType,
		DateGte:    &since,
	})
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 || spec.TargetPerWindow == 0 {
		return neutralRoi, nil
	}

	rate := sumValues(rows) / spec.TargetPerWindow
	return math.Min(rate*spec.NormalizationFactor, capValue), nil
}

// delayedRevenue mirrors immediateRevenue over a shorter lookback, scaled
// down so core-business LOBs rank slightly below raw monetization revenue.
func (h roiServiceHandler) delayedRevenue(lob string, assetID uuid.UUID, spec *model.RoiMetricSpec) (float64, error) {
	lookback := h.Config.DelayedLookbackDays
	if spec.ConversionWindowDays > 0 {
		lookback = int(spec.ConversionWindowDays)
	}
	since := util.StartOfDay(time.Now().UTC()).AddDate(0, 0, -lookback)
	metricType := model.MetricType_DelayedRevenue

	lobRows, err := h.PerformanceMetricRepository.List(repository.PerformanceMetricListFilter{
		Lob:        &lob,
		AssetID:    &assetID,
		MetricType: &metricType,
		DateGte:    &since,
	})
	if err != nil {
		return 0, err
	}
	assetRows, err := h.PerformanceMetricRepository.List(repository.PerformanceMetricListFilter{
		AssetID:    &assetID,
		MetricType: &metricType,
		DateGte:    &since,
	})
	if err != nil {
		return 0, err
	}
	if len(lobRows) == 0 || len(assetRows) == 0 {
		return neutralRoi, nil
	}

	lobRevenue := sumValues(lobRows)
	avgDailyRevenue, err := stats.Mean(dailyTotals(assetRows))
	if err != nil || avgDailyRevenue == 0 {
		return neutralRoi, nil
	}

	efficiency := lobRevenue / (avgDailyRevenue * float64(lookback))
	return math.Min(efficiency*spec.NormalizationFactor, h.Config.DelayedRevenueCap), nil
}

func sumValues(rows []model.PerformanceMetric) float64 {
	total := 0.0
	for _, r := range rows {
		total += r.Value
	}
	return total
}

func dailyTotals(rows []model.PerformanceMetric) []float64 {
	byDay := map[time.Time]float64{}
	for _, r := range rows {
		byDay[r.Date] += r.Value
	}
	out := make([]float64, 0, len(byDay))
	for _, v := range byDay {
		out = append(out, v)
	}
	return out
}
