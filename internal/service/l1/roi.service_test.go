package l1_service

import (
	"context"
	"testing"
	"time"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/domain"
	mock_repository "fairslot/internal/repository/mocks"
	"fairslot/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Normalize(t *testing.T) {
	ctx := context.Background()
	assetID := uuid.New()
	roiConfig := domain.DefaultEngineConfig().Roi

	t.Run("no metric spec falls back to neutral roi", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		specRepository := mock_repository.NewMockRoiMetricSpecRepository(ctrl)
		metricRepository := mock_repository.NewMockPerformanceMetricRepository(ctrl)

		handler := roiServiceHandler{
			RoiMetricSpecRepository:     specRepository,
			PerformanceMetricRepository: metricRepository,
			Config:                      roiConfig,
		}

		specRepository.EXPECT().Get("wellness").Return(nil, nil)

		out, err := handler.Normalize(ctx, "wellness", assetID, 5000)
		require.NoError(t, err)
		require.Equal(t, 1.0, out)
	})

	t.Run("no historical metrics falls back to neutral roi", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		specRepository := mock_repository.NewMockRoiMetricSpecRepository(ctrl)
		metricRepository := mock_repository.NewMockPerformanceMetricRepository(ctrl)

		handler := roiServiceHandler{
			RoiMetricSpecRepository:     specRepository,
			PerformanceMetricRepository: metricRepository,
			Config:                      roiConfig,
		}

		specRepository.EXPECT().Get("pharmacy").Return(&model.RoiMetricSpec{
			Lob:              "pharmacy",
			MetricType:       model.MetricType_ImmediateRevenue,
			MaxBidMultiplier: 2.0,
		}, nil)
		metricRepository.EXPECT().List(gomock.Any()).Return([]model.PerformanceMetric{}, nil).Times(2)

		out, err := handler.Normalize(ctx, "pharmacy", assetID, 5000)
		require.NoError(t, err)
		require.Equal(t, 1.0, out)
	})

	t.Run("engagement rate scales by normalization factor and caps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		specRepository := mock_repository.NewMockRoiMetricSpecRepository(ctrl)
		metricRepository := mock_repository.NewMockPerformanceMetricRepository(ctrl)

		handler := roiServiceHandler{
			RoiMetricSpecRepository:     specRepository,
			PerformanceMetricRepository: metricRepository,
			Config:                      roiConfig,
		}

		specRepository.EXPECT().Get("wellness").Return(&model.RoiMetricSpec{
			Lob:                 "wellness",
			MetricType:          model.MetricType_Engagement,
			NormalizationFactor: 0.9,
			TargetPerWindow:     1000,
			MaxBidMultiplier:    1.5,
		}, nil)
		metricRepository.EXPECT().List(gomock.Any()).Return([]model.PerformanceMetric{
			{Lob: "wellness", AssetID: assetID, MetricType: model.MetricType_Engagement, Value: 600, Date: util.NewDate(2026, 8, 20)},
			{Lob: "wellness", AssetID: assetID, MetricType: model.MetricType_Engagement, Value: 400, Date: util.NewDate(2026, 8, 21)},
		}, nil)

		out, err := handler.Normalize(ctx, "wellness", assetID, 5000)
		require.NoError(t, err)
		// 1000/1000 * 0.9
		require.InDelta(t, 0.9, out, 1e-9)
	})

	t.Run("engagement rate above cap is clamped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		specRepository := mock_repository.NewMockRoiMetricSpecRepository(ctrl)
		metricRepository := mock_repository.NewMockPerformanceMetricRepository(ctrl)

		handler := roiServiceHandler{
			RoiMetricSpecRepository:     specRepository,
			PerformanceMetricRepository: metricRepository,
			Config:                      roiConfig,
		}

		specRepository.EXPECT().Get("wellness").Return(&model.RoiMetricSpec{
			Lob:                 "wellness",
			MetricType:          model.MetricType_Engagement,
			NormalizationFactor: 1.0,
			TargetPerWindow:     100,
			MaxBidMultiplier:    1.5,
		}, nil)
		metricRepository.EXPECT().List(gomock.Any()).Return([]model.PerformanceMetric{
			{Value: 5000, Date: util.NewDate(2026, 8, 20)},
		}, nil)

		out, err := handler.Normalize(ctx, "wellness", assetID, 5000)
		require.NoError(t, err)
		require.Equal(t, roiConfig.EngagementCap, out)
	})

	t.Run("revenue below floor takes proportional penalty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		specRepository := mock_repository.NewMockRoiMetricSpecRepository(ctrl)
		metricRepository := mock_repository.NewMockPerformanceMetricRepository(ctrl)

		handler := roiServiceHandler{
			RoiMetricSpecRepository:     specRepository,
			PerformanceMetricRepository: metricRepository,
			Config:                      roiConfig,
		}

		specRepository.EXPECT().Get("monetization").Return(&model.RoiMetricSpec{
			Lob:              "monetization",
			MetricType:       model.MetricType_ImmediateRevenue,
			MaxBidMultiplier: 2.0,
		}, nil)

		// lob earned 300 over 30 days; asset averages 100/day, so the
		// efficiency 300/(100*30)=0.1 is under the 1.5 floor
		lobRows := []model.PerformanceMetric{
			{Lob: "monetization", Value: 300, Date: util.NewDate(2026, 8, 1)},
		}
		assetRows := []model.PerformanceMetric{}
		for day := 1; day <= 30; day++ {
			assetRows = append(assetRows, model.PerformanceMetric{
				Value: 100,
				Date:  time.Date(2026, 7, day, 0, 0, 0, 0, time.UTC),
			})
		}
		gomock.InOrder(
			metricRepository.EXPECT().List(gomock.Any()).Return(lobRows, nil),
			metricRepository.EXPECT().List(gomock.Any()).Return(assetRows, nil),
		)

		out, err := handler.Normalize(ctx, "monetization", assetID, 5000)
		require.NoError(t, err)
		require.InDelta(t, 0.1/1.5, out, 1e-9)
	})

	t.Run("metric lookup failure degrades to neutral", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		specRepository := mock_repository.NewMockRoiMetricSpecRepository(ctrl)
		metricRepository := mock_repository.NewMockPerformanceMetricRepository(ctrl)

		handler := roiServiceHandler{
			RoiMetricSpecRepository:     specRepository,
			PerformanceMetricRepository: metricRepository,
			Config:                      roiConfig,
		}

		specRepository.EXPECT().Get("diagnostics").Return(&model.RoiMetricSpec{
			Lob:              "diagnostics",
			MetricType:       model.MetricType_Conversion,
			MaxBidMultiplier: 1.8,
		}, nil)
		metricRepository.EXPECT().List(gomock.Any()).Return(nil, context.DeadlineExceeded)

		out, err := handler.Normalize(ctx, "diagnostics", assetID, 5000)
		require.NoError(t, err)
		require.Equal(t, 1.0, out)
	})
}

func Test_MaxBidMultiplier(t *testing.T) {
	t.Run("returns spec multiplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		specRepository := mock_repository.NewMockRoiMetricSpecRepository(ctrl)

		handler := roiServiceHandler{RoiMetricSpecRepository: specRepository}

		specRepository.EXPECT().Get("pharmacy").Return(&model.RoiMetricSpec{
			Lob:              "pharmacy",
			MaxBidMultiplier: 2.0,
		}, nil)

		out, err := handler.MaxBidMultiplier("pharmacy")
		require.NoError(t, err)
		require.Equal(t, 2.0, out)
	})

	t.Run("missing spec returns neutral", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		specRepository := mock_repository.NewMockRoiMetricSpecRepository(ctrl)

		handler := roiServiceHandler{RoiMetricSpecRepository: specRepository}

		specRepository.EXPECT().Get("unknown").Return(nil, nil)

		out, err := handler.MaxBidMultiplier("unknown")
		require.NoError(t, err)
		require.Equal(t, 1.0, out)
	})
}
