package internal

import (
	"os"
	"path/filepath"
	"testing"

	"fairslot/internal/db/models/postgres/public/model"
	mock_repository "fairslot/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_IngestPerformanceMetrics(t *testing.T) {
	assetID := uuid.New()

	writeCsv := func(t *testing.T, contents string) string {
		path := filepath.Join(t.TempDir(), "metrics.csv")
		require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
		return path
	}

	t.Run("parses and inserts every row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pmRepository := mock_repository.NewMockPerformanceMetricRepository(ctrl)

		path := writeCsv(t,
			"lob,asset_id,metric_type,value,date\n"+
				"pharmacy,"+assetID.String()+",immediate_revenue,1250.5,2026-08-20\n"+
				"wellness,"+assetID.String()+",engagement,300,2026-08-21\n")

		var inserted []*model.PerformanceMetric
		pmRepository.EXPECT().AddMany(nil, gomock.Any()).DoAndReturn(
			func(tx interface{}, in []*model.PerformanceMetric) error {
				inserted = in
				return nil
			})

		n, err := IngestPerformanceMetrics(path, pmRepository)
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Len(t, inserted, 2)
		require.Equal(t, "pharmacy", inserted[0].Lob)
		require.Equal(t, model.MetricType_ImmediateRevenue, inserted[0].MetricType)
		require.Equal(t, 1250.5, inserted[0].Value)
		require.Equal(t, model.MetricType_Engagement, inserted[1].MetricType)
	})

	t.Run("bad metric type aborts the file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pmRepository := mock_repository.NewMockPerformanceMetricRepository(ctrl)

		path := writeCsv(t,
			"lob,asset_id,metric_type,value,date\n"+
				"pharmacy,"+assetID.String()+",revenue_per_click,100,2026-08-20\n")

		_, err := IngestPerformanceMetrics(path, pmRepository)
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid metric type")
	})

	t.Run("negative value aborts the file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pmRepository := mock_repository.NewMockPerformanceMetricRepository(ctrl)

		path := writeCsv(t,
			"lob,asset_id,metric_type,value,date\n"+
				"pharmacy,"+assetID.String()+",engagement,-5,2026-08-20\n")

		_, err := IngestPerformanceMetrics(path, pmRepository)
		require.Error(t, err)
	})

	t.Run("missing file errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pmRepository := mock_repository.NewMockPerformanceMetricRepository(ctrl)

		_, err := IngestPerformanceMetrics("/does/not/exist.csv", pmRepository)
		require.Error(t, err)
	})
}
