package internal

import (
	"fmt"
	"os"
	"time"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/repository"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

type performanceMetricCsvRow struct {
	Lob        string  `csv:"lob"`
	AssetID    string  `csv:"asset_id"`
	MetricType string  `csv:"metric_type"`
	Value      float64 `csv:"value"`
	Date       string  `csv:"date"`
}

// IngestPerformanceMetrics loads a daily metrics export into the
// performance_metric table. Rows that fail to parse abort the whole file so
// a partial export never skews the ROI baselines.
func IngestPerformanceMetrics(
	filePath string,
	pmRepository repository.PerformanceMetricRepository,
) (int, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to open metrics file: %w", err)
	}
	defer f.Close()

	rows := []performanceMetricCsvRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return 0, fmt.Errorf("failed to parse metrics file: %w", err)
	}

	models := make([]*model.PerformanceMetric, 0, len(rows))
	for i, row := range rows {
		m, err := row.toModel()
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}
		models = append(models, m)
	}

	if err := pmRepository.AddMany(nil, models); err != nil {
		return 0, err
	}

	return len(models), nil
}

func (r performanceMetricCsvRow) toModel() (*model.PerformanceMetric, error) {
	assetID, err := uuid.Parse(r.AssetID)
	if err != nil {
		return nil, fmt.Errorf("invalid asset id %q: %w", r.AssetID, err)
	}

	var metricType model.MetricType
	if err := metricType.Scan(r.MetricType); err != nil {
		return nil, fmt.Errorf("invalid metric type %q: %w", r.MetricType, err)
	}

	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}

	if r.Value < 0 {
		return nil, fmt.Errorf("negative metric value %f", r.Value)
	}

	return &model.PerformanceMetric{
		Lob:        r.Lob,
		AssetID:    assetID,
		MetricType: metricType,
		Value:      r.Value,
		Date:       date,
	}, nil
}
