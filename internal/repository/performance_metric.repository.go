package repository

import (
	"database/sql"
	"fmt"
	"time"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// PerformanceMetricRepository is the historical-metrics port. Missing data
// is an empty result, never an error - the ROI normalizer falls back to a
// neutral factor.
type PerformanceMetricRepository interface {
	List(filter PerformanceMetricListFilter) ([]model.PerformanceMetric, error)
	AddMany(tx *sql.Tx, in []*model.PerformanceMetric) error
}

type performanceMetricRepositoryHandler struct {
	Db *sql.DB
}

func NewPerformanceMetricRepository(db *sql.DB) PerformanceMetricRepository {
	return performanceMetricRepositoryHandler{Db: db}
}

type PerformanceMetricListFilter struct {
	Lob        *string
	AssetID    *uuid.UUID
	MetricType *model.MetricType
	DateGte    *time.Time
}

func (h performanceMetricRepositoryHandler) List(filter PerformanceMetricListFilter) ([]model.PerformanceMetric, error) {
	conditions := []postgres.BoolExpression{}
	if filter.Lob != nil {
		conditions = append(conditions, table.PerformanceMetric.Lob.EQ(postgres.String(*filter.Lob)))
	}
	if filter.AssetID != nil {
		conditions = append(conditions, table.PerformanceMetric.AssetID.EQ(postgres.UUID(*filter.AssetID)))
	}
	if filter.MetricType != nil {
		conditions = append(conditions, table.PerformanceMetric.MetricType.EQ(postgres.String(filter.MetricType.String())))
	}
	if filter.DateGte != nil {
		conditions = append(conditions, table.PerformanceMetric.Date.GT_EQ(postgres.DateT(*filter.DateGte)))
	}
	if len(conditions) == 0 {
		return nil, fmt.Errorf("invalid PerformanceMetricListFilter: no conditions")
	}

	query := table.PerformanceMetric.
		SELECT(table.PerformanceMetric.AllColumns).
		WHERE(postgres.AND(conditions...)).
		ORDER_BY(table.PerformanceMetric.Date.ASC())

	result := []model.PerformanceMetric{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance metrics: %w", err)
	}

	return result, nil
}

func (h performanceMetricRepositoryHandler) AddMany(tx *sql.Tx, in []*model.PerformanceMetric) error {
	if len(in) == 0 {
		return nil
	}

	for _, x := range in {
		x.CreatedAt = time.Now().UTC()
	}
	query := table.PerformanceMetric.
		INSERT(table.PerformanceMetric.MutableColumns).
		MODELS(in)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert performance metrics: %w", err)
	}

	return nil
}
