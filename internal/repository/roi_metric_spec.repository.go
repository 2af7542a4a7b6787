package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// RoiMetricSpecRepository reads the static per-LOB metric configuration.
// A missing row is (nil, nil) - the normalizer treats the LOB as neutral.
type RoiMetricSpecRepository interface {
	Get(lob string) (*model.RoiMetricSpec, error)
}

type roiMetricSpecRepositoryHandler struct {
	Db *sql.DB
}

func NewRoiMetricSpecRepository(db *sql.DB) RoiMetricSpecRepository {
	return roiMetricSpecRepositoryHandler{Db: db}
}

func (h roiMetricSpecRepositoryHandler) Get(lob string) (*model.RoiMetricSpec, error) {
	query := table.RoiMetricSpec.
		SELECT(table.RoiMetricSpec.AllColumns).
		WHERE(table.RoiMetricSpec.Lob.EQ(postgres.String(lob)))

	result := model.RoiMetricSpec{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get roi metric spec: %w", err)
	}

	return &result, nil
}
