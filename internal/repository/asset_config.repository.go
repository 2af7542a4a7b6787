package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// AssetConfigRepository reads per-asset override rows. A missing row is
// (nil, nil) - callers fall back to asset-level defaults.
type AssetConfigRepository interface {
	Get(assetID uuid.UUID) (*model.AssetConfig, error)
}

type assetConfigRepositoryHandler struct {
	Db *sql.DB
}

func NewAssetConfigRepository(db *sql.DB) AssetConfigRepository {
	return assetConfigRepositoryHandler{Db: db}
}

func (h assetConfigRepositoryHandler) Get(assetID uuid.UUID) (*model.AssetConfig, error) {
	query := table.AssetConfig.
		SELECT(table.AssetConfig.AllColumns).
		WHERE(table.AssetConfig.AssetID.EQ(postgres.UUID(assetID)))

	result := model.AssetConfig{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get asset config: %w", err)
	}

	return &result, nil
}
