package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/db/models/postgres/public/table"
	"fairslot/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type AssetRepository interface {
	Get(id uuid.UUID) (*model.Asset, error)
	List(filter AssetListFilter) ([]model.Asset, error)
}

type assetRepositoryHandler struct {
	Db *sql.DB
}

func NewAssetRepository(db *sql.DB) AssetRepository {
	return assetRepositoryHandler{Db: db}
}

func (h assetRepositoryHandler) Get(id uuid.UUID) (*model.Asset, error) {
	query := table.Asset.
		SELECT(table.Asset.AllColumns).
		WHERE(table.Asset.AssetID.EQ(postgres.UUID(id)))

	result := model.Asset{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("asset %s: %w", id, domain.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return &result, nil
}

type AssetListFilter struct {
	Level *model.AssetLevel
}

func (h assetRepositoryHandler) List(filter AssetListFilter) ([]model.Asset, error) {
	query := table.Asset.SELECT(table.Asset.AllColumns)
	if filter.Level != nil {
		query = query.WHERE(table.Asset.Level.EQ(postgres.String(filter.Level.String())))
	}

	result := []model.Asset{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	return result, nil
}
