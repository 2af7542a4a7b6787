package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/db/models/postgres/public/table"
	"fairslot/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type AuctionRepository interface {
	Add(tx *sql.Tx, a model.Auction) (*model.Auction, error)
	Update(tx *sql.Tx, auctionID uuid.UUID, a model.Auction, columns postgres.ColumnList) (*model.Auction, error)
	Get(id uuid.UUID) (*model.Auction, error)
	GetByTarget(tx *sql.Tx, assetID uuid.UUID, date time.Time) (*model.Auction, error)
	ListExpired(now time.Time) ([]model.Auction, error)
}

type auctionRepositoryHandler struct {
	Db *sql.DB
}

func NewAuctionRepository(db *sql.DB) AuctionRepository {
	return auctionRepositoryHandler{Db: db}
}

func (h auctionRepositoryHandler) Add(tx *sql.Tx, a model.Auction) (*model.Auction, error) {
	a.CreatedAt = time.Now().UTC()
	query := table.Auction.
		INSERT(table.Auction.MutableColumns).
		MODEL(a).
		RETURNING(table.Auction.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Auction{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert auction: %w", err)
	}

	return &out, nil
}

func (h auctionRepositoryHandler) Update(tx *sql.Tx, auctionID uuid.UUID, a model.Auction, columns postgres.ColumnList) (*model.Auction, error) {
	query := table.Auction.
		UPDATE(columns).
		WHERE(table.Auction.AuctionID.EQ(postgres.UUID(auctionID))).
		MODEL(a).
		RETURNING(table.Auction.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Auction{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update auction %s: %w", auctionID, err)
	}

	return &out, nil
}

func (h auctionRepositoryHandler) Get(id uuid.UUID) (*model.Auction, error) {
	query := table.Auction.
		SELECT(table.Auction.AllColumns).
		WHERE(table.Auction.AuctionID.EQ(postgres.UUID(id)))

	result := model.Auction{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("auction %s: %w", id, domain.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get auction: %w", err)
	}

	return &result, nil
}

func (h auctionRepositoryHandler) GetByTarget(tx *sql.Tx, assetID uuid.UUID, date time.Time) (*model.Auction, error) {
	query := table.Auction.
		SELECT(table.Auction.AllColumns).
		WHERE(postgres.AND(
			table.Auction.AssetID.EQ(postgres.UUID(assetID)),
			table.Auction.Date.EQ(postgres.DateT(date)),
		))

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := model.Auction{}
	err := query.Query(db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get auction by target: %w", err)
	}

	return &result, nil
}

func (h auctionRepositoryHandler) ListExpired(now time.Time) ([]model.Auction, error) {
	query := table.Auction.
		SELECT(table.Auction.AllColumns).
		WHERE(postgres.AND(
			table.Auction.Status.EQ(postgres.String(model.AuctionStatus_Active.String())),
			table.Auction.ClosesAt.LT_EQ(postgres.TimestampT(now)),
		)).
		ORDER_BY(table.Auction.ClosesAt.ASC())

	result := []model.Auction{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired auctions: %w", err)
	}

	return result, nil
}
