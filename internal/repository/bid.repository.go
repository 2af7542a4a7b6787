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

type BidRepository interface {
	Add(tx *sql.Tx, b model.Bid) (*model.Bid, error)
	Update(tx *sql.Tx, bidID uuid.UUID, b model.Bid, columns postgres.ColumnList) (*model.Bid, error)
	Get(id uuid.UUID) (*model.Bid, error)
	List(tx *sql.Tx, filter BidListFilter) ([]model.Bid, error)
}

type bidRepositoryHandler struct {
	Db *sql.DB
}

func NewBidRepository(db *sql.DB) BidRepository {
	return bidRepositoryHandler{Db: db}
}

func (h bidRepositoryHandler) Add(tx *sql.Tx, b model.Bid) (*model.Bid, error) {
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = time.Now().UTC()
	query := table.Bid.
		INSERT(table.Bid.MutableColumns).
		MODEL(b).
		RETURNING(table.Bid.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Bid{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert bid: %w", err)
	}

	return &out, nil
}

// Update mutates only the given columns. CreatedAt is deliberately never
// touched - resubmitted bids keep their original timestamp so first-come
// tie-breaks hold.
func (h bidRepositoryHandler) Update(tx *sql.Tx, bidID uuid.UUID, b model.Bid, columns postgres.ColumnList) (*model.Bid, error) {
	b.UpdatedAt = time.Now().UTC()
	columns = append(columns, table.Bid.UpdatedAt)
	query := table.Bid.
		UPDATE(columns).
		WHERE(table.Bid.BidID.EQ(postgres.UUID(bidID))).
		MODEL(b).
		RETURNING(table.Bid.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Bid{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update bid %s: %w", bidID, err)
	}

	return &out, nil
}

func (h bidRepositoryHandler) Get(id uuid.UUID) (*model.Bid, error) {
	query := table.Bid.
		SELECT(table.Bid.AllColumns).
		WHERE(table.Bid.BidID.EQ(postgres.UUID(id)))

	result := model.Bid{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("bid %s: %w", id, domain.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get bid: %w", err)
	}

	return &result, nil
}

type BidListFilter struct {
	AssetID       *uuid.UUID
	UserAccountID *uuid.UUID
	Lob           *string
	Status        *model.BidStatus
	StartDate     *time.Time
	StartDateGte  *time.Time
	CreatedAtGte  *time.Time
	UpdatedAtGte  *time.Time
}

func (h bidRepositoryHandler) List(tx *sql.Tx, filter BidListFilter) ([]model.Bid, error) {
	conditions := []postgres.BoolExpression{}
	if filter.AssetID != nil {
		conditions = append(conditions, table.Bid.AssetID.EQ(postgres.UUID(*filter.AssetID)))
	}
	if filter.UserAccountID != nil {
		conditions = append(conditions, table.Bid.UserAccountID.EQ(postgres.UUID(*filter.UserAccountID)))
	}
	if filter.Lob != nil {
		conditions = append(conditions, table.Bid.Lob.EQ(postgres.String(*filter.Lob)))
	}
	if filter.Status != nil {
		conditions = append(conditions, table.Bid.Status.EQ(postgres.String(filter.Status.String())))
	}
	if filter.StartDate != nil {
		conditions = append(conditions, table.Bid.StartDate.EQ(postgres.DateT(*filter.StartDate)))
	}
	if filter.StartDateGte != nil {
		conditions = append(conditions, table.Bid.StartDate.GT_EQ(postgres.DateT(*filter.StartDateGte)))
	}
	if filter.CreatedAtGte != nil {
		conditions = append(conditions, table.Bid.CreatedAt.GT_EQ(postgres.TimestampT(*filter.CreatedAtGte)))
	}
	if filter.UpdatedAtGte != nil {
		conditions = append(conditions, table.Bid.UpdatedAt.GT_EQ(postgres.TimestampT(*filter.UpdatedAtGte)))
	}
	if len(conditions) == 0 {
		return nil, fmt.Errorf("invalid BidListFilter: no conditions")
	}

	query := table.Bid.
		SELECT(table.Bid.AllColumns).
		WHERE(postgres.AND(conditions...)).
		ORDER_BY(table.Bid.CreatedAt.ASC())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.Bid{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}

	return result, nil
}
