package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type SlotAllocationRepository interface {
	Get(tx *sql.Tx, assetID uuid.UUID, date time.Time) (*model.SlotAllocation, error)
	GetOrCreate(tx *sql.Tx, assetID uuid.UUID, date time.Time, totalSlots int32) (*model.SlotAllocation, error)
	Increment(tx *sql.Tx, slotAllocationID uuid.UUID, class model.BidderClass, n int32) error
	List(assetID uuid.UUID, from, to time.Time) ([]model.SlotAllocation, error)
}

type slotAllocationRepositoryHandler struct {
	Db *sql.DB
}

func NewSlotAllocationRepository(db *sql.DB) SlotAllocationRepository {
	return slotAllocationRepositoryHandler{Db: db}
}

func (h slotAllocationRepositoryHandler) Get(tx *sql.Tx, assetID uuid.UUID, date time.Time) (*model.SlotAllocation, error) {
	query := table.SlotAllocation.
		SELECT(table.SlotAllocation.AllColumns).
		WHERE(postgres.AND(
			table.SlotAllocation.AssetID.EQ(postgres.UUID(assetID)),
			table.SlotAllocation.Date.EQ(postgres.DateT(date)),
		))

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := model.SlotAllocation{}
	err := query.Query(db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get slot allocation: %w", err)
	}

	return &result, nil
}

// GetOrCreate lazily creates the per-(asset, date) counter row. Callers hold
// the advisory lock for the target, so select-then-insert cannot race.
func (h slotAllocationRepositoryHandler) GetOrCreate(tx *sql.Tx, assetID uuid.UUID, date time.Time, totalSlots int32) (*model.SlotAllocation, error) {
	existing, err := h.Get(tx, assetID, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	sa := model.SlotAllocation{
		AssetID:    assetID,
		Date:       date,
		TotalSlots: totalSlots,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	query := table.SlotAllocation.
		INSERT(table.SlotAllocation.MutableColumns).
		MODEL(sa).
		RETURNING(table.SlotAllocation.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.SlotAllocation{}
	err = query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert slot allocation: %w", err)
	}

	return &out, nil
}

// Increment bumps the counter for the bidder class. Monetization is a
// subset of external, so a monetization win advances both counters.
func (h slotAllocationRepositoryHandler) Increment(tx *sql.Tx, slotAllocationID uuid.UUID, class model.BidderClass, n int32) error {
	touchUpdatedAt := table.SlotAllocation.UpdatedAt.SET(postgres.TimestampT(time.Now().UTC()))

	var query postgres.UpdateStatement
	switch class {
	case model.BidderClass_Internal:
		query = table.SlotAllocation.UPDATE().SET(
			table.SlotAllocation.InternalAllocated.SET(table.SlotAllocation.InternalAllocated.ADD(postgres.Int32(n))),
			touchUpdatedAt,
		)
	case model.BidderClass_Monetization:
		query = table.SlotAllocation.UPDATE().SET(
			table.SlotAllocation.ExternalAllocated.SET(table.SlotAllocation.ExternalAllocated.ADD(postgres.Int32(n))),
			table.SlotAllocation.MonetizationAllocated.SET(table.SlotAllocation.MonetizationAllocated.ADD(postgres.Int32(n))),
			touchUpdatedAt,
		)
	default:
		query = table.SlotAllocation.UPDATE().SET(
			table.SlotAllocation.ExternalAllocated.SET(table.SlotAllocation.ExternalAllocated.ADD(postgres.Int32(n))),
			touchUpdatedAt,
		)
	}
	query = query.WHERE(table.SlotAllocation.SlotAllocationID.EQ(postgres.UUID(slotAllocationID)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to increment slot allocation %s: %w", slotAllocationID, err)
	}

	return nil
}

func (h slotAllocationRepositoryHandler) List(assetID uuid.UUID, from, to time.Time) ([]model.SlotAllocation, error) {
	query := table.SlotAllocation.
		SELECT(table.SlotAllocation.AllColumns).
		WHERE(postgres.AND(
			table.SlotAllocation.AssetID.EQ(postgres.UUID(assetID)),
			table.SlotAllocation.Date.GT_EQ(postgres.DateT(from)),
			table.SlotAllocation.Date.LT_EQ(postgres.DateT(to)),
		)).
		ORDER_BY(table.SlotAllocation.Date.ASC())

	result := []model.SlotAllocation{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list slot allocations: %w", err)
	}

	return result, nil
}
