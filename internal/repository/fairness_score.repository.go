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

type FairnessScoreRepository interface {
	Upsert(tx *sql.Tx, fs model.FairnessScore) (*model.FairnessScore, error)
	GetByBid(bidID uuid.UUID) (*model.FairnessScore, error)
}

type fairnessScoreRepositoryHandler struct {
	Db *sql.DB
}

func NewFairnessScoreRepository(db *sql.DB) FairnessScoreRepository {
	return fairnessScoreRepositoryHandler{Db: db}
}

// Upsert writes the score keyed by (bid, asset). The pending row written at
// bid time is overwritten by the frozen row at resolution; a frozen row is
// never downgraded back to pending.
func (h fairnessScoreRepositoryHandler) Upsert(tx *sql.Tx, fs model.FairnessScore) (*model.FairnessScore, error) {
	fs.CreatedAt = time.Now().UTC()
	fs.UpdatedAt = time.Now().UTC()

	excluded := table.FairnessScore.EXCLUDED
	query := table.FairnessScore.
		INSERT(table.FairnessScore.MutableColumns).
		MODEL(fs).
		ON_CONFLICT(table.FairnessScore.BidID, table.FairnessScore.AssetID).
		DO_UPDATE(postgres.SET(
			table.FairnessScore.BaseScore.SET(excluded.BaseScore),
			table.FairnessScore.TimeFairness.SET(excluded.TimeFairness),
			table.FairnessScore.StrategicWeight.SET(excluded.StrategicWeight),
			table.FairnessScore.NormalizedRoi.SET(excluded.NormalizedRoi),
			table.FairnessScore.CappedBidAmount.SET(excluded.CappedBidAmount),
			table.FairnessScore.BookingHistoryFactor.SET(excluded.BookingHistoryFactor),
			table.FairnessScore.SlotAvailabilityFactor.SET(excluded.SlotAvailabilityFactor),
			table.FairnessScore.TimeRestrictionFactor.SET(excluded.TimeRestrictionFactor),
			table.FairnessScore.FinalScore.SET(excluded.FinalScore),
			table.FairnessScore.Result.SET(excluded.Result),
			table.FairnessScore.Frozen.SET(excluded.Frozen),
			table.FairnessScore.UpdatedAt.SET(excluded.UpdatedAt),
		).WHERE(table.FairnessScore.Frozen.IS_FALSE().OR(excluded.Frozen.IS_TRUE()))).
		RETURNING(table.FairnessScore.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.FairnessScore{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert fairness score: %w", err)
	}

	return &out, nil
}

func (h fairnessScoreRepositoryHandler) GetByBid(bidID uuid.UUID) (*model.FairnessScore, error) {
	query := table.FairnessScore.
		SELECT(table.FairnessScore.AllColumns).
		WHERE(table.FairnessScore.BidID.EQ(postgres.UUID(bidID)))

	result := model.FairnessScore{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get fairness score: %w", err)
	}

	return &result, nil
}
