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

// BidCapRepository reads the per-(LOB, asset level) cap rows. A missing row
// is (nil, nil) - callers fall back to static defaults.
type BidCapRepository interface {
	Get(lob string, level model.AssetLevel) (*model.BidCap, error)
}

type bidCapRepositoryHandler struct {
	Db *sql.DB
}

func NewBidCapRepository(db *sql.DB) BidCapRepository {
	return bidCapRepositoryHandler{Db: db}
}

func (h bidCapRepositoryHandler) Get(lob string, level model.AssetLevel) (*model.BidCap, error) {
	query := table.BidCap.
		SELECT(table.BidCap.AllColumns).
		WHERE(postgres.AND(
			table.BidCap.Lob.EQ(postgres.String(lob)),
			table.BidCap.AssetLevel.EQ(postgres.String(level.String())),
		))

	result := model.BidCap{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get bid cap: %w", err)
	}

	return &result, nil
}
