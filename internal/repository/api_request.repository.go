package repository

import (
	"fmt"
	"time"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type ApiRequestRepository interface {
	Add(db qrm.Queryable, req model.APIRequest) (*model.APIRequest, error)
	Update(db qrm.Queryable, req model.APIRequest) error
}

type apiRequestRepositoryHandler struct{}

func NewApiRequestRepository() ApiRequestRepository {
	return apiRequestRepositoryHandler{}
}

func (h apiRequestRepositoryHandler) Add(db qrm.Queryable, req model.APIRequest) (*model.APIRequest, error) {
	req.StartTs = req.StartTs.UTC()
	if req.StartTs.IsZero() {
		req.StartTs = time.Now().UTC()
	}
	query := table.APIRequest.
		INSERT(table.APIRequest.MutableColumns).
		MODEL(req).
		RETURNING(table.APIRequest.AllColumns)

	out := model.APIRequest{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert api request: %w", err)
	}

	return &out, nil
}

func (h apiRequestRepositoryHandler) Update(db qrm.Queryable, req model.APIRequest) error {
	query := table.APIRequest.
		UPDATE(table.APIRequest.MutableColumns).
		WHERE(table.APIRequest.APIRequestID.EQ(postgres.UUID(req.APIRequestID))).
		MODEL(req).
		RETURNING(table.APIRequest.AllColumns)

	out := model.APIRequest{}
	err := query.Query(db, &out)
	if err != nil {
		return fmt.Errorf("failed to update api request: %w", err)
	}

	return nil
}
