package repository

import (
	"database/sql"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
)

// AdvisoryLockRepository serializes the per-(asset, date) critical section.
// Locks are transaction-scoped, so every exit path (commit or rollback)
// releases them.
type AdvisoryLockRepository interface {
	TryAcquireSlotLock(tx *sql.Tx, assetID uuid.UUID, date time.Time) (bool, error)
}

type advisoryLockRepositoryHandler struct{}

func NewAdvisoryLockRepository() AdvisoryLockRepository {
	return advisoryLockRepositoryHandler{}
}

func (h advisoryLockRepositoryHandler) TryAcquireSlotLock(tx *sql.Tx, assetID uuid.UUID, date time.Time) (bool, error) {
	var acquired bool
	err := tx.QueryRow("SELECT pg_try_advisory_xact_lock($1)", slotLockKey(assetID, date)).Scan(&acquired)
	if err != nil {
		return false, fmt.Errorf("failed to acquire slot lock for asset %s: %w", assetID, err)
	}

	return acquired, nil
}

func slotLockKey(assetID uuid.UUID, date time.Time) int64 {
	hasher := fnv.New64a()
	hasher.Write(assetID[:])
	hasher.Write([]byte(date.Format("2006-01-02")))
	return int64(hasher.Sum64())
}
