package domain

import "errors"

var (
	// ErrNotFound covers unknown asset/bid/auction ids. Terminal for the
	// current request.
	ErrNotFound = errors.New("not found")

	// ErrConflict covers fully-allocated slots and already-resolved
	// auctions. Callers should offer alternatives instead of retrying.
	ErrConflict = errors.New("conflict")

	ErrAuctionClosed = errors.New("auction already resolved")

	// ErrLockContention is returned after the bounded retry of the
	// per-(asset, date) critical section is exhausted.
	ErrLockContention = errors.New("could not acquire slot lock")
)
