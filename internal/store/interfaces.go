package store

import (
	"context"

	"github.com/hmdissanayake/tank-watch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultRepository is the low-level keyed blob store backing the device
// vault. Values are opaque strings; encoding and staging semantics live in
// the vault service.
type VaultRepository interface {
	// Get returns the value stored under key.
	// Returns [ErrVaultKeyNotFound] (wrapped) when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Put stores value under key, overwriting any prior value.
	Put(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether key is present.
	Exists(ctx context.Context, key string) (bool, error)
}

// CacheRepository is the device-local mirror of reservoir entries, read
// when the remote database is unreachable.
type CacheRepository interface {
	// Upsert stores the record, replacing an existing row with the same
	// id. Mirroring the same record twice is therefore idempotent.
	Upsert(ctx context.Context, record models.ReservoirRecord) error

	// List returns cached records matching the filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]models.ReservoirRecord, error)

	// Delete removes the row with the given id, if present.
	Delete(ctx context.Context, id string) error
}

// ListFilter narrows a cache listing. Zero value means no filtering.
type ListFilter struct {
	// Status keeps only records with the given status when non-empty.
	Status models.ReservoirStatus

	// NameLike keeps records whose reservoir name contains the substring,
	// case-insensitive, when non-empty.
	NameLike string
}

// PendingOpsRepository is the write-ahead queue of remote operations that
// failed and await replay by the reconcile job.
type PendingOpsRepository interface {
	// Enqueue appends an operation to the queue.
	Enqueue(ctx context.Context, op models.PendingOp) error

	// ListOldestFirst returns queued operations in creation order.
	ListOldestFirst(ctx context.Context) ([]models.PendingOp, error)

	// Remove deletes a replayed operation by its OpID.
	Remove(ctx context.Context, opID int64) error
}
