package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hmdissanayake/tank-watch/internal/adapter"
	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/internal/store"
	"github.com/hmdissanayake/tank-watch/internal/utils"
	"github.com/hmdissanayake/tank-watch/internal/validators"
	"github.com/hmdissanayake/tank-watch/models"
)

type dataService struct {
	remote    adapter.RemoteStore
	cache     store.CacheRepository
	pending   store.PendingOpsRepository
	ai        adapter.AIAdapter
	validator validators.EntryValidator
	uuid      *utils.UUIDGenerator
	logger    *logger.Logger

	now func() time.Time
}

// NewDataService builds the reservoir entry service: remote-first reads
// with cache fallback, best-effort remote writes mirrored locally, and a
// write-ahead queue for the reconcile job.
func NewDataService(
	remote adapter.RemoteStore,
	storages *store.ClientStorages,
	ai adapter.AIAdapter,
	validator validators.EntryValidator,
	log *logger.Logger,
) DataService {
	return &dataService{
		remote:    remote,
		cache:     storages.CacheRepository,
		pending:   storages.PendingOpsRepository,
		ai:        ai,
		validator: validator,
		uuid:      utils.NewUUIDGenerator(),
		logger:    log,
		now:       time.Now,
	}
}

func (d *dataService) List(ctx context.Context) (models.ListResult, error) {
	records, err := d.remote.ListRecords(ctx)
	if err == nil {
		return models.ListResult{Records: records, Source: models.SourceRemote}, nil
	}

	tableMissing := errors.Is(err, adapter.ErrTableMissing)
	d.logger.Warn().
		Str("func", "List").
		Bool("table_missing", tableMissing).
		Err(err).
		Msg("remote listing failed, serving cache")

	cached, cacheErr := d.cache.List(ctx, store.ListFilter{})
	if cacheErr != nil {
		return models.ListResult{}, fmt.Errorf("remote listing failed (%v) and cache unavailable: %w", err, cacheErr)
	}

	return models.ListResult{Records: cached, Source: models.SourceCache, TableMissing: tableMissing}, nil
}

func (d *dataService) Search(ctx context.Context, filter store.ListFilter) ([]models.ReservoirRecord, error) {
	records, err := d.cache.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search cache: %w", err)
	}
	return records, nil
}

func (d *dataService) Add(ctx context.Context, record models.ReservoirRecord, position *models.Coordinates) error {
	if record.ID == "" {
		record.ID = d.uuid.Generate()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = d.now().UTC()
	}

	if err := d.validator.ValidateRecord(record); err != nil {
		return fmt.Errorf("validate record: %w", err)
	}

	if position != nil {
		if err := d.checkGeofence(ctx, *position, record.LocationName); err != nil {
			return err
		}
	}

	if err := d.remote.InsertRecord(ctx, record); err != nil {
		d.logger.Warn().
			Str("func", "Add").
			Str("record_id", record.ID).
			Err(err).
			Msg("remote insert failed, queueing for replay")
		d.enqueueInsert(ctx, record)
	}

	// The cache mirror is the contract: a submission must survive on the
	// device even when the remote write failed.
	if err := d.cache.Upsert(ctx, record); err != nil {
		return fmt.Errorf("mirror record into cache: %w", err)
	}
	return nil
}

func (d *dataService) Delete(ctx context.Context, id string) error {
	if err := d.remote.DeleteRecord(ctx, id); err != nil {
		d.logger.Warn().
			Str("func", "Delete").
			Str("record_id", id).
			Err(err).
			Msg("remote delete failed, queueing for replay")

		op := models.PendingOp{Kind: models.OpDelete, RecordID: id, CreatedAt: d.now().UTC()}
		if qErr := d.pending.Enqueue(ctx, op); qErr != nil {
			d.logger.Error().Str("func", "Delete").Err(qErr).Msg("enqueue pending delete failed")
		}
	}

	if err := d.cache.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete record from cache: %w", err)
	}
	return nil
}

func (d *dataService) Reconcile(ctx context.Context) error {
	ops, err := d.pending.ListOldestFirst(ctx)
	if err != nil {
		return fmt.Errorf("list pending ops: %w", err)
	}

	for _, op := range ops {
		if err = d.replay(ctx, op); err != nil {
			// The remote is likely still unreachable; keep the queue
			// intact and in order for the next pass.
			return fmt.Errorf("replay op %d (%s %s): %w", op.OpID, op.Kind, op.RecordID, err)
		}
		if err = d.pending.Remove(ctx, op.OpID); err != nil {
			return fmt.Errorf("remove replayed op %d: %w", op.OpID, err)
		}
		d.logger.Info().
			Str("func", "Reconcile").
			Int64("op_id", op.OpID).
			Str("kind", string(op.Kind)).
			Str("record_id", op.RecordID).
			Msg("pending op replayed")
	}
	return nil
}

func (d *dataService) replay(ctx context.Context, op models.PendingOp) error {
	switch op.Kind {
	case models.OpInsert:
		var record models.ReservoirRecord
		if err := json.Unmarshal(op.Payload, &record); err != nil {
			// Poison entry; drop it rather than wedge the queue.
			d.logger.Error().
				Str("func", "Reconcile").
				Int64("op_id", op.OpID).
				Err(err).
				Msg("pending insert payload is unreadable, dropping")
			return nil
		}
		return d.remote.InsertRecord(ctx, record)
	case models.OpDelete:
		return d.remote.DeleteRecord(ctx, op.RecordID)
	default:
		d.logger.Error().
			Str("func", "Reconcile").
			Int64("op_id", op.OpID).
			Str("kind", string(op.Kind)).
			Msg("unknown pending op kind, dropping")
		return nil
	}
}

// checkGeofence gates a submission on the model's location verdict. A
// failed model call is logged and waved through: field submissions must
// not depend on model availability.
func (d *dataService) checkGeofence(ctx context.Context, position models.Coordinates, siteName string) error {
	verdict, err := d.ai.VerifyLocation(ctx, position, siteName)
	if err != nil {
		d.logger.Warn().Str("func", "Add").Err(err).Msg("geofence check unavailable, accepting submission")
		return nil
	}
	if !verdict.Within {
		return fmt.Errorf("%w: %s", ErrGeofenceRejected, verdict.Reason)
	}
	return nil
}

func (d *dataService) enqueueInsert(ctx context.Context, record models.ReservoirRecord) {
	payload, err := json.Marshal(record)
	if err != nil {
		d.logger.Error().Str("func", "Add").Err(err).Msg("marshal record for pending queue failed")
		return
	}

	op := models.PendingOp{
		Kind:      models.OpInsert,
		RecordID:  record.ID,
		Payload:   payload,
		CreatedAt: d.now().UTC(),
	}
	if err = d.pending.Enqueue(ctx, op); err != nil {
		d.logger.Error().Str("func", "Add").Err(err).Msg("enqueue pending insert failed")
	}
}
