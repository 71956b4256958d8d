package store

import (
	"context"
	"fmt"

	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/models"
)

const (
	enqueuePendingOp = `
		INSERT INTO pending_ops (kind, record_id, payload, created_at)
		VALUES ($1, $2, $3, $4);`

	listPendingOps = `
		SELECT op_id, kind, record_id, payload, created_at
		FROM pending_ops
		ORDER BY op_id ASC;`

	removePendingOp = `
		DELETE FROM pending_ops
		WHERE op_id = $1;`
)

type pendingOpsRepository struct {
	*DB
	logger *logger.Logger
}

func NewPendingOpsRepository(db *DB, logger *logger.Logger) PendingOpsRepository {
	return &pendingOpsRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *pendingOpsRepository) Enqueue(ctx context.Context, op models.PendingOp) error {
	log := logger.FromContext(ctx)

	_, err := p.DB.ExecContext(ctx, enqueuePendingOp,
		string(op.Kind),
		op.RecordID,
		op.Payload,
		op.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "pendingOpsRepository.Enqueue").
			Str("record_id", op.RecordID).
			Str("kind", string(op.Kind)).
			Msg("failed to enqueue pending op")
		return fmt.Errorf("failed to enqueue pending op (record_id=%s): %w", op.RecordID, err)
	}

	return nil
}

func (p *pendingOpsRepository) ListOldestFirst(ctx context.Context) ([]models.PendingOp, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, listPendingOps)
	if err != nil {
		log.Err(err).
			Str("func", "pendingOpsRepository.ListOldestFirst").
			Msg("failed to query pending ops")
		return nil, fmt.Errorf("failed to query pending ops: %w", err)
	}
	defer rows.Close()

	var ops []models.PendingOp

	for rows.Next() {
		var op models.PendingOp
		var kind string

		scanErr := rows.Scan(&op.OpID, &kind, &op.RecordID, &op.Payload, &op.CreatedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "pendingOpsRepository.ListOldestFirst").
				Msg("failed to scan pending op row")
			return nil, fmt.Errorf("failed to scan pending op row: %w", scanErr)
		}

		op.Kind = models.PendingOpKind(kind)
		ops = append(ops, op)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "pendingOpsRepository.ListOldestFirst").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating pending op rows: %w", rowsErr)
	}

	return ops, nil
}

func (p *pendingOpsRepository) Remove(ctx context.Context, opID int64) error {
	log := logger.FromContext(ctx)

	_, err := p.DB.ExecContext(ctx, removePendingOp, opID)
	if err != nil {
		log.Err(err).
			Str("func", "pendingOpsRepository.Remove").
			Int64("op_id", opID).
			Msg("failed to remove pending op")
		return fmt.Errorf("failed to remove pending op (op_id=%d): %w", opID, err)
	}

	return nil
}
