package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/models"
)

const upsertCachedRecord = `
	INSERT OR REPLACE INTO reservoir_cache (
		id,
		name,
		location_name,
		lat,
		lon,
		water_level,
		capacity_percentage,
		status,
		notes,
		timestamp,
		submitted_by,
		is_verified,
		gemini_analysis,
		grounding_url
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

const deleteCachedRecord = `
	DELETE FROM reservoir_cache
	WHERE id = $1;`

var cacheColumns = []string{
	"id",
	"name",
	"location_name",
	"lat",
	"lon",
	"water_level",
	"capacity_percentage",
	"status",
	"notes",
	"timestamp",
	"submitted_by",
	"is_verified",
	"gemini_analysis",
	"grounding_url",
}

type cacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewCacheRepository(db *DB, logger *logger.Logger) CacheRepository {
	return &cacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *cacheRepository) Upsert(ctx context.Context, record models.ReservoirRecord) error {
	log := logger.FromContext(ctx)

	_, err := c.DB.ExecContext(ctx, upsertCachedRecord,
		record.ID,
		record.Name,
		record.LocationName,
		record.Coordinates.Lat,
		record.Coordinates.Lon,
		record.WaterLevel,
		record.CapacityPercentage,
		string(record.Status),
		record.Notes,
		record.Timestamp,
		record.SubmittedBy,
		record.IsVerified,
		record.GeminiAnalysis,
		record.GroundingURL,
	)
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.Upsert").
			Str("record_id", record.ID).
			Msg("failed to upsert cached record")
		return fmt.Errorf("failed to upsert cached record (id=%s): %w", record.ID, err)
	}

	return nil
}

func (c *cacheRepository) List(ctx context.Context, filter ListFilter) ([]models.ReservoirRecord, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(cacheColumns...).
		From("reservoir_cache").
		OrderBy("timestamp DESC")

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": string(filter.Status)})
	}
	if filter.NameLike != "" {
		builder = builder.Where(sq.Like{"LOWER(name)": "%" + strings.ToLower(filter.NameLike) + "%"})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build cache query: %w", err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.List").
			Msg("failed to query cached records")
		return nil, fmt.Errorf("failed to query cached records: %w", err)
	}
	defer rows.Close()

	var records []models.ReservoirRecord

	for rows.Next() {
		var record models.ReservoirRecord
		var status string

		scanErr := rows.Scan(
			&record.ID,
			&record.Name,
			&record.LocationName,
			&record.Coordinates.Lat,
			&record.Coordinates.Lon,
			&record.WaterLevel,
			&record.CapacityPercentage,
			&status,
			&record.Notes,
			&record.Timestamp,
			&record.SubmittedBy,
			&record.IsVerified,
			&record.GeminiAnalysis,
			&record.GroundingURL,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "cacheRepository.List").
				Msg("failed to scan cached record row")
			return nil, fmt.Errorf("failed to scan cached record row: %w", scanErr)
		}

		record.Status = models.ReservoirStatus(status)
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "cacheRepository.List").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating cached record rows: %w", rowsErr)
	}

	return records, nil
}

func (c *cacheRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	_, err := c.DB.ExecContext(ctx, deleteCachedRecord, id)
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.Delete").
			Str("record_id", id).
			Msg("failed to delete cached record")
		return fmt.Errorf("failed to delete cached record (id=%s): %w", id, err)
	}

	return nil
}
