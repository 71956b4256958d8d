package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/hmdissanayake/tank-watch/internal/adapter"
	"github.com/hmdissanayake/tank-watch/internal/config"
	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/models"
)

const (
	listRemoteRecords = `
		SELECT
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
		FROM reservoir_entries
		ORDER BY timestamp DESC;`

	insertRemoteRecord = `
		INSERT INTO reservoir_entries (
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

	deleteRemoteRecord = `
		DELETE FROM reservoir_entries
		WHERE id = $1;`

	getRemoteProfile = `
		SELECT id, name, role, avatar_url
		FROM profiles
		WHERE id = $1;`
)

// postgresRemoteStore is the direct-DSN implementation of
// [adapter.RemoteStore], used by deployments that can reach the database
// without going through the hosted REST layer.
type postgresRemoteStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewPostgresRemoteStore opens a pgx-backed connection to cfg.PostgresDSN
// and returns a [adapter.RemoteStore] over it. The reservoir_entries and
// profiles relations are expected to exist; their absence is reported per
// call as [adapter.ErrTableMissing], never at construction time, so a
// misconfigured database degrades exactly like the REST backend does.
func NewPostgresRemoteStore(ctx context.Context, cfg config.Remote, log *logger.Logger) (adapter.RemoteStore, error) {
	conn, err := sql.Open("pgx", cfg.PostgresDSN)
	if err != nil {
		log.Err(err).Str("func", "NewPostgresRemoteStore").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewPostgresRemoteStore").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewPostgresRemoteStore").Msg("connected to remote database successfully")

	return &postgresRemoteStore{db: conn, logger: log}, nil
}

func (p *postgresRemoteStore) ListRecords(ctx context.Context) ([]models.ReservoirRecord, error) {
	rows, err := p.db.QueryContext(ctx, listRemoteRecords)
	if err != nil {
		return nil, classifyRemoteError("query remote records", err)
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
			return nil, fmt.Errorf("failed to scan remote record row: %w", scanErr)
		}

		record.Status = models.ReservoirStatus(status)
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating remote record rows: %w", rowsErr)
	}

	return records, nil
}

func (p *postgresRemoteStore) InsertRecord(ctx context.Context, record models.ReservoirRecord) error {
	_, err := p.db.ExecContext(ctx, insertRemoteRecord,
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
		return classifyRemoteError("insert remote record", err)
	}

	return nil
}

func (p *postgresRemoteStore) DeleteRecord(ctx context.Context, id string) error {
	if _, err := p.db.ExecContext(ctx, deleteRemoteRecord, id); err != nil {
		return classifyRemoteError("delete remote record", err)
	}

	return nil
}

func (p *postgresRemoteStore) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	var profile models.Profile
	var role string

	err := p.db.QueryRowContext(ctx, getRemoteProfile, userID).Scan(
		&profile.ID,
		&profile.Name,
		&role,
		&profile.AvatarURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, fmt.Errorf("%w: user %s", adapter.ErrProfileNotFound, userID)
	}
	if err != nil {
		return models.Profile{}, classifyRemoteError("query remote profile", err)
	}

	profile.Role = models.ParseRole(role)
	return profile, nil
}

// classifyRemoteError maps a pgx error to the adapter sentinels so both
// remote backends degrade identically. An undefined relation (SQLSTATE
// 42P01) becomes [adapter.ErrTableMissing]; everything else is wrapped
// as-is.
func classifyRemoteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
		return fmt.Errorf("%w: %s", adapter.ErrTableMissing, pgErr.Message)
	}

	return fmt.Errorf("%s: %w", op, err)
}
