package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/models"
)

func newTestCacheRepo(t *testing.T) (*cacheRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &cacheRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testRecord() models.ReservoirRecord {
	return models.ReservoirRecord{
		ID:                 "rec-1",
		Name:               "Parakrama Samudraya",
		LocationName:       "Polonnaruwa",
		Coordinates:        models.Coordinates{Lat: 7.9104, Lon: 81.0018},
		WaterLevel:         38.5,
		CapacityPercentage: 86,
		Status:             models.StatusWarning,
		Notes:              "sluice gates open",
		Timestamp:          time.Date(2026, 5, 2, 7, 15, 0, 0, time.UTC),
		SubmittedBy:        "J. Perera",
	}
}

func cacheRows(records ...models.ReservoirRecord) *sqlmock.Rows {
	rows := sqlmock.NewRows(cacheColumns)
	for _, r := range records {
		rows.AddRow(
			r.ID, r.Name, r.LocationName,
			r.Coordinates.Lat, r.Coordinates.Lon,
			r.WaterLevel, r.CapacityPercentage,
			string(r.Status), r.Notes, r.Timestamp,
			r.SubmittedBy, r.IsVerified,
			r.GeminiAnalysis, r.GroundingURL,
		)
	}
	return rows
}

func TestCacheUpsert_Success(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	record := testRecord()

	mock.ExpectExec("INSERT OR REPLACE INTO reservoir_cache").
		WithArgs(
			record.ID, record.Name, record.LocationName,
			record.Coordinates.Lat, record.Coordinates.Lon,
			record.WaterLevel, record.CapacityPercentage,
			string(record.Status), record.Notes, record.Timestamp,
			record.SubmittedBy, record.IsVerified,
			record.GeminiAnalysis, record.GroundingURL,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCacheList_NoFilter(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	record := testRecord()
	mock.ExpectQuery("SELECT .+ FROM reservoir_cache ORDER BY timestamp DESC").
		WillReturnRows(cacheRows(record))

	records, err := repo.List(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Status != models.StatusWarning {
		t.Errorf("expected WARNING status, got %s", records[0].Status)
	}
	if records[0].Coordinates.Lon != 81.0018 {
		t.Errorf("unexpected longitude: %f", records[0].Coordinates.Lon)
	}
}

func TestCacheList_StatusFilter(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	// squirrel renders the status filter as a WHERE clause with one arg.
	mock.ExpectQuery("SELECT .+ FROM reservoir_cache WHERE status").
		WithArgs("CRITICAL").
		WillReturnRows(cacheRows())

	records, err := repo.List(context.Background(), ListFilter{Status: models.StatusCritical})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestCacheList_NameFilter(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	record := testRecord()
	mock.ExpectQuery("SELECT .+ FROM reservoir_cache WHERE LOWER").
		WithArgs("%samudraya%").
		WillReturnRows(cacheRows(record))

	records, err := repo.List(context.Background(), ListFilter{NameLike: "Samudraya"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestCacheDelete_Success(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM reservoir_cache").
		WithArgs("rec-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "rec-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
