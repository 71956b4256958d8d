package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/hmdissanayake/tank-watch/internal/logger"
)

func newTestVaultRepo(t *testing.T) (*vaultRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &vaultRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestVaultGet_Success(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow("encoded-blob")
	mock.ExpectQuery("SELECT value").
		WithArgs("credentials").
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "credentials")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "encoded-blob" {
		t.Errorf("expected encoded-blob, got %s", got)
	}
}

func TestVaultGet_KeyNotFound(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value").
		WithArgs("credentials").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "credentials")
	if !errors.Is(err, ErrVaultKeyNotFound) {
		t.Fatalf("expected ErrVaultKeyNotFound, got %v", err)
	}
}

func TestVaultPut_Upserts(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO vault").
		WithArgs("credentials", "encoded-blob", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Put(context.Background(), "credentials", "encoded-blob"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestVaultDelete_RemovesKey(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM vault").
		WithArgs("credentials").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "credentials"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVaultExists(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(1)
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("credentials").
		WillReturnRows(rows)

	exists, err := repo.Exists(context.Background(), "credentials")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected key to exist")
	}
}
