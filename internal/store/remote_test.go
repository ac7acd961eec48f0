// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// expectLoad registers the four SELECTs issued by remoteRepository.load.
func expectLoad(mock sqlmock.Sqlmock, initialized bool, values map[string]string, enabled []string) {
	mock.ExpectQuery(`SELECT initialized FROM remote_meta WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"initialized"}).AddRow(initialized))

	valueRows := sqlmock.NewRows([]string{"key", "value"})
	for k, v := range values {
		valueRows.AddRow(k, v)
	}
	mock.ExpectQuery(`SELECT key, value FROM remote_values`).WillReturnRows(valueRows)

	mock.ExpectQuery(`SELECT entity_id, text, noted_at FROM remote_notes`).
		WillReturnRows(sqlmock.NewRows([]string{"entity_id", "text", "noted_at"}))

	keyRows := sqlmock.NewRows([]string{"key"})
	for _, k := range enabled {
		keyRows.AddRow(k)
	}
	mock.ExpectQuery(`SELECT key FROM remote_enabled_keys ORDER BY key`).WillReturnRows(keyRows)
}

// ── View ─────────────────────────────────────────────────────────────────────

func TestRemoteRepository_View(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRemoteRepository(newDBFromSQL(db), logger.Nop())

	expectLoad(mock, true, map[string]string{"ids": "1,2"}, []string{"ids"})

	state, err := repo.View(testContext())
	require.NoError(t, err)
	assert.True(t, state.Initialized)
	assert.Equal(t, "1,2", state.Values["ids"])
	assert.Equal(t, []string{"ids"}, state.EnabledKeys)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteRepository_View_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRemoteRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(`SELECT initialized FROM remote_meta`).WillReturnError(errors.New("conn refused"))

	_, err := repo.View(testContext())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestRemoteRepository_Update_PersistsDiff(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRemoteRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT initialized FROM remote_meta WHERE id = \$1 FOR UPDATE`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"initialized"}).AddRow(false))
	mock.ExpectQuery(`SELECT key, value FROM remote_values`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).AddRow("old", "x").AddRow("same", "y"))
	mock.ExpectQuery(`SELECT entity_id, text, noted_at FROM remote_notes`).
		WillReturnRows(sqlmock.NewRows([]string{"entity_id", "text", "noted_at"}))
	mock.ExpectQuery(`SELECT key FROM remote_enabled_keys`).
		WillReturnRows(sqlmock.NewRows([]string{"key"}))

	mock.ExpectExec(`INSERT INTO remote_values \(key,value\) VALUES \(\$1,\$2\) ON CONFLICT`).
		WithArgs("new", "z").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM remote_values WHERE key IN \(\$1\)`).
		WithArgs("old").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO remote_notes`).
		WithArgs("42", "hello", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM remote_enabled_keys`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO remote_enabled_keys \(key\) VALUES \(\$1\),\(\$2\)`).
		WithArgs("new", "same").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE remote_meta SET initialized = \$1 WHERE id = \$2`).
		WithArgs(true, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	noted := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	state, err := repo.Update(testContext(), func(s *models.RemoteState) error {
		delete(s.Values, "old")
		s.Values["new"] = "z"
		s.Notes["42"] = models.Note{Text: "hello", Date: &noted}
		s.EnabledKeys = []string{"new", "same"}
		s.Initialized = true
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"new": "z", "same": "y"}, state.Values)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteRepository_Update_FnErrorRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRemoteRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectBegin()
	expectLoad(mock, true, nil, nil)
	mock.ExpectRollback()

	refused := errors.New("refused")
	_, err := repo.Update(testContext(), func(s *models.RemoteState) error {
		return refused
	})
	assert.ErrorIs(t, err, refused)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteRepository_Update_RetriesSerializationFailure(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRemoteRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT initialized FROM remote_meta`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	mock.ExpectRollback()

	mock.ExpectBegin()
	expectLoad(mock, true, nil, nil)
	mock.ExpectCommit()

	calls := 0
	_, err := repo.Update(testContext(), func(s *models.RemoteState) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoteRepository_Update_BeginError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRemoteRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectBegin().WillReturnError(errors.New("no conn"))

	_, err := repo.Update(testContext(), func(s *models.RemoteState) error { return nil })
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

// ── memory ───────────────────────────────────────────────────────────────────

func TestMemoryRemoteRepository_UpdateIsIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRemoteRepository()

	_, err := repo.Update(ctx, func(s *models.RemoteState) error {
		s.Values["a"] = "1"
		s.EnabledKeys = append(s.EnabledKeys, "a")
		return nil
	})
	require.NoError(t, err)

	_, err = repo.Update(ctx, func(s *models.RemoteState) error {
		s.Values["a"] = "changed"
		return errors.New("abort")
	})
	require.Error(t, err)

	state, err := repo.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", state.Values["a"])

	state.Values["a"] = "mutated outside"
	again, _ := repo.View(ctx)
	assert.Equal(t, "1", again.Values["a"])
}

// ── error classification ─────────────────────────────────────────────────────

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, Retryable, c.Classify(&pgconn.PgError{Code: pgerrcode.DeadlockDetected}))
	assert.Equal(t, Retryable, c.Classify(&pgconn.PgError{Code: pgerrcode.ConnectionFailure}))
	assert.Equal(t, NonRetryable, c.Classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
}
