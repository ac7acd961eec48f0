// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"sort"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// remoteRepository is the PostgreSQL implementation of [RemoteRepository].
// The single remote_meta row is locked for the duration of every Update so
// concurrent rounds of different devices are serialized.
type remoteRepository struct {
	*DB
	logger *logger.Logger
}

// NewRemoteRepository constructs a PostgreSQL backed [RemoteRepository].
func NewRemoteRepository(db *DB, log *logger.Logger) RemoteRepository {
	return &remoteRepository{
		DB:     db,
		logger: log,
	}
}

func (r *remoteRepository) View(ctx context.Context) (models.RemoteState, error) {
	state, err := r.load(ctx, r.DB.DB, false)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "remoteRepository.View").Msg("failed to load remote state")
		return models.RemoteState{}, err
	}
	return state, nil
}

func (r *remoteRepository) Update(ctx context.Context, fn func(state *models.RemoteState) error) (models.RemoteState, error) {
	var result models.RemoteState

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		before, err := r.load(ctx, tx, true)
		if err != nil {
			return err
		}

		after := before.Clone()
		if err = fn(&after); err != nil {
			return err
		}

		if err = r.persist(ctx, tx, before, after); err != nil {
			return err
		}

		result = after
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "remoteRepository.Update").Msg("failed to update remote state")
		return models.RemoteState{}, err
	}

	return result, nil
}

func (r *remoteRepository) load(ctx context.Context, q queryer, forUpdate bool) (models.RemoteState, error) {
	state := models.NewRemoteState()

	metaQuery := psql.Select("initialized").From("remote_meta").Where(sq.Eq{"id": 1})
	if forUpdate {
		metaQuery = metaQuery.Suffix("FOR UPDATE")
	}
	if err := queryRows(ctx, q, metaQuery, func(rows *sql.Rows) error {
		return rows.Scan(&state.Initialized)
	}); err != nil {
		return state, err
	}

	if err := queryRows(ctx, q, psql.Select("key", "value").From("remote_values"), func(rows *sql.Rows) error {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return err
		}
		state.Values[k] = v
		return nil
	}); err != nil {
		return state, err
	}

	if err := queryRows(ctx, q, psql.Select("entity_id", "text", "noted_at").From("remote_notes"), func(rows *sql.Rows) error {
		var id, text string
		var notedAt sql.NullTime
		if err := rows.Scan(&id, &text, &notedAt); err != nil {
			return err
		}
		note := models.Note{Text: text}
		if notedAt.Valid {
			t := notedAt.Time
			note.Date = &t
		}
		state.Notes[id] = note
		return nil
	}); err != nil {
		return state, err
	}

	if err := queryRows(ctx, q, psql.Select("key").From("remote_enabled_keys").OrderBy("key"), func(rows *sql.Rows) error {
		var k string
		if err := rows.Scan(&k); err != nil {
			return err
		}
		state.EnabledKeys = append(state.EnabledKeys, k)
		return nil
	}); err != nil {
		return state, err
	}

	return state, nil
}

func (r *remoteRepository) persist(ctx context.Context, q queryer, before, after models.RemoteState) error {
	upserts, deletes := diffValues(before.Values, after.Values)
	if len(upserts) > 0 {
		insert := psql.Insert("remote_values").Columns("key", "value").
			Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()")
		for _, k := range upserts {
			insert = insert.Values(k, after.Values[k])
		}
		if err := exec(ctx, q, insert); err != nil {
			return err
		}
	}
	if len(deletes) > 0 {
		if err := exec(ctx, q, psql.Delete("remote_values").Where(sq.Eq{"key": deletes})); err != nil {
			return err
		}
	}

	noteUpserts, noteDeletes := diffNotes(before.Notes, after.Notes)
	if len(noteUpserts) > 0 {
		insert := psql.Insert("remote_notes").Columns("entity_id", "text", "noted_at").
			Suffix("ON CONFLICT (entity_id) DO UPDATE SET text = EXCLUDED.text, noted_at = EXCLUDED.noted_at")
		for _, id := range noteUpserts {
			note := after.Notes[id]
			insert = insert.Values(id, note.Text, note.Date)
		}
		if err := exec(ctx, q, insert); err != nil {
			return err
		}
	}
	if len(noteDeletes) > 0 {
		if err := exec(ctx, q, psql.Delete("remote_notes").Where(sq.Eq{"entity_id": noteDeletes})); err != nil {
			return err
		}
	}

	if !slices.Equal(sortedCopy(before.EnabledKeys), sortedCopy(after.EnabledKeys)) {
		if err := exec(ctx, q, psql.Delete("remote_enabled_keys")); err != nil {
			return err
		}
		if len(after.EnabledKeys) > 0 {
			insert := psql.Insert("remote_enabled_keys").Columns("key").Suffix("ON CONFLICT DO NOTHING")
			for _, k := range after.EnabledKeys {
				insert = insert.Values(k)
			}
			if err := exec(ctx, q, insert); err != nil {
				return err
			}
		}
	}

	if before.Initialized != after.Initialized {
		update := psql.Update("remote_meta").Set("initialized", after.Initialized).Where(sq.Eq{"id": 1})
		if err := exec(ctx, q, update); err != nil {
			return err
		}
	}

	return nil
}

func queryRows(ctx context.Context, q queryer, b sq.Sqlizer, scan func(rows *sql.Rows) error) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err = scan(rows); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

func exec(ctx context.Context, q queryer, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// diffValues returns the keys to upsert and the keys to delete, both sorted.
func diffValues(before, after map[string]string) (upserts, deletes []string) {
	for k, v := range after {
		if old, ok := before[k]; !ok || old != v {
			upserts = append(upserts, k)
		}
	}
	for k := range before {
		if _, ok := after[k]; !ok {
			deletes = append(deletes, k)
		}
	}
	sort.Strings(upserts)
	sort.Strings(deletes)
	return upserts, deletes
}

func diffNotes(before, after map[string]models.Note) (upserts, deletes []string) {
	for id, n := range after {
		if old, ok := before[id]; !ok || !sameNote(old, n) {
			upserts = append(upserts, id)
		}
	}
	for id := range before {
		if _, ok := after[id]; !ok {
			deletes = append(deletes, id)
		}
	}
	sort.Strings(upserts)
	sort.Strings(deletes)
	return upserts, deletes
}

func sameNote(a, b models.Note) bool {
	if a.Text != b.Text {
		return false
	}
	if a.Date == nil || b.Date == nil {
		return a.Date == b.Date
	}
	return a.Date.Equal(*b.Date)
}

func sortedCopy(s []string) []string {
	out := slices.Clone(s)
	sort.Strings(out)
	return out
}
