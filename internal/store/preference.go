package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/quizbox/internal/preference"
)

const (
	colKey       = "key"
	colValue     = "value"
	colUpdatedAt = "updated_at"
)

// PreferenceRepo implements preference.Store on the preferences table.
type PreferenceRepo struct {
	db  *sql.DB
	now func() time.Time
}

var (
	_ preference.Store   = (*PreferenceRepo)(nil)
	_ preference.Clearer = (*PreferenceRepo)(nil)
)

func (r *PreferenceRepo) Get(ctx context.Context) (preference.Theme, bool, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(colValue).
		From(entsql.Table(PreferencesTable.Name)).
		Where(entsql.EQ(colKey, preference.Key)).
		Limit(1).
		Query()

	var v string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query preference: %w", err)
	}

	t, err := preference.ParseTheme(v)
	if err != nil {
		return "", false, err
	}
	return t, true, nil
}

func (r *PreferenceRepo) Set(ctx context.Context, t preference.Theme) error {
	if _, err := preference.ParseTheme(string(t)); err != nil {
		return err
	}
	now := time.Now
	if r.now != nil {
		now = r.now
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(PreferencesTable.Name).
		Columns(colKey, colValue, colUpdatedAt).
		Values(preference.Key, string(t), now().UTC()).
		OnConflict(
			entsql.ConflictColumns(colKey),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save preference: %w", err)
	}
	return nil
}

func (r *PreferenceRepo) Clear(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(PreferencesTable.Name).
		Where(entsql.EQ(colKey, preference.Key)).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear preference: %w", err)
	}
	return nil
}
