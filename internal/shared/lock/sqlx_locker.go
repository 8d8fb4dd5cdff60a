package lock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/joshuarp/image-derivative-api/internal/shared/uid"
)

var _ Locker = (*SQLXLocker)(nil)

// SQLXLocker keeps locks as rows of the semaphore table (name, value, expire).
// An expired row can be taken over by the next caller.
type SQLXLocker struct {
	db  *sqlx.DB
	ids uid.UIDGenerator
	now func() time.Time
}

func NewSQLXLocker(db *sqlx.DB, ids uid.UIDGenerator) *SQLXLocker {
	return &SQLXLocker{
		db:  db,
		ids: ids,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (l *SQLXLocker) Acquire(ctx context.Context, name string, ttl time.Duration) (Lease, bool, error) {
	if l == nil || l.db == nil {
		return Lease{}, false, errors.New("lock: sqlx locker is not initialized")
	}
	if err := validateName(name); err != nil {
		return Lease{}, false, err
	}

	token, err := l.ids.Generate(ctx)
	if err != nil {
		return Lease{}, false, fmt.Errorf("lock: failed to generate owner token: %w", err)
	}

	ok, err := l.acquire(ctx, name, token, ttl)
	if err != nil || !ok {
		return Lease{}, false, err
	}
	return Lease{Name: name, Token: token}, true, nil
}

func (l *SQLXLocker) acquire(ctx context.Context, name, token string, ttl time.Duration) (bool, error) {
	now := l.now()
	expire := now.Add(normalizeTTL(ttl))

	tx, err := l.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("lock: failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	const selectQuery = `
SELECT expire
FROM semaphore
WHERE name = $1
FOR UPDATE`

	var current time.Time
	err = tx.GetContext(ctx, &current, selectQuery, name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		const insertQuery = `
INSERT INTO semaphore (name, value, expire)
VALUES ($1, $2, $3)
ON CONFLICT (name) DO NOTHING`

		result, insertErr := tx.ExecContext(ctx, insertQuery, name, token, expire)
		if insertErr != nil {
			return false, fmt.Errorf("lock: failed to insert semaphore: %w", insertErr)
		}
		inserted, rowsErr := result.RowsAffected()
		if rowsErr != nil {
			return false, fmt.Errorf("lock: failed to read affected rows: %w", rowsErr)
		}
		if commitErr := tx.Commit(); commitErr != nil {
			return false, fmt.Errorf("lock: failed to commit acquire insert: %w", commitErr)
		}
		if inserted == 0 {
			return false, nil
		}

	case err != nil:
		return false, fmt.Errorf("lock: failed to query semaphore: %w", err)

	case current.After(now):
		if commitErr := tx.Commit(); commitErr != nil {
			return false, fmt.Errorf("lock: failed to commit held read: %w", commitErr)
		}
		return false, nil

	default:
		const takeoverQuery = `
UPDATE semaphore
SET value = $2, expire = $3
WHERE name = $1`

		if _, updateErr := tx.ExecContext(ctx, takeoverQuery, name, token, expire); updateErr != nil {
			return false, fmt.Errorf("lock: failed to take over expired semaphore: %w", updateErr)
		}
		if commitErr := tx.Commit(); commitErr != nil {
			return false, fmt.Errorf("lock: failed to commit takeover: %w", commitErr)
		}
	}

	return true, nil
}

func (l *SQLXLocker) Refresh(ctx context.Context, lease Lease, ttl time.Duration) (bool, error) {
	if l == nil || l.db == nil {
		return false, errors.New("lock: sqlx locker is not initialized")
	}
	if err := validateLease(lease); err != nil {
		return false, err
	}

	const refreshQuery = `
UPDATE semaphore
SET expire = $3
WHERE name = $1 AND value = $2`

	result, err := l.db.ExecContext(ctx, refreshQuery, lease.Name, lease.Token, l.now().Add(normalizeTTL(ttl)))
	if err != nil {
		return false, fmt.Errorf("lock: failed to refresh semaphore: %w", err)
	}
	updated, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("lock: failed to read affected rows: %w", err)
	}
	return updated == 1, nil
}

func (l *SQLXLocker) Release(ctx context.Context, lease Lease) error {
	if l == nil || l.db == nil {
		return errors.New("lock: sqlx locker is not initialized")
	}
	if err := validateLease(lease); err != nil {
		return err
	}

	const deleteQuery = `DELETE FROM semaphore WHERE name = $1 AND value = $2`
	result, err := l.db.ExecContext(ctx, deleteQuery, lease.Name, lease.Token)
	if err != nil {
		return fmt.Errorf("lock: failed to delete semaphore: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("lock: failed to read affected rows: %w", err)
	}
	if deleted == 0 {
		return ErrNotHeld
	}
	return nil
}
