// internal/infra/database/postgres_journal_repository.go
package database

import (
	"context"
	"database/sql"

	"homework_status_bot/internal/domain/notification"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

const journalSchema = `CREATE TABLE IF NOT EXISTS notification_journal (
	id             BIGSERIAL PRIMARY KEY,
	kind           TEXT        NOT NULL,
	chat_id        TEXT        NOT NULL,
	text           TEXT        NOT NULL,
	delivered      BOOLEAN     NOT NULL,
	delivery_error TEXT,
	cursor_at      BIGINT      NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type PostgresJournalRepository struct {
	db *sql.DB
}

func NewPostgresJournalRepository(db *sql.DB) *PostgresJournalRepository {
	return &PostgresJournalRepository{db: db}
}

// EnsureSchema creates the journal table when it does not exist yet.
func (r *PostgresJournalRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, journalSchema); err != nil {
		return errors.Wrap(err, "error creating notification_journal table")
	}
	return nil
}

func (r *PostgresJournalRepository) Record(ctx context.Context, entry *notification.Entry) error {
	query := `INSERT INTO notification_journal (kind, chat_id, text, delivered, delivery_error, cursor_at)
               VALUES ($1, $2, $3, $4, $5, $6)
               RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		entry.Kind, entry.ChatID, entry.Text, entry.Delivered, entry.DeliveryError, entry.Cursor,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return errors.Wrapf(err, "error recording journal entry (pq code %s)", pqErr.Code)
		}
		return errors.Wrap(err, "error recording journal entry")
	}
	return nil
}
