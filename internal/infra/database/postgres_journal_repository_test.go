package database

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"homework_status_bot/internal/domain/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real database only when TEST_DATABASE_URL is set.
func TestPostgresJournalRepository_Record(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	db, err := NewPostgresConnection(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresJournalRepository(db)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx), "schema creation must be idempotent")

	entry := &notification.Entry{
		Kind:          notification.KindError,
		ChatID:        "42",
		Text:          "Сбой в работе программы: test",
		Delivered:     false,
		DeliveryError: sql.NullString{String: "chat not found", Valid: true},
		Cursor:        1700000000,
	}
	require.NoError(t, repo.Record(ctx, entry))
	assert.NotZero(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())

	var kind, text string
	var delivered bool
	err = db.QueryRowContext(ctx, `SELECT kind, text, delivered FROM notification_journal WHERE id = $1`, entry.ID).
		Scan(&kind, &text, &delivered)
	require.NoError(t, err)
	assert.Equal(t, string(notification.KindError), kind)
	assert.Equal(t, entry.Text, text)
	assert.False(t, delivered)
}
