// internal/domain/notification/journal.go
package notification

import (
	"context"
	"database/sql"
	"time"
)

// Kind tells what an outbound message was about.
type Kind string

const (
	KindStatus Kind = "STATUS" // a homework status change
	KindError  Kind = "ERROR"  // a failure report
)

// Entry is one outbound send attempt.
// Corresponds to the 'notification_journal' table.
type Entry struct {
	ID            int64
	Kind          Kind
	ChatID        string
	Text          string
	Delivered     bool
	DeliveryError sql.NullString
	Cursor        int64 // poll cursor at the time of the attempt
	CreatedAt     time.Time
}

// Journal records outbound messages for auditing. It is write-only:
// nothing reads it back to rebuild poll state.
type Journal interface {
	Record(ctx context.Context, entry *Entry) error
}

// NopJournal drops every entry. Used when no database is configured.
type NopJournal struct{}

func (NopJournal) Record(context.Context, *Entry) error { return nil }
