// internal/app/poller.go
package app

import (
	"context"
	"database/sql"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/domain/notification"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// FailurePrefix starts every failure report sent to the chat.
const FailurePrefix = "Сбой в работе программы: "

// StatusFetcher performs one request to the homework API.
type StatusFetcher interface {
	FetchStatuses(ctx context.Context, fromDate int64) (any, error)
}

// UnexpectedError wraps a failure outside the service/validation/notifier taxonomy.
// It is reported like any other failure and then returned from Cycle.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string { return "непредвиденная ошибка: " + e.Err.Error() }

func (e *UnexpectedError) Unwrap() error { return e.Err }

// Poller tracks one submission. All of its state is owned by the goroutine calling Cycle.
type Poller struct {
	fetcher        StatusFetcher
	telegramClient domainTelegram.Client
	journal        notification.Journal
	chatID         string
	logger         *logrus.Entry

	cursor     int64            // from_date for the next fetch, never decreases
	lastRecord *homework.Record // nil until the first status is processed
	lastError  string           // last failure report delivered to the chat
}

func NewPoller(
	fetcher StatusFetcher,
	tc domainTelegram.Client,
	journal notification.Journal,
	chatID string,
	logger *logrus.Entry,
) *Poller {
	if journal == nil {
		journal = notification.NopJournal{}
	}
	return &Poller{
		fetcher:        fetcher,
		telegramClient: tc,
		journal:        journal,
		chatID:         chatID,
		logger:         logger,
	}
}

// Cycle runs one fetch-validate-notify pass. Recoverable failures are reported
// to the chat and swallowed; only *UnexpectedError is returned.
func (p *Poller) Cycle(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = p.handleFailure(ctx, errors.Newf("poll cycle panicked: %v", r))
		}
	}()

	record, err := p.fetchLatest(ctx)
	if err != nil {
		return p.handleFailure(ctx, err)
	}

	if p.lastRecord != nil && record.Equal(*p.lastRecord) {
		p.logger.WithField("homework", record.Name).Debug("Homework status has not changed")
		return nil
	}

	message, err := homework.Render(record)
	if err != nil {
		return p.handleFailure(ctx, err)
	}
	updatedAt, err := record.UpdatedAtUnix()
	if err != nil {
		return p.handleFailure(ctx, err)
	}

	logCtx := p.logger.WithFields(logrus.Fields{
		"homework": record.Name,
		"status":   record.Status,
	})
	logCtx.Info("Homework status changed")

	// Delivery failures are local: the record is valid, so it is stored and
	// the cursor moves on either way.
	if err := p.send(ctx, notification.KindStatus, message); err != nil {
		logCtx.WithError(err).Error("Failed to send status notification to Telegram")
	} else {
		logCtx.Info("Status notification sent to Telegram")
	}

	p.lastRecord = &record
	if updatedAt > p.cursor {
		p.cursor = updatedAt
	}
	return nil
}

func (p *Poller) fetchLatest(ctx context.Context) (homework.Record, error) {
	payload, err := p.fetcher.FetchStatuses(ctx, p.cursor)
	if err != nil {
		return homework.Record{}, err
	}
	return homework.Extract(payload)
}

func (p *Poller) handleFailure(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		p.logger.WithError(err).Info("Poll cycle interrupted by shutdown")
		return nil
	}

	kind, recoverable := classify(err)
	if !recoverable {
		err = &UnexpectedError{Err: err}
	}

	logCtx := p.logger.WithError(err).WithField("kind", kind)
	logCtx.Error("Poll cycle failed")

	message := FailurePrefix + err.Error()
	if message == p.lastError {
		logCtx.Debug("Failure already reported, not sending it again")
	} else if sendErr := p.send(ctx, notification.KindError, message); sendErr != nil {
		logCtx.WithField("send_error", sendErr.Error()).Error("Failed to send failure report to Telegram")
	} else {
		p.lastError = message
	}

	if !recoverable {
		return err
	}
	return nil
}

// classify maps an error onto the recoverable taxonomy. The second result is
// false for anything outside it.
func classify(err error) (string, bool) {
	var serviceErr *homework.ServiceError
	var validationErr *homework.ValidationError
	var notifierErr *homework.NotifierError

	switch {
	case errors.As(err, &serviceErr):
		return "service/" + string(serviceErr.Kind), true
	case errors.As(err, &validationErr):
		return "validation/" + string(validationErr.Kind), true
	case errors.As(err, &notifierErr):
		return "notifier/" + string(notifierErr.Kind), true
	default:
		return "unexpected", false
	}
}

// send delivers text to the chat and journals the attempt.
func (p *Poller) send(ctx context.Context, kind notification.Kind, text string) error {
	p.logger.WithField("message_kind", kind).Debug("Sending message to Telegram")
	err := p.telegramClient.SendMessage(p.chatID, text, nil)

	entry := &notification.Entry{
		Kind:      kind,
		ChatID:    p.chatID,
		Text:      text,
		Delivered: err == nil,
		Cursor:    p.cursor,
	}
	if err != nil {
		entry.DeliveryError = sql.NullString{String: err.Error(), Valid: true}
	}
	if jerr := p.journal.Record(ctx, entry); jerr != nil {
		p.logger.WithError(jerr).Warn("Failed to record journal entry")
	}
	return err
}
