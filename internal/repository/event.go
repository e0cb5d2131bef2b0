package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/passgen/passgen-go/internal/model"
)

const createEventsTable = `
	CREATE TABLE IF NOT EXISTS password_events (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		length     INT NOT NULL,
		class_mask TINYINT UNSIGNED NOT NULL,
		verdict    VARCHAR(16) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_password_events_created_at (created_at)
	)`

// EventRepository stores anonymized generation events.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// EnsureSchema creates the password_events table if it does not exist.
func (r *EventRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createEventsTable)
	return err
}

// Insert records an event and sets the generated ID on it.
func (r *EventRepository) Insert(ctx context.Context, event *model.PasswordEvent) error {
	query := `INSERT INTO password_events (length, class_mask, verdict) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, event.Length, event.ClassMask, event.Verdict)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	event.ID = id
	return nil
}

// CountByVerdict returns the number of events per verdict, optionally limited
// to events created after since.
func (r *EventRepository) CountByVerdict(ctx context.Context, since *time.Time) (map[string]int64, error) {
	query, args := countByVerdictQuery(since)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			verdict string
			n       int64
		)
		if err := rows.Scan(&verdict, &n); err != nil {
			return nil, err
		}
		counts[verdict] = n
	}

	return counts, rows.Err()
}

func countByVerdictQuery(since *time.Time) (string, []any) {
	if since == nil {
		return `SELECT verdict, COUNT(*) FROM password_events GROUP BY verdict`, nil
	}
	return `SELECT verdict, COUNT(*) FROM password_events WHERE created_at > ? GROUP BY verdict`, []any{*since}
}
