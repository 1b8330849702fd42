// Package history keeps an append-only log of grading events in a SQLite
// database next to the progress snapshot. The log is advisory: statistics
// and exports read it, but the scheduler never does, and a missing or
// broken log must not block studying.
package history

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/example/asnmemo/internal/spaced_repetition"
	"github.com/example/asnmemo/pkg/models"
)

// DBFile is the database file name inside the state directory
const DBFile = "history.db"

// Review is one logged grading event
type Review struct {
	ID             int64     `db:"id"`
	CardID         string    `db:"card_id"`
	Rating         string    `db:"rating"`
	Quality        int       `db:"quality"`
	IntervalDays   int       `db:"interval_days"`
	EasinessFactor float64   `db:"easiness_factor"`
	ReviewedAt     time.Time `db:"reviewed_at"`
}

// Log is a SQLite-backed review journal
type Log struct {
	db *sqlx.DB
}

// Open connects to <dir>/history.db, creating the schema if needed
func Open(dir string) (*Log, error) {
	db, err := sqlx.Connect("sqlite3", filepath.Join(dir, DBFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open review log: %w", err)
	}

	// SQLite allows a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS review_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			card_id TEXT NOT NULL,
			rating TEXT NOT NULL,
			quality INTEGER NOT NULL,
			interval_days INTEGER NOT NULL,
			easiness_factor REAL NOT NULL,
			reviewed_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create review_log table: %w", err)
	}
	return &Log{db: db}, nil
}

// Close closes the underlying database
func (l *Log) Close() error {
	return l.db.Close()
}

// LogReview appends one grading event
func (l *Log) LogReview(cardID string, rating spaced_repetition.Rating, quality int, record models.ReviewRecord) error {
	reviewedAt := time.Now()
	if record.LastReviewedAt != nil {
		reviewedAt = *record.LastReviewedAt
	}
	_, err := l.db.Exec(`
		INSERT INTO review_log (card_id, rating, quality, interval_days, easiness_factor, reviewed_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		cardID, rating.String(), quality, record.IntervalDays, record.EasinessFactor, reviewedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

// CountSince returns how many reviews happened at or after t
func (l *Log) CountSince(t time.Time) (int, error) {
	var count int
	err := l.db.Get(&count, "SELECT COUNT(*) FROM review_log WHERE reviewed_at >= $1", t)
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count, nil
}

// Recent returns the most recent reviews, newest first
func (l *Log) Recent(limit int) ([]Review, error) {
	var reviews []Review
	err := l.db.Select(&reviews, "SELECT * FROM review_log ORDER BY reviewed_at DESC, id DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	return reviews, nil
}

// Reset deletes all logged reviews
func (l *Log) Reset() error {
	if _, err := l.db.Exec("DELETE FROM review_log"); err != nil {
		return fmt.Errorf("failed to clear review log: %w", err)
	}
	return nil
}
