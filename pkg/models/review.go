package models

import "time"

// SM-2 defaults. MinEasinessFactor is a hard floor: every write path must
// clamp against it, not only initialization.
const (
	DefaultEasinessFactor = 2.5
	MinEasinessFactor     = 1.3
)

// ReviewRecord tracks the memory-strength state of a single card using the
// SM-2 algorithm. Records are value types: grading produces a new record
// and the old one is discarded.
type ReviewRecord struct {
	EasinessFactor float64    `json:"easiness_factor"`
	Repetitions    int        `json:"repetition_count"` // Consecutive successful recalls since the last lapse
	IntervalDays   int        `json:"interval_days"`    // Days until the next scheduled review
	DueAt          time.Time  `json:"due_at"`           // When the card becomes eligible again
	LastReviewedAt *time.Time `json:"last_reviewed_at"` // Nil means never studied
	Lapses         int        `json:"lapse_count"`      // Total failed recalls, kept for statistics
}

// NewReviewRecord returns the state of a card that has never been studied.
// DueAt is left at the zero time, which sorts before any real timestamp.
func NewReviewRecord() ReviewRecord {
	return ReviewRecord{
		EasinessFactor: DefaultEasinessFactor,
	}
}

// IsDue reports whether the card is eligible for review at the given time.
// A never-studied card is always due.
func (r ReviewRecord) IsDue(now time.Time) bool {
	return r.LastReviewedAt == nil || !r.DueAt.After(now)
}

// Valid checks the structural invariants of a record. The store uses it to
// reject snapshots that parsed as JSON but hold impossible values.
func (r ReviewRecord) Valid() bool {
	if r.EasinessFactor < MinEasinessFactor {
		return false
	}
	if r.Repetitions < 0 || r.IntervalDays < 0 || r.Lapses < 0 {
		return false
	}
	if r.Repetitions == 0 && r.IntervalDays > 1 {
		return false
	}
	return true
}
