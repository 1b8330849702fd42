// Package spaced_repetition implements the SuperMemo-2 scheduling
// algorithm. Grading is a pure function from (record, rating, time) to a
// new record; persistence and card selection live elsewhere.
package spaced_repetition

import (
	"math"
	"time"

	"github.com/example/asnmemo/pkg/models"
)

// PassThreshold is the SM-2 quality value at and above which a recall
// counts as a success. Anything below it is a lapse.
const PassThreshold = 3

// SM2 holds the tunable parameters of the algorithm
type SM2 struct {
	// Maps the four UI ratings onto the 0-5 quality scale
	Scale RatingScale
	// Interval after the first success in a streak, in days
	FirstInterval int
	// Interval after the second success in a streak, in days
	SecondInterval int
}

// NewSM2 returns an SM2 instance with the standard parameters
func NewSM2() *SM2 {
	return &SM2{
		Scale:          DefaultRatingScale(),
		FirstInterval:  1,
		SecondInterval: 6,
	}
}

// Grade applies the SM-2 algorithm to a card's current record and returns
// the updated record. The input record is not modified.
//
// The easiness factor is updated first and clamped to the 1.3 floor; the
// new interval for a mature card (third success onward) uses the updated
// factor. A quality below PassThreshold resets the streak to a one-day
// interval regardless of prior history.
func (sm *SM2) Grade(record models.ReviewRecord, rating Rating, now time.Time) (models.ReviewRecord, error) {
	quality, ok := sm.Scale[rating]
	if !ok {
		return models.ReviewRecord{}, &InvalidRatingError{Rating: rating}
	}

	next := record

	// EF' = EF + (0.1 - (5-q) * (0.08 + (5-q) * 0.02))
	q := float64(quality)
	ef := record.EasinessFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ef < models.MinEasinessFactor {
		ef = models.MinEasinessFactor
	}
	next.EasinessFactor = ef

	if quality >= PassThreshold {
		switch record.Repetitions {
		case 0:
			next.IntervalDays = sm.FirstInterval
		case 1:
			next.IntervalDays = sm.SecondInterval
		default:
			next.IntervalDays = int(math.Round(float64(record.IntervalDays) * ef))
		}
		next.Repetitions = record.Repetitions + 1
	} else {
		// Lapse: relearn from the shortest interval
		next.Repetitions = 0
		next.IntervalDays = 1
		next.Lapses = record.Lapses + 1
	}

	reviewed := now
	next.LastReviewedAt = &reviewed
	next.DueAt = now.AddDate(0, 0, next.IntervalDays)

	return next, nil
}
