// Package scheduler decides which card to present next and turns grading
// events into updated review records. It owns no I/O of its own: selection
// and grading are pure computations over the progress store's records.
package scheduler

import (
	"log"
	"sort"
	"time"

	"github.com/example/asnmemo/internal/catalog"
	"github.com/example/asnmemo/internal/progress"
	"github.com/example/asnmemo/internal/spaced_repetition"
	"github.com/example/asnmemo/pkg/models"
)

// DefaultNewPerSession limits how many never-studied cards a single study
// session introduces
const DefaultNewPerSession = 10

// ReviewLog receives a copy of every grading event and answers simple
// questions about past reviews. Logging failures are non-fatal: the
// snapshot, not the log, is the source of truth.
type ReviewLog interface {
	LogReview(cardID string, rating spaced_repetition.Rating, quality int, record models.ReviewRecord) error
	CountSince(t time.Time) (int, error)
}

// Scheduler composes the SM-2 algorithm, the card catalog and the progress
// store into the study workflow
type Scheduler struct {
	sm2     *spaced_repetition.SM2
	catalog *catalog.Catalog
	store   *progress.Store
	journal ReviewLog // optional
}

// New creates a scheduler. journal may be nil.
func New(cat *catalog.Catalog, store *progress.Store, journal ReviewLog) *Scheduler {
	return &Scheduler{
		sm2:     spaced_repetition.NewSM2(),
		catalog: cat,
		store:   store,
		journal: journal,
	}
}

// Record returns the review record for a card, or a fresh default if the
// card has never been studied
func (s *Scheduler) Record(cardID string) (models.ReviewRecord, bool) {
	rec, ok := s.store.Records()[cardID]
	if !ok {
		return models.NewReviewRecord(), false
	}
	return rec, true
}

// NextDue returns the most overdue eligible card, or false when nothing is
// due. A card is eligible if it has never been studied or its due time has
// arrived. Never-studied cards sort as due at the epoch, i.e. most overdue
// of all; ties are broken by catalog order, so repeated calls with the same
// state return the same card.
func (s *Scheduler) NextDue(now time.Time) (models.Network, bool) {
	due := s.DueCards(now)
	if len(due) == 0 {
		return models.Network{}, false
	}
	return due[0], true
}

// DueCards returns every eligible card ordered by ascending due time, with
// never-studied cards first and catalog order as the tie-break
func (s *Scheduler) DueCards(now time.Time) []models.Network {
	records := s.store.Records()

	type dueCard struct {
		network models.Network
		dueAt   time.Time // zero for never-studied
		index   int
	}
	var due []dueCard
	for i, n := range s.catalog.All() {
		rec, studied := records[n.ID()]
		switch {
		case !studied:
			due = append(due, dueCard{network: n, index: i})
		case rec.IsDue(now):
			due = append(due, dueCard{network: n, dueAt: rec.DueAt, index: i})
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if !due[i].dueAt.Equal(due[j].dueAt) {
			return due[i].dueAt.Before(due[j].dueAt)
		}
		return due[i].index < due[j].index
	})

	out := make([]models.Network, len(due))
	for i, d := range due {
		out[i] = d.network
	}
	return out
}

// NewCards returns up to limit never-studied cards in catalog order
func (s *Scheduler) NewCards(limit int) []models.Network {
	records := s.store.Records()
	var out []models.Network
	for _, n := range s.catalog.All() {
		if len(out) >= limit {
			break
		}
		if _, ok := records[n.ID()]; !ok {
			out = append(out, n)
		}
	}
	return out
}

// SessionQueue builds one study session: all cards whose review is due,
// followed by up to newLimit cards that have never been studied
func (s *Scheduler) SessionQueue(now time.Time, newLimit int) []models.Network {
	records := s.store.Records()
	var queue []models.Network
	for _, n := range s.DueCards(now) {
		if _, studied := records[n.ID()]; studied {
			queue = append(queue, n)
		}
	}
	return append(queue, s.NewCards(newLimit)...)
}

// Grade processes a learner's rating for a card: computes the new review
// record, persists it, and appends the event to the review log. The
// returned record reflects what was persisted. A save failure is returned
// to the caller; a log failure is not.
func (s *Scheduler) Grade(cardID string, rating spaced_repetition.Rating, now time.Time) (models.ReviewRecord, error) {
	current, _ := s.Record(cardID)

	next, err := s.sm2.Grade(current, rating, now)
	if err != nil {
		return models.ReviewRecord{}, err
	}

	if err := s.store.RecordGrade(cardID, next); err != nil {
		return models.ReviewRecord{}, err
	}

	if s.journal != nil {
		quality := s.sm2.Scale[rating]
		if err := s.journal.LogReview(cardID, rating, quality, next); err != nil {
			log.Printf("review log write failed: %v", err)
		}
	}
	return next, nil
}

// MasteredThreshold is the streak length at which a card counts as
// mastered for statistics purposes
const MasteredThreshold = 3

// Statistics aggregates the review records into per-tier and overall
// counts. It performs no scheduling logic, only counting.
func (s *Scheduler) Statistics(now time.Time) models.Statistics {
	records := s.store.Records()

	stats := models.Statistics{TotalCards: s.catalog.Len()}
	byTier := make(map[models.Tier]*models.TierStats, len(models.Tiers))
	for _, t := range models.Tiers {
		byTier[t] = &models.TierStats{Tier: t}
	}

	var easeSum float64
	for _, n := range s.catalog.All() {
		ts := byTier[n.Tier]
		ts.Total++

		rec, studied := records[n.ID()]
		if !studied {
			continue
		}
		stats.Studied++
		ts.Studied++
		easeSum += rec.EasinessFactor
		stats.TotalLapses += rec.Lapses
		ts.Lapses += rec.Lapses
		if rec.IsDue(now) {
			stats.Due++
			ts.Due++
		}
		if rec.Repetitions >= MasteredThreshold {
			stats.Mastered++
			ts.Mastered++
		}
	}
	stats.Learning = stats.Studied - stats.Mastered
	if stats.Studied > 0 {
		stats.AverageEase = easeSum / float64(stats.Studied)
	}

	if s.journal != nil {
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		count, err := s.journal.CountSince(midnight)
		if err != nil {
			log.Printf("review log read failed: %v", err)
		} else {
			stats.ReviewsToday = count
		}
	}

	for _, t := range models.Tiers {
		stats.ByTier = append(stats.ByTier, *byTier[t])
	}
	return stats
}
