package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/asnmemo/internal/spaced_repetition"
	"github.com/example/asnmemo/pkg/models"
)

func openTestLog(t *testing.T) *Log {
	t.Helper()
	l, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func gradedAt(at time.Time) models.ReviewRecord {
	return models.ReviewRecord{
		EasinessFactor: 2.6,
		Repetitions:    1,
		IntervalDays:   1,
		DueAt:          at.AddDate(0, 0, 1),
		LastReviewedAt: &at,
	}
}

func TestLogReviewAndCount(t *testing.T) {
	l := openTestLog(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, l.LogReview("3356", spaced_repetition.RatingGood, 4, gradedAt(base)))
	require.NoError(t, l.LogReview("174", spaced_repetition.RatingAgain, 0, gradedAt(base.Add(time.Hour))))
	require.NoError(t, l.LogReview("3356", spaced_repetition.RatingEasy, 5, gradedAt(base.Add(2*time.Hour))))

	count, err := l.CountSince(base)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = l.CountSince(base.Add(30 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = l.CountSince(base.Add(24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRecentNewestFirst(t *testing.T) {
	l := openTestLog(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, l.LogReview("3356", spaced_repetition.RatingGood, 4, gradedAt(base)))
	require.NoError(t, l.LogReview("174", spaced_repetition.RatingEasy, 5, gradedAt(base.Add(time.Hour))))

	reviews, err := l.Recent(10)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "174", reviews[0].CardID)
	assert.Equal(t, "Easy", reviews[0].Rating)
	assert.Equal(t, 5, reviews[0].Quality)
	assert.Equal(t, "3356", reviews[1].CardID)

	reviews, err = l.Recent(1)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "174", reviews[0].CardID)
}

func TestResetClearsLog(t *testing.T) {
	l := openTestLog(t)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, l.LogReview("3356", spaced_repetition.RatingGood, 4, gradedAt(now)))

	require.NoError(t, l.Reset())

	count, err := l.CountSince(time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	l1, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, l1.Close())

	// Re-opening an existing database keeps its rows
	l2, err := Open(dir)
	require.NoError(t, err)
	defer l2.Close()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, l2.LogReview("3356", spaced_repetition.RatingGood, 4, gradedAt(now)))
	count, err := l2.CountSince(time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
