package progress

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/asnmemo/pkg/models"
)

func sampleRecord(t *testing.T) models.ReviewRecord {
	t.Helper()
	reviewed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return models.ReviewRecord{
		EasinessFactor: 2.6,
		Repetitions:    2,
		IntervalDays:   6,
		DueAt:          reviewed.AddDate(0, 0, 6),
		LastReviewedAt: &reviewed,
		Lapses:         1,
	}
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	store := NewStore(t.TempDir())

	records, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	rec := sampleRecord(t)

	require.NoError(t, store.RecordGrade("3356", rec))
	require.NoError(t, store.RecordGrade("174", models.NewReviewRecord()))

	// A fresh store reading the same file sees identical records
	reloaded, err := NewStore(dir).Load()
	require.NoError(t, err)
	require.Len(t, reloaded, 2)
	got := reloaded["3356"]
	assert.Equal(t, rec.EasinessFactor, got.EasinessFactor)
	assert.Equal(t, rec.Repetitions, got.Repetitions)
	assert.Equal(t, rec.IntervalDays, got.IntervalDays)
	assert.True(t, rec.DueAt.Equal(got.DueAt))
	require.NotNil(t, got.LastReviewedAt)
	assert.True(t, rec.LastReviewedAt.Equal(*got.LastReviewedAt))
	assert.Equal(t, rec.Lapses, got.Lapses)

	fresh := reloaded["174"]
	assert.Nil(t, fresh.LastReviewedAt)
}

func TestSaveCreatesStateDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	store := NewStore(dir)

	require.NoError(t, store.RecordGrade("3356", sampleRecord(t)))
	_, err := os.Stat(filepath.Join(dir, SnapshotFile))
	require.NoError(t, err)
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, store.RecordGrade("3356", sampleRecord(t)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, SnapshotFile, entries[0].Name())
}

func TestLoadMalformedSnapshot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SnapshotFile), []byte("{not json"), 0644))

	store := NewStore(dir)
	records, err := store.Load()

	var corrupt *CorruptStateError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, store.Path(), corrupt.Path)
	// The caller that chooses to continue starts from a clean slate
	assert.Empty(t, records)
	assert.Empty(t, store.Records())
}

func TestLoadRejectsInvalidRecords(t *testing.T) {
	dir := t.TempDir()
	// Parses as JSON but violates the easiness floor
	snapshot := `{"3356": {"easiness_factor": 0.5, "repetition_count": 1, "interval_days": 3, "due_at": "2026-03-01T10:00:00Z", "last_reviewed_at": null, "lapse_count": 0}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, SnapshotFile), []byte(snapshot), 0644))

	records, err := NewStore(dir).Load()

	var corrupt *CorruptStateError
	require.ErrorAs(t, err, &corrupt)
	assert.Empty(t, records)
}

func TestSnapshotFieldNames(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, store.RecordGrade("3356", sampleRecord(t)))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	for _, field := range []string{
		`"easiness_factor"`, `"repetition_count"`, `"interval_days"`,
		`"due_at"`, `"last_reviewed_at"`, `"lapse_count"`,
	} {
		assert.Contains(t, string(data), field)
	}
}

func TestRecordGradeRollsBackOnSaveFailure(t *testing.T) {
	// A regular file where the state directory should be makes Save fail
	blocked := filepath.Join(t.TempDir(), "state")
	require.NoError(t, os.WriteFile(blocked, []byte("in the way"), 0644))
	store := NewStore(blocked)

	// Never-studied card: a failed grade must not leave a phantom record
	require.Error(t, store.RecordGrade("3356", sampleRecord(t)))
	assert.Empty(t, store.Records())

	// Already-studied card: a failed grade must keep the persisted state
	old := sampleRecord(t)
	store.records["174"] = old
	updated := old
	updated.Repetitions = 3
	updated.IntervalDays = 16
	require.Error(t, store.RecordGrade("174", updated))
	assert.Equal(t, old, store.Records()["174"])
}

func TestReset(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, store.RecordGrade("3356", sampleRecord(t)))

	require.NoError(t, store.Reset())
	assert.Empty(t, store.Records())
	_, err := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))

	// Resetting twice is fine
	require.NoError(t, store.Reset())
}
