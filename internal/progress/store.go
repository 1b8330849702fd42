// Package progress persists review records as a JSON snapshot, one file
// per learner. Saves are atomic (write to a temp file, then rename) so an
// interrupted process never leaves a half-written snapshot behind.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/asnmemo/pkg/models"
)

// SnapshotFile is the file name inside the state directory
const SnapshotFile = "progress.json"

// CorruptStateError reports a snapshot that exists but cannot be parsed
// into valid records. Callers may treat it as "start fresh"; the store
// never silently mixes in partially parsed data.
type CorruptStateError struct {
	Path string
	Err  error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt progress snapshot %s: %v", e.Path, e.Err)
}

func (e *CorruptStateError) Unwrap() error {
	return e.Err
}

// Store reads and writes the progress snapshot for one learner
type Store struct {
	path    string
	records map[string]models.ReviewRecord
}

// NewStore creates a store backed by <dir>/progress.json. The directory is
// created on the first save, not here.
func NewStore(dir string) *Store {
	return &Store{
		path:    filepath.Join(dir, SnapshotFile),
		records: make(map[string]models.ReviewRecord),
	}
}

// Path returns the snapshot location
func (s *Store) Path() string {
	return s.path
}

// Load reads the snapshot from disk into the store and returns the
// records. A missing file yields an empty map. A file that exists but does
// not parse into valid records yields a *CorruptStateError; the store's
// in-memory state is left empty in that case, so a caller that chooses to
// continue starts from scratch rather than from partial data.
func (s *Store) Load() (map[string]models.ReviewRecord, error) {
	s.records = make(map[string]models.ReviewRecord)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s.records, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read progress snapshot: %w", err)
	}

	var parsed map[string]models.ReviewRecord
	if err := json.Unmarshal(data, &parsed); err != nil {
		return s.records, &CorruptStateError{Path: s.path, Err: err}
	}
	for id, rec := range parsed {
		if !rec.Valid() {
			return s.records, &CorruptStateError{
				Path: s.path,
				Err:  fmt.Errorf("record %q violates invariants", id),
			}
		}
	}

	s.records = parsed
	return s.records, nil
}

// Records returns the in-memory mapping. Callers mutate it only through
// RecordGrade.
func (s *Store) Records() map[string]models.ReviewRecord {
	return s.records
}

// Save writes the full mapping to disk, replacing the previous snapshot.
// The write goes to a temp file in the same directory followed by a
// rename, so load never observes a torn snapshot.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write progress snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace progress snapshot: %w", err)
	}
	return nil
}

// RecordGrade stores the new record for a card and flushes the snapshot.
// An interrupted process loses at most the in-flight grade. If the save
// fails, the in-memory entry is rolled back to match the snapshot on
// disk, so a retried grade starts from the persisted state instead of
// compounding on an unsaved one.
func (s *Store) RecordGrade(cardID string, record models.ReviewRecord) error {
	prev, existed := s.records[cardID]
	s.records[cardID] = record
	if err := s.Save(); err != nil {
		if existed {
			s.records[cardID] = prev
		} else {
			delete(s.records, cardID)
		}
		return err
	}
	return nil
}

// Reset deletes the snapshot and clears the in-memory state
func (s *Store) Reset() error {
	s.records = make(map[string]models.ReviewRecord)
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete progress snapshot: %w", err)
	}
	return nil
}
