package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrBackupEmpty   = errors.New("backup contains no data")
	ErrBackupInvalid = errors.New("invalid backup file")
)

// Backup is the full export bundle. History and records are always present in
// an export; Profile may be nil in bundles written by older versions.
type Backup struct {
	History         []HistorySession `json:"history"`
	PersonalRecords PersonalRecords  `json:"personalRecords"`
	Profile         *UserProfile     `json:"profile,omitempty"`
	ExportedAt      time.Time        `json:"exportedAt"`
}

// Validate checks the bundle shape before anything is applied, so an import
// is all-or-nothing.
func (b *Backup) Validate() error {
	if b.History == nil && b.PersonalRecords == nil && b.Profile == nil {
		return ErrBackupEmpty
	}
	for i, s := range b.History {
		if s.ID == "" {
			return fmt.Errorf("%w: history[%d] missing id", ErrBackupInvalid, i)
		}
		if _, err := time.Parse("2006-01-02", s.Date); err != nil {
			return fmt.Errorf("%w: history[%d] bad date %q", ErrBackupInvalid, i, s.Date)
		}
		for _, ex := range s.Exercises {
			if ex.ExerciseID == "" {
				return fmt.Errorf("%w: history[%d] entry missing exercise id", ErrBackupInvalid, i)
			}
			for _, set := range ex.Sets {
				if set.Weight < 0 || set.Reps < 0 {
					return fmt.Errorf("%w: history[%d] negative set values", ErrBackupInvalid, i)
				}
			}
		}
	}
	for id, weight := range b.PersonalRecords {
		if id == "" {
			return fmt.Errorf("%w: personal record with empty exercise id", ErrBackupInvalid)
		}
		if weight < 0 {
			return fmt.Errorf("%w: negative personal record for %s", ErrBackupInvalid, id)
		}
	}
	return nil
}
