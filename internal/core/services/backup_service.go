package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dkolev/gymtrack/internal/core/domain"
	"github.com/dkolev/gymtrack/internal/persist"
)

// BackupService bundles history, personal records and the profile into a
// single export document, and applies imports all-or-nothing.
type BackupService struct {
	store domain.KVStore

	now func() time.Time
}

func NewBackupService(store domain.KVStore) *BackupService {
	return &BackupService{
		store: store,
		now:   time.Now,
	}
}

// Export snapshots the current data into a backup bundle.
func (s *BackupService) Export(ctx context.Context) domain.Backup {
	profile := persist.Load(ctx, s.store, domain.KeyProfile, domain.DefaultProfile())
	return domain.Backup{
		History:         persist.Load(ctx, s.store, domain.KeyHistory, []domain.HistorySession{}),
		PersonalRecords: persist.Load(ctx, s.store, domain.KeyRecords, domain.PersonalRecords{}),
		Profile:         &profile,
		ExportedAt:      s.now().UTC(),
	}
}

// Import decodes and validates a backup before touching storage; a malformed
// bundle leaves every key exactly as it was.
func (s *BackupService) Import(ctx context.Context, raw []byte) error {
	var backup domain.Backup
	if err := json.Unmarshal(raw, &backup); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackupInvalid, err)
	}
	if err := backup.Validate(); err != nil {
		return err
	}

	if backup.History != nil {
		persist.Save(ctx, s.store, domain.KeyHistory, backup.History)
	}
	if backup.PersonalRecords != nil {
		persist.Save(ctx, s.store, domain.KeyRecords, backup.PersonalRecords)
	}
	if backup.Profile != nil {
		persist.Save(ctx, s.store, domain.KeyProfile, backup.Profile)
	}

	logrus.WithFields(logrus.Fields{
		"sessions": len(backup.History),
		"records":  len(backup.PersonalRecords),
	}).Info("backup imported")
	return nil
}

// ClearHistory empties the history and personal records. The catalog,
// schedule and profile are untouched.
func (s *BackupService) ClearHistory(ctx context.Context) {
	persist.Save(ctx, s.store, domain.KeyHistory, []domain.HistorySession{})
	persist.Save(ctx, s.store, domain.KeyRecords, domain.PersonalRecords{})
	logrus.Info("workout history cleared")
}
