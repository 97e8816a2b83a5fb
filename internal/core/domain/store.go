package domain

import (
	"context"
	"errors"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrStorageFull = errors.New("storage full")
)

// Persisted document keys. One JSON document per key; no transaction spans two
// keys, so related documents can drift if a write between two Sets is lost.
const (
	KeyExercises = "gym_exercises"
	KeyPrograms  = "gym_programs"
	KeySchedule  = "gym_schedule"
	KeyHistory   = "gym_history"
	KeyRecords   = "gym_prs"
	KeyProfile   = "gym_profile"
	KeyNutrition = "gym_nutrition"
	KeyReminders = "gym_reminders"
	KeyActive    = "gym_active"

	checklistKeyPrefix = "gym_checklist_"
)

// ChecklistKey returns the storage key for one calendar day's checklist.
// A day that has never been touched simply has no document under its key.
func ChecklistKey(date string) string {
	return checklistKeyPrefix + date
}

// KVStore is the persistence boundary. Values are opaque JSON documents;
// adapters exist for memory, postgres and redis.
type KVStore interface {
	// Get returns the raw document stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes the document under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the document under key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error
}
