package services

import (
	"context"
	"time"

	"github.com/dkolev/gymtrack/internal/core/domain"
	"github.com/dkolev/gymtrack/internal/persist"
)

// ScheduleService owns the weekly schedule and the "next workout" projection.
type ScheduleService struct {
	store   domain.KVStore
	catalog *CatalogService

	now func() time.Time
}

func NewScheduleService(store domain.KVStore, catalog *CatalogService) *ScheduleService {
	return &ScheduleService{
		store:   store,
		catalog: catalog,
		now:     time.Now,
	}
}

func (s *ScheduleService) Schedule(ctx context.Context) domain.WeekSchedule {
	return persist.Load(ctx, s.store, domain.KeySchedule, domain.WeekSchedule{})
}

// Set overwrites one day's slot. Value is a program id, domain.RestDay, or
// nil to clear the slot.
func (s *ScheduleService) Set(ctx context.Context, dayIndex int, value *string) error {
	if dayIndex < 0 || dayIndex > 6 {
		return domain.ErrInvalidDayIndex
	}
	schedule := s.Schedule(ctx)
	schedule[dayIndex] = value
	persist.Save(ctx, s.store, domain.KeySchedule, schedule)
	return nil
}

// NextWorkout scans forward from today (inclusive) through the week and
// returns the first non-empty slot: a rest marker or a resolved program.
// Returns nil when every slot within 7 days is empty.
func (s *ScheduleService) NextWorkout(ctx context.Context) *domain.NextWorkout {
	schedule := s.Schedule(ctx)
	programs := s.catalog.Programs(ctx)
	today := s.now().Weekday()

	for offset := 0; offset < 7; offset++ {
		weekday := time.Weekday((int(today) + offset) % 7)
		slot := domain.SlotFor(weekday)
		entry := schedule[slot]
		if entry == nil {
			continue
		}

		if *entry == domain.RestDay {
			return &domain.NextWorkout{IsRest: true, DaysUntil: offset, DayIndex: slot}
		}

		if program, ok := programs[*entry]; ok {
			return &domain.NextWorkout{Program: &program, DaysUntil: offset, DayIndex: slot}
		}
	}
	return nil
}
