package services

import (
	"context"
	"time"

	"github.com/dkolev/gymtrack/internal/core/domain"
	"github.com/dkolev/gymtrack/internal/persist"
)

// NutritionService owns the daily checklist, the nutrition targets, the meal
// plan projection and the reminder settings. The checklist is keyed by local
// date; a new day simply reads a fresh zero-value record from a key that has
// never been written.
type NutritionService struct {
	store domain.KVStore

	now func() time.Time
}

func NewNutritionService(store domain.KVStore) *NutritionService {
	return &NutritionService{
		store: store,
		now:   time.Now,
	}
}

func (s *NutritionService) todayKey() string {
	return domain.ChecklistKey(s.now().Format("2006-01-02"))
}

// Checklist returns today's record, zero-valued when the day is untouched.
func (s *NutritionService) Checklist(ctx context.Context) domain.DailyChecklist {
	checklist := persist.Load(ctx, s.store, s.todayKey(), domain.DailyChecklist{})
	if checklist.MealsEaten == nil {
		checklist.MealsEaten = []int{}
	}
	return checklist
}

func (s *NutritionService) save(ctx context.Context, checklist domain.DailyChecklist) domain.DailyChecklist {
	persist.Save(ctx, s.store, s.todayKey(), checklist)
	return checklist
}

func (s *NutritionService) ToggleVitamin(ctx context.Context) domain.DailyChecklist {
	checklist := s.Checklist(ctx)
	checklist.Vitamin = !checklist.Vitamin
	return s.save(ctx, checklist)
}

func (s *NutritionService) IncrementWater(ctx context.Context) domain.DailyChecklist {
	checklist := s.Checklist(ctx)
	checklist.Water++
	return s.save(ctx, checklist)
}

func (s *NutritionService) DecrementWater(ctx context.Context) domain.DailyChecklist {
	checklist := s.Checklist(ctx)
	if checklist.Water > 0 {
		checklist.Water--
	}
	return s.save(ctx, checklist)
}

func (s *NutritionService) SetCaloriesConsumed(ctx context.Context, calories float64) domain.DailyChecklist {
	checklist := s.Checklist(ctx)
	checklist.CaloriesConsumed = calories
	return s.save(ctx, checklist)
}

func (s *NutritionService) ToggleMealPlan(ctx context.Context) domain.DailyChecklist {
	checklist := s.Checklist(ctx)
	checklist.MealPlanFollowed = !checklist.MealPlanFollowed
	return s.save(ctx, checklist)
}

// ToggleMealEaten toggles membership of one meal slot in today's eaten list,
// adjusting consumed calories by the meal's share (floored at zero). The day
// counts as plan-followed once all six slots are eaten.
func (s *NutritionService) ToggleMealEaten(ctx context.Context, mealIndex int, mealCalories float64) domain.DailyChecklist {
	checklist := s.Checklist(ctx)

	eaten := false
	kept := checklist.MealsEaten[:0]
	for _, idx := range checklist.MealsEaten {
		if idx == mealIndex {
			eaten = true
			continue
		}
		kept = append(kept, idx)
	}

	if eaten {
		checklist.MealsEaten = kept
		checklist.CaloriesConsumed -= mealCalories
	} else {
		checklist.MealsEaten = append(kept, mealIndex)
		checklist.CaloriesConsumed += mealCalories
	}
	if checklist.CaloriesConsumed < 0 {
		checklist.CaloriesConsumed = 0
	}
	checklist.MealPlanFollowed = len(checklist.MealsEaten) >= domain.MealsPerDay

	return s.save(ctx, checklist)
}

func (s *NutritionService) Targets(ctx context.Context) domain.NutritionTargets {
	return persist.Load(ctx, s.store, domain.KeyNutrition, domain.DefaultNutritionTargets())
}

// TargetsPatch merges into the stored targets; nil fields are left alone.
type TargetsPatch struct {
	Calories *int
	Protein  *int
	Carbs    *int
	Fat      *int
	Fiber    *int
	Calcium  *int
	Water    *int
}

func (s *NutritionService) UpdateTargets(ctx context.Context, patch TargetsPatch) domain.NutritionTargets {
	targets := s.Targets(ctx)
	if patch.Calories != nil {
		targets.Calories = *patch.Calories
	}
	if patch.Protein != nil {
		targets.Protein = *patch.Protein
	}
	if patch.Carbs != nil {
		targets.Carbs = *patch.Carbs
	}
	if patch.Fat != nil {
		targets.Fat = *patch.Fat
	}
	if patch.Fiber != nil {
		targets.Fiber = *patch.Fiber
	}
	if patch.Calcium != nil {
		targets.Calcium = *patch.Calcium
	}
	if patch.Water != nil {
		targets.Water = *patch.Water
	}
	persist.Save(ctx, s.store, domain.KeyNutrition, targets)
	return targets
}

// SetTargets overwrites the stored targets; used when the profile changes.
func (s *NutritionService) SetTargets(ctx context.Context, targets domain.NutritionTargets) {
	persist.Save(ctx, s.store, domain.KeyNutrition, targets)
}

// MealPlan expands the six fixed meal slots against the current targets.
func (s *NutritionService) MealPlan(ctx context.Context) []domain.Meal {
	return domain.MealPlan(s.Targets(ctx))
}

func (s *NutritionService) Reminders(ctx context.Context) domain.ReminderSettings {
	today := s.now().Format("2006-01-02")
	return persist.Load(ctx, s.store, domain.KeyReminders, domain.DefaultReminderSettings(today))
}

// RemindersPatch merges into the stored reminder settings.
type RemindersPatch struct {
	WaterIntervalMinutes *int
	RemindersEnabled     *bool
	SoundEnabled         *bool
	NotificationsGranted *bool
	MarkWaterReminded    bool
}

func (s *NutritionService) UpdateReminders(ctx context.Context, patch RemindersPatch) domain.ReminderSettings {
	settings := s.Reminders(ctx)
	if patch.WaterIntervalMinutes != nil {
		minutes := *patch.WaterIntervalMinutes
		if minutes < 10 {
			minutes = 10
		}
		settings.WaterIntervalMinutes = minutes
	}
	if patch.RemindersEnabled != nil {
		settings.RemindersEnabled = *patch.RemindersEnabled
	}
	if patch.SoundEnabled != nil {
		settings.SoundEnabled = *patch.SoundEnabled
	}
	if patch.NotificationsGranted != nil {
		settings.NotificationsGranted = *patch.NotificationsGranted
	}
	if patch.MarkWaterReminded {
		millis := s.now().UnixMilli()
		settings.LastWaterReminderTime = &millis
	}
	settings.LastResetDate = s.now().Format("2006-01-02")
	persist.Save(ctx, s.store, domain.KeyReminders, settings)
	return settings
}
