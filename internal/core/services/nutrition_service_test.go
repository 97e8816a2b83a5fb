package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkolev/gymtrack/internal/adapters/kvstore"
	"github.com/dkolev/gymtrack/internal/core/domain"
	"github.com/dkolev/gymtrack/internal/core/services"
)

func newNutrition(t *testing.T) *services.NutritionService {
	t.Helper()
	svc := services.NewNutritionService(kvstore.NewMemory())
	svc.SetNow(pinned(time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)))
	return svc
}

func boolptr(b bool) *bool { return &b }

func TestNutritionService_Checklist(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: untouched day reads as zero values", func(t *testing.T) {
		svc := newNutrition(t)

		checklist := svc.Checklist(ctx)

		assert.False(t, checklist.Vitamin)
		assert.Zero(t, checklist.Water)
		assert.NotNil(t, checklist.MealsEaten)
		assert.Empty(t, checklist.MealsEaten)
	})

	t.Run("Success: toggles and counters", func(t *testing.T) {
		svc := newNutrition(t)

		assert.True(t, svc.ToggleVitamin(ctx).Vitamin)
		assert.False(t, svc.ToggleVitamin(ctx).Vitamin)

		svc.IncrementWater(ctx)
		assert.Equal(t, 2, svc.IncrementWater(ctx).Water)
		assert.Equal(t, 1, svc.DecrementWater(ctx).Water)
	})

	t.Run("Edge Case: water never goes below zero", func(t *testing.T) {
		svc := newNutrition(t)
		assert.Zero(t, svc.DecrementWater(ctx).Water)
	})

	t.Run("Success: a new day starts fresh", func(t *testing.T) {
		svc := newNutrition(t)
		svc.IncrementWater(ctx)

		svc.SetNow(pinned(time.Date(2024, 1, 11, 8, 0, 0, 0, time.UTC)))
		assert.Zero(t, svc.Checklist(ctx).Water)
	})
}

func TestNutritionService_ToggleMealEaten(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: toggling adds then removes calories", func(t *testing.T) {
		svc := newNutrition(t)

		checklist := svc.ToggleMealEaten(ctx, 0, 600)
		assert.Equal(t, []int{0}, checklist.MealsEaten)
		assert.Equal(t, 600.0, checklist.CaloriesConsumed)

		checklist = svc.ToggleMealEaten(ctx, 0, 600)
		assert.Empty(t, checklist.MealsEaten)
		assert.Zero(t, checklist.CaloriesConsumed)
	})

	t.Run("Edge Case: calories floored at zero", func(t *testing.T) {
		svc := newNutrition(t)
		svc.ToggleMealEaten(ctx, 0, 600)
		svc.SetCaloriesConsumed(ctx, 100)

		checklist := svc.ToggleMealEaten(ctx, 0, 600)
		assert.Zero(t, checklist.CaloriesConsumed)
	})

	t.Run("Success: all six meals mark the plan followed", func(t *testing.T) {
		svc := newNutrition(t)

		var checklist domain.DailyChecklist
		for meal := 0; meal < domain.MealsPerDay; meal++ {
			checklist = svc.ToggleMealEaten(ctx, meal, 500)
		}
		assert.True(t, checklist.MealPlanFollowed)

		checklist = svc.ToggleMealEaten(ctx, 3, 500)
		assert.False(t, checklist.MealPlanFollowed)
	})
}

func TestNutritionService_Targets(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: defaults before anything is stored", func(t *testing.T) {
		svc := newNutrition(t)
		assert.Equal(t, domain.DefaultNutritionTargets(), svc.Targets(ctx))
	})

	t.Run("Success: patch merges only provided fields", func(t *testing.T) {
		svc := newNutrition(t)

		targets := svc.UpdateTargets(ctx, services.TargetsPatch{Calories: intptr(2800), Protein: intptr(180)})

		assert.Equal(t, 2800, targets.Calories)
		assert.Equal(t, 180, targets.Protein)
		assert.Equal(t, domain.DefaultNutritionTargets().Carbs, targets.Carbs)

		assert.Equal(t, targets, svc.Targets(ctx))
	})

	t.Run("Success: meal plan reflects stored targets", func(t *testing.T) {
		svc := newNutrition(t)
		svc.SetTargets(ctx, domain.NutritionTargets{Calories: 3000, Protein: 200})

		meals := svc.MealPlan(ctx)
		require.Len(t, meals, domain.MealsPerDay)
		assert.Equal(t, 600, meals[0].Calories)
	})
}

func TestNutritionService_Reminders(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: defaults carry the pinned day", func(t *testing.T) {
		svc := newNutrition(t)

		settings := svc.Reminders(ctx)
		assert.Equal(t, 60, settings.WaterIntervalMinutes)
		assert.Equal(t, "2024-01-10", settings.LastResetDate)
	})

	t.Run("Edge Case: interval clamped to a sane minimum", func(t *testing.T) {
		svc := newNutrition(t)

		settings := svc.UpdateReminders(ctx, services.RemindersPatch{WaterIntervalMinutes: intptr(2)})
		assert.Equal(t, 10, settings.WaterIntervalMinutes)
	})

	t.Run("Success: marking a reminder records the pinned instant", func(t *testing.T) {
		svc := newNutrition(t)
		at := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
		svc.SetNow(pinned(at))

		settings := svc.UpdateReminders(ctx, services.RemindersPatch{
			MarkWaterReminded: true,
			SoundEnabled:      boolptr(false),
		})

		require.NotNil(t, settings.LastWaterReminderTime)
		assert.Equal(t, at.UnixMilli(), *settings.LastWaterReminderTime)
		assert.False(t, settings.SoundEnabled)
		assert.True(t, settings.RemindersEnabled)
	})
}
