package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkolev/gymtrack/internal/core/domain"
)

func TestCalculateMacros(t *testing.T) {
	t.Run("Success: derives targets from body metrics", func(t *testing.T) {
		targets := domain.CalculateMacros(domain.UserProfile{Weight: 80, Height: 180, Age: 25})

		// BMR 1805, TDEE 2797.75, +500 surplus.
		assert.Equal(t, 3298, targets.Calories)
		assert.Equal(t, 168, targets.Protein)
		assert.Equal(t, 72, targets.Fat)
		assert.Equal(t, 495, targets.Carbs)
		assert.Equal(t, 35, targets.Fiber)
		assert.Equal(t, 1000, targets.Calcium)
		assert.Equal(t, 11, targets.Water)
	})

	t.Run("Edge Case: zero age falls back to 24", func(t *testing.T) {
		withAge := domain.CalculateMacros(domain.UserProfile{Weight: 80, Height: 180, Age: 24})
		zeroAge := domain.CalculateMacros(domain.UserProfile{Weight: 80, Height: 180})
		assert.Equal(t, withAge, zeroAge)
	})

	t.Run("Edge Case: missing metrics return defaults", func(t *testing.T) {
		assert.Equal(t, domain.DefaultNutritionTargets(), domain.CalculateMacros(domain.UserProfile{Height: 180}))
		assert.Equal(t, domain.DefaultNutritionTargets(), domain.CalculateMacros(domain.UserProfile{Weight: 80}))
	})
}

func TestMealPlan(t *testing.T) {
	t.Run("Success: six slots scaled to targets", func(t *testing.T) {
		meals := domain.MealPlan(domain.NutritionTargets{Calories: 3000, Protein: 200})

		require.Len(t, meals, domain.MealsPerDay)
		assert.Equal(t, "Breakfast", meals[0].Name)
		assert.Equal(t, "7:00 AM", meals[0].Time)
		assert.Equal(t, 600, meals[0].Calories) // 20% of 3000
		assert.Equal(t, 38, meals[0].Protein)   // 19% of 200
		assert.NotEmpty(t, meals[0].Items)
		assert.Equal(t, "Pre-Bed Snack", meals[5].Name)
	})

	t.Run("Edge Case: zero targets use fallbacks", func(t *testing.T) {
		meals := domain.MealPlan(domain.NutritionTargets{})

		require.Len(t, meals, domain.MealsPerDay)
		assert.Equal(t, 700, meals[0].Calories) // 20% of 3500
		assert.Equal(t, 38, meals[0].Protein)   // 19% of 200
	})
}

func TestDefaultReminderSettings(t *testing.T) {
	settings := domain.DefaultReminderSettings("2024-01-10")

	assert.Equal(t, 60, settings.WaterIntervalMinutes)
	assert.True(t, settings.RemindersEnabled)
	assert.True(t, settings.SoundEnabled)
	assert.False(t, settings.NotificationsGranted)
	assert.Nil(t, settings.LastWaterReminderTime)
	assert.Equal(t, "2024-01-10", settings.LastResetDate)
}
