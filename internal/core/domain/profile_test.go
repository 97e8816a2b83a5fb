package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkolev/gymtrack/internal/core/domain"
)

func TestUserProfile_BMI(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		value    float64
		category string
	}{
		{"underweight", 50, 16.3, "Underweight"},
		{"normal", 70, 22.9, "Normal"},
		{"overweight", 80, 26.1, "Overweight"},
		{"obese", 95, 31.0, "Obese"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bmi := domain.UserProfile{Weight: tt.weight, Height: 175}.BMI()
			require.NotNil(t, bmi)
			assert.Equal(t, tt.value, bmi.Value)
			assert.Equal(t, tt.category, bmi.Category)
		})
	}

	t.Run("Edge Case: missing metrics", func(t *testing.T) {
		assert.Nil(t, domain.UserProfile{Weight: 70}.BMI())
		assert.Nil(t, domain.UserProfile{Height: 175}.BMI())
	})
}

func TestUserProfile_SuggestedCalories(t *testing.T) {
	calories := domain.DefaultProfile().SuggestedCalories()

	require.NotNil(t, calories)
	assert.Equal(t, 1679, calories.BMR)
	assert.Equal(t, 2602, calories.TDEE)
	assert.Equal(t, 3102, calories.Surplus)

	assert.Nil(t, domain.UserProfile{}.SuggestedCalories())
}

func TestUserProfile_WaterGoal(t *testing.T) {
	assert.Equal(t, 10, domain.UserProfile{Weight: 70}.WaterGoal())
	assert.Equal(t, 11, domain.UserProfile{Weight: 80}.WaterGoal())
	assert.Equal(t, 8, domain.UserProfile{}.WaterGoal())
}
