package services

import (
	"context"

	"github.com/dkolev/gymtrack/internal/core/domain"
	"github.com/dkolev/gymtrack/internal/persist"
)

// ProfileService owns the user profile and coordinates the one cross-store
// side effect it implies: a profile change with full body metrics recomputes
// the nutrition targets. The two writes land under separate keys with no
// transaction between them.
type ProfileService struct {
	store     domain.KVStore
	nutrition *NutritionService
}

func NewProfileService(store domain.KVStore, nutrition *NutritionService) *ProfileService {
	return &ProfileService{store: store, nutrition: nutrition}
}

func (s *ProfileService) Profile(ctx context.Context) domain.UserProfile {
	return persist.Load(ctx, s.store, domain.KeyProfile, domain.DefaultProfile())
}

// ProfilePatch merges into the stored profile; nil fields are left alone.
type ProfilePatch struct {
	Name   *string
	Weight *float64
	Height *float64
	Age    *int
}

// Update merges the patch and, when weight and height are both set,
// recomputes and stores derived nutrition targets.
func (s *ProfileService) Update(ctx context.Context, patch ProfilePatch) domain.UserProfile {
	profile := s.Profile(ctx)
	if patch.Name != nil {
		profile.Name = *patch.Name
	}
	if patch.Weight != nil {
		profile.Weight = *patch.Weight
	}
	if patch.Height != nil {
		profile.Height = *patch.Height
	}
	if patch.Age != nil {
		profile.Age = *patch.Age
	}
	persist.Save(ctx, s.store, domain.KeyProfile, profile)

	if profile.Weight > 0 && profile.Height > 0 {
		s.nutrition.SetTargets(ctx, domain.CalculateMacros(profile))
	}
	return profile
}

func (s *ProfileService) BMI(ctx context.Context) *domain.BMI {
	return s.Profile(ctx).BMI()
}

func (s *ProfileService) SuggestedCalories(ctx context.Context) *domain.SuggestedCalories {
	return s.Profile(ctx).SuggestedCalories()
}

func (s *ProfileService) WaterGoal(ctx context.Context) int {
	return s.Profile(ctx).WaterGoal()
}
