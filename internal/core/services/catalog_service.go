package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/dkolev/gymtrack/internal/core/domain"
	"github.com/dkolev/gymtrack/internal/persist"
)

// CatalogService owns the exercise library, the program templates and the
// weekly schedule keys. Deletions cascade: removing an exercise scrubs it from
// every program, removing a program clears the schedule slots that pointed at
// it. The two resulting Save calls are not atomic (see DailyChecklist docs on
// the single-key persistence model).
type CatalogService struct {
	store domain.KVStore
}

func NewCatalogService(store domain.KVStore) *CatalogService {
	return &CatalogService{store: store}
}

// ExerciseInput is possibly-partial user input; missing fields get defaults.
type ExerciseInput struct {
	Name        string
	Muscle      string
	Image       string
	Tips        string
	DefaultSets int
	DefaultReps int
}

// ExercisePatch merges into an existing exercise; nil fields are left alone.
type ExercisePatch struct {
	Name        *string
	Muscle      *string
	Image       *string
	Tips        *string
	DefaultSets *int
	DefaultReps *int
}

type ProgramInput struct {
	Name      string
	Muscles   []string
	Exercises []string
}

type ProgramPatch struct {
	Name      *string
	Muscles   []string
	Exercises []string
}

// Seed writes the built-in defaults for any catalog key that has never been
// stored. Idempotent: existing documents (even user-emptied ones) are kept.
func (s *CatalogService) Seed(ctx context.Context) {
	if !persist.Exists(ctx, s.store, domain.KeyExercises) {
		persist.Save(ctx, s.store, domain.KeyExercises, domain.DefaultExercises())
		logrus.Info("seeded default exercise library")
	}
	if !persist.Exists(ctx, s.store, domain.KeyPrograms) {
		persist.Save(ctx, s.store, domain.KeyPrograms, domain.DefaultPrograms())
		logrus.Info("seeded default programs")
	}
	if !persist.Exists(ctx, s.store, domain.KeySchedule) {
		persist.Save(ctx, s.store, domain.KeySchedule, domain.DefaultSchedule())
		logrus.Info("seeded default weekly schedule")
	}
}

func (s *CatalogService) Exercises(ctx context.Context) []domain.Exercise {
	return persist.Load(ctx, s.store, domain.KeyExercises, []domain.Exercise{})
}

func (s *CatalogService) ExerciseByID(ctx context.Context, id string) (*domain.Exercise, error) {
	for _, ex := range s.Exercises(ctx) {
		if ex.ID == id {
			return &ex, nil
		}
	}
	return nil, domain.ErrExerciseNotFound
}

func (s *CatalogService) Programs(ctx context.Context) map[string]domain.Program {
	return persist.Load(ctx, s.store, domain.KeyPrograms, map[string]domain.Program{})
}

func (s *CatalogService) ProgramByID(ctx context.Context, id string) (*domain.Program, error) {
	programs := s.Programs(ctx)
	program, ok := programs[id]
	if !ok {
		return nil, domain.ErrProgramNotFound
	}
	return &program, nil
}

func (s *CatalogService) AddExercise(ctx context.Context, input ExerciseInput) domain.Exercise {
	exercise := domain.NewExercise(input.Name, input.Muscle, input.Image, input.Tips, input.DefaultSets, input.DefaultReps)

	exercises := append(s.Exercises(ctx), exercise)
	persist.Save(ctx, s.store, domain.KeyExercises, exercises)
	return exercise
}

// UpdateExercise merges the patch into the matching exercise. An unknown id
// is a no-op, preserving prior state.
func (s *CatalogService) UpdateExercise(ctx context.Context, id string, patch ExercisePatch) {
	exercises := s.Exercises(ctx)
	changed := false
	for i := range exercises {
		if exercises[i].ID != id {
			continue
		}
		if patch.Name != nil {
			exercises[i].Name = *patch.Name
		}
		if patch.Muscle != nil {
			exercises[i].Muscle = *patch.Muscle
		}
		if patch.Image != nil {
			exercises[i].Image = *patch.Image
		}
		if patch.Tips != nil {
			exercises[i].Tips = *patch.Tips
		}
		if patch.DefaultSets != nil {
			exercises[i].DefaultSets = *patch.DefaultSets
		}
		if patch.DefaultReps != nil {
			exercises[i].DefaultReps = *patch.DefaultReps
		}
		changed = true
		break
	}
	if changed {
		persist.Save(ctx, s.store, domain.KeyExercises, exercises)
	}
}

// DeleteExercise removes the exercise and scrubs its id from every program's
// exercise list, so no program ever references a missing exercise.
func (s *CatalogService) DeleteExercise(ctx context.Context, id string) {
	exercises := s.Exercises(ctx)
	kept := exercises[:0]
	for _, ex := range exercises {
		if ex.ID != id {
			kept = append(kept, ex)
		}
	}

	programs := s.Programs(ctx)
	for key, program := range programs {
		refs := program.Exercises[:0]
		for _, exID := range program.Exercises {
			if exID != id {
				refs = append(refs, exID)
			}
		}
		program.Exercises = refs
		programs[key] = program
	}

	persist.Save(ctx, s.store, domain.KeyExercises, kept)
	persist.Save(ctx, s.store, domain.KeyPrograms, programs)
}

func (s *CatalogService) AddProgram(ctx context.Context, input ProgramInput) domain.Program {
	program := domain.NewProgram(input.Name, input.Muscles, input.Exercises)

	programs := s.Programs(ctx)
	programs[program.ID] = program
	persist.Save(ctx, s.store, domain.KeyPrograms, programs)
	return program
}

func (s *CatalogService) UpdateProgram(ctx context.Context, id string, patch ProgramPatch) {
	programs := s.Programs(ctx)
	program, ok := programs[id]
	if !ok {
		return
	}
	if patch.Name != nil {
		program.Name = *patch.Name
	}
	if patch.Muscles != nil {
		program.Muscles = patch.Muscles
	}
	if patch.Exercises != nil {
		program.Exercises = patch.Exercises
	}
	programs[id] = program
	persist.Save(ctx, s.store, domain.KeyPrograms, programs)
}

// DeleteProgram removes the program and nils out any schedule slot that
// referenced it, preventing dangling schedule entries.
func (s *CatalogService) DeleteProgram(ctx context.Context, id string) {
	programs := s.Programs(ctx)
	delete(programs, id)

	schedule := persist.Load(ctx, s.store, domain.KeySchedule, domain.WeekSchedule{})
	for day, slot := range schedule {
		if slot != nil && *slot == id {
			schedule[day] = nil
		}
	}

	persist.Save(ctx, s.store, domain.KeyPrograms, programs)
	persist.Save(ctx, s.store, domain.KeySchedule, schedule)
}

// ReorderExerciseInProgram moves one exercise within a program's list.
func (s *CatalogService) ReorderExerciseInProgram(ctx context.Context, programID string, from, to int) error {
	programs := s.Programs(ctx)
	program, ok := programs[programID]
	if !ok {
		return domain.ErrProgramNotFound
	}
	if from < 0 || from >= len(program.Exercises) || to < 0 || to >= len(program.Exercises) {
		return domain.ErrExerciseIndex
	}

	moved := program.Exercises[from]
	rest := append(program.Exercises[:from:from], program.Exercises[from+1:]...)
	program.Exercises = append(rest[:to:to], append([]string{moved}, rest[to:]...)...)

	programs[programID] = program
	persist.Save(ctx, s.store, domain.KeyPrograms, programs)
	return nil
}

// SwapInProgram substitutes oldID with newID everywhere it occurs in the
// program's exercise list. Called by the session service on permanent swaps.
func (s *CatalogService) SwapInProgram(ctx context.Context, programID, oldID, newID string) {
	programs := s.Programs(ctx)
	program, ok := programs[programID]
	if !ok {
		return
	}
	for i, exID := range program.Exercises {
		if exID == oldID {
			program.Exercises[i] = newID
		}
	}
	programs[programID] = program
	persist.Save(ctx, s.store, domain.KeyPrograms, programs)
}

// ResetToDefaults overwrites catalog, programs and schedule with the built-in
// defaults, discarding custom entries. History and records are untouched.
func (s *CatalogService) ResetToDefaults(ctx context.Context) {
	persist.Save(ctx, s.store, domain.KeyExercises, domain.DefaultExercises())
	persist.Save(ctx, s.store, domain.KeyPrograms, domain.DefaultPrograms())
	persist.Save(ctx, s.store, domain.KeySchedule, domain.DefaultSchedule())
	logrus.Info("catalog reset to defaults")
}
