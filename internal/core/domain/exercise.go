package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrProgramNotFound  = errors.New("program not found")
)

// Fallbacks applied when a user submits a partial exercise.
const (
	DefaultMuscle = "Chest"
	DefaultSets   = 3
	DefaultReps   = 10

	DefaultExerciseName = "New Exercise"
	DefaultProgramName  = "New Program"
)

// Exercise is a single entry in the exercise library.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Muscle      string `json:"muscle"`
	Image       string `json:"image,omitempty"`
	Tips        string `json:"tips,omitempty"`
	DefaultSets int    `json:"default_sets"`
	DefaultReps int    `json:"default_reps"`
	IsCustom    bool   `json:"isCustom,omitempty"`
}

// Program is a named workout template: an ordered list of exercise ids.
type Program struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Muscles   []string `json:"muscles"`
	Exercises []string `json:"exercises"`
	IsCustom  bool     `json:"isCustom,omitempty"`
}

// GenerateID produces a unique id for user-created catalog entries. The
// timestamp keeps ids roughly sortable, the uuid suffix rules out collisions.
func GenerateID() string {
	return fmt.Sprintf("custom_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:5])
}

// NewExercise builds a custom exercise from possibly-partial user input,
// filling every missing field with its default.
func NewExercise(name, muscle, image, tips string, sets, reps int) Exercise {
	if name == "" {
		name = DefaultExerciseName
	}
	if muscle == "" {
		muscle = DefaultMuscle
	}
	if sets <= 0 {
		sets = DefaultSets
	}
	if reps <= 0 {
		reps = DefaultReps
	}
	return Exercise{
		ID:          GenerateID(),
		Name:        name,
		Muscle:      muscle,
		Image:       image,
		Tips:        tips,
		DefaultSets: sets,
		DefaultReps: reps,
		IsCustom:    true,
	}
}

// NewProgram builds a custom program from possibly-partial user input.
func NewProgram(name string, muscles, exercises []string) Program {
	if name == "" {
		name = DefaultProgramName
	}
	if muscles == nil {
		muscles = []string{}
	}
	if exercises == nil {
		exercises = []string{}
	}
	return Program{
		ID:        GenerateID(),
		Name:      name,
		Muscles:   muscles,
		Exercises: exercises,
		IsCustom:  true,
	}
}
