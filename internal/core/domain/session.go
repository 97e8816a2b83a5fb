package domain

import (
	"errors"
	"strconv"
	"time"
)

var (
	ErrNoActiveWorkout   = errors.New("no active workout")
	ErrWorkoutInProgress = errors.New("a workout is already in progress")
	ErrExerciseIndex     = errors.New("exercise index out of range")
	ErrSetIndex          = errors.New("set index out of range")
	ErrLastSet           = errors.New("an exercise must keep at least one set")
	ErrUnknownSetField   = errors.New("unknown set field (must be weight or reps)")
)

// Set fields accepted by UpdateSet.
const (
	SetFieldWeight = "weight"
	SetFieldReps   = "reps"
)

// SetEntry is one unit of work inside an active workout. Weight and reps hold
// whatever the user typed; numeric coercion happens only when the workout is
// finished.
type SetEntry struct {
	Weight string `json:"weight"`
	Reps   string `json:"reps"`
	Done   bool   `json:"done"`
}

// ExerciseEntry is one exercise slot of an active workout.
type ExerciseEntry struct {
	ExerciseID string     `json:"exerciseId"`
	Sets       []SetEntry `json:"sets"`
}

// ActiveWorkout is the single in-progress session. At most one exists at a
// time; the session service owns that invariant.
type ActiveWorkout struct {
	ProgramID   string          `json:"programId"`
	ProgramName string          `json:"programName"`
	StartedAt   time.Time       `json:"startedAt"`
	Exercises   []ExerciseEntry `json:"exercises"`
}

// CompletedSet is a finished set with its inputs coerced to numbers.
type CompletedSet struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// HistoryExercise holds only the sets that were marked done. An exercise the
// user skipped entirely keeps an empty (non-nil) set list.
type HistoryExercise struct {
	ExerciseID string         `json:"exerciseId"`
	Sets       []CompletedSet `json:"sets"`
}

// HistorySession is an immutable record of a finished workout.
type HistorySession struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"` // local calendar day, YYYY-MM-DD
	ProgramID   string            `json:"programId"`
	ProgramName string            `json:"programName"`
	StartedAt   time.Time         `json:"startedAt"`
	FinishedAt  time.Time         `json:"finishedAt"`
	Exercises   []HistoryExercise `json:"exercises"`
}

// PersonalRecords maps exercise id to the heaviest weight ever logged for a
// completed set of that exercise.
type PersonalRecords map[string]float64

// NewExerciseEntry builds a fresh entry with n empty sets (DefaultSets when
// n is not positive).
func NewExerciseEntry(exerciseID string, n int) ExerciseEntry {
	if n <= 0 {
		n = DefaultSets
	}
	return ExerciseEntry{
		ExerciseID: exerciseID,
		Sets:       make([]SetEntry, n),
	}
}

func (w *ActiveWorkout) checkIndex(exercise, set int) error {
	if exercise < 0 || exercise >= len(w.Exercises) {
		return ErrExerciseIndex
	}
	if set < 0 || set >= len(w.Exercises[exercise].Sets) {
		return ErrSetIndex
	}
	return nil
}

// UpdateSet stores the raw value of one field of one set. Input is not
// validated here; free-form text is accepted until the workout is finished.
func (w *ActiveWorkout) UpdateSet(exercise, set int, field, value string) error {
	if err := w.checkIndex(exercise, set); err != nil {
		return err
	}
	switch field {
	case SetFieldWeight:
		w.Exercises[exercise].Sets[set].Weight = value
	case SetFieldReps:
		w.Exercises[exercise].Sets[set].Reps = value
	default:
		return ErrUnknownSetField
	}
	return nil
}

// ToggleSetDone flips the done flag and reports the new state.
func (w *ActiveWorkout) ToggleSetDone(exercise, set int) (bool, error) {
	if err := w.checkIndex(exercise, set); err != nil {
		return false, err
	}
	s := &w.Exercises[exercise].Sets[set]
	s.Done = !s.Done
	return s.Done, nil
}

// AddSet appends an empty set to the exercise.
func (w *ActiveWorkout) AddSet(exercise int) error {
	if exercise < 0 || exercise >= len(w.Exercises) {
		return ErrExerciseIndex
	}
	w.Exercises[exercise].Sets = append(w.Exercises[exercise].Sets, SetEntry{})
	return nil
}

// RemoveSet removes one set; refused when it would leave the exercise empty.
func (w *ActiveWorkout) RemoveSet(exercise, set int) error {
	if err := w.checkIndex(exercise, set); err != nil {
		return err
	}
	sets := w.Exercises[exercise].Sets
	if len(sets) <= 1 {
		return ErrLastSet
	}
	w.Exercises[exercise].Sets = append(sets[:set], sets[set+1:]...)
	return nil
}

// ReplaceExercise swaps the exercise slot for a fresh entry with empty sets
// sized to the new exercise's default, and returns the replaced exercise id.
func (w *ActiveWorkout) ReplaceExercise(exercise int, entry ExerciseEntry) (string, error) {
	if exercise < 0 || exercise >= len(w.Exercises) {
		return "", ErrExerciseIndex
	}
	old := w.Exercises[exercise].ExerciseID
	w.Exercises[exercise] = entry
	return old, nil
}

// MoveExercise reorders the exercise list within the active workout.
func (w *ActiveWorkout) MoveExercise(from, to int) error {
	if from < 0 || from >= len(w.Exercises) || to < 0 || to >= len(w.Exercises) {
		return ErrExerciseIndex
	}
	moved := w.Exercises[from]
	rest := append(w.Exercises[:from:from], w.Exercises[from+1:]...)
	w.Exercises = append(rest[:to:to], append([]ExerciseEntry{moved}, rest[to:]...)...)
	return nil
}

// CoerceNumber parses free-form numeric input, falling back to 0 for anything
// unparseable (including the empty string).
func CoerceNumber(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

// Complete converts the active workout into an immutable history record.
// Only sets marked done survive, with weight and reps coerced to numbers.
func (w *ActiveWorkout) Complete(id, date string, finishedAt time.Time) HistorySession {
	session := HistorySession{
		ID:          id,
		Date:        date,
		ProgramID:   w.ProgramID,
		ProgramName: w.ProgramName,
		StartedAt:   w.StartedAt,
		FinishedAt:  finishedAt,
		Exercises:   make([]HistoryExercise, 0, len(w.Exercises)),
	}
	for _, ex := range w.Exercises {
		done := HistoryExercise{ExerciseID: ex.ExerciseID, Sets: []CompletedSet{}}
		for _, s := range ex.Sets {
			if !s.Done {
				continue
			}
			done.Sets = append(done.Sets, CompletedSet{
				Weight: CoerceNumber(s.Weight),
				Reps:   int(CoerceNumber(s.Reps)),
			})
		}
		session.Exercises = append(session.Exercises, done)
	}
	return session
}

// Apply raises records for every completed set that beats the stored maximum.
// Records never decrease here; only a full history clear resets them.
func (r PersonalRecords) Apply(session HistorySession) {
	for _, ex := range session.Exercises {
		for _, s := range ex.Sets {
			if s.Weight > r[ex.ExerciseID] {
				r[ex.ExerciseID] = s.Weight
			}
		}
	}
}
