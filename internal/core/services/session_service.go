package services

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dkolev/gymtrack/internal/core/domain"
	"github.com/dkolev/gymtrack/internal/persist"
)

// celebrationDuration is how long the post-workout celebration signal stays
// up before clearing itself. Purely cosmetic; consumed by UI collaborators.
const celebrationDuration = 4 * time.Second

// SessionService is the workout state machine. It holds the single active
// workout (nil when idle) behind a mutex and persists it under its own key so
// an in-flight session survives a restart. Finishing converts the session
// into an immutable history record and raises personal records.
type SessionService struct {
	store   domain.KVStore
	catalog *CatalogService

	mu     sync.Mutex
	active *domain.ActiveWorkout

	restTimer   chan time.Time
	celebrating bool
	celebTimer  *time.Timer

	now func() time.Time
}

func NewSessionService(store domain.KVStore, catalog *CatalogService) *SessionService {
	s := &SessionService{
		store:     store,
		catalog:   catalog,
		restTimer: make(chan time.Time, 8),
		now:       time.Now,
	}

	// Resume a session that was in flight when the process stopped.
	if active := persist.Load(context.Background(), store, domain.KeyActive, (*domain.ActiveWorkout)(nil)); active != nil {
		s.active = active
		logrus.WithField("program", active.ProgramName).Info("resumed in-flight workout session")
	}
	return s
}

// RestTimer delivers a signal each time a set transitions to done. The send
// is non-blocking; a slow consumer drops signals rather than stalling the
// state machine.
func (s *SessionService) RestTimer() <-chan time.Time {
	return s.restTimer
}

// Celebrating reports whether the post-workout celebration is still up.
func (s *SessionService) Celebrating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.celebrating
}

// Active returns a deep copy of the in-progress workout, or nil when idle.
func (s *SessionService) Active() *domain.ActiveWorkout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneWorkout(s.active)
}

// Start transitions Idle -> Active. When a session is already active it
// returns ErrWorkoutInProgress unless force is set, in which case the old
// session is deliberately discarded (the caller confirmed the restart).
func (s *SessionService) Start(ctx context.Context, programID string, force bool) (*domain.ActiveWorkout, error) {
	program, err := s.catalog.ProgramByID(ctx, programID)
	if err != nil {
		return nil, err
	}

	exercises := s.catalog.Exercises(ctx)
	defaults := make(map[string]int, len(exercises))
	for _, ex := range exercises {
		defaults[ex.ID] = ex.DefaultSets
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil && !force {
		return nil, domain.ErrWorkoutInProgress
	}
	if s.active != nil {
		logrus.WithField("program", s.active.ProgramName).Warn("discarding in-progress workout on forced restart")
	}

	entries := make([]domain.ExerciseEntry, 0, len(program.Exercises))
	for _, exID := range program.Exercises {
		entries = append(entries, domain.NewExerciseEntry(exID, defaults[exID]))
	}

	s.active = &domain.ActiveWorkout{
		ProgramID:   program.ID,
		ProgramName: program.Name,
		StartedAt:   s.now(),
		Exercises:   entries,
	}
	persist.Save(ctx, s.store, domain.KeyActive, s.active)
	return cloneWorkout(s.active), nil
}

// UpdateSet stores raw input for one set field. Numeric validation is
// deferred to Finish.
func (s *SessionService) UpdateSet(ctx context.Context, exercise, set int, field, value string) error {
	return s.mutate(ctx, func(w *domain.ActiveWorkout) error {
		return w.UpdateSet(exercise, set, field, value)
	})
}

// ToggleSetDone flips a set's done flag. A false -> true transition emits the
// rest-timer signal.
func (s *SessionService) ToggleSetDone(ctx context.Context, exercise, set int) error {
	return s.mutate(ctx, func(w *domain.ActiveWorkout) error {
		done, err := w.ToggleSetDone(exercise, set)
		if err != nil {
			return err
		}
		if done {
			select {
			case s.restTimer <- s.now():
			default:
			}
		}
		return nil
	})
}

func (s *SessionService) AddSet(ctx context.Context, exercise int) error {
	return s.mutate(ctx, func(w *domain.ActiveWorkout) error {
		return w.AddSet(exercise)
	})
}

func (s *SessionService) RemoveSet(ctx context.Context, exercise, set int) error {
	return s.mutate(ctx, func(w *domain.ActiveWorkout) error {
		return w.RemoveSet(exercise, set)
	})
}

// SwapExercise replaces one slot with a fresh entry for newExerciseID. With
// permanent set, the source program is rewritten too — a deliberate
// cross-store side effect sequenced through the catalog service.
func (s *SessionService) SwapExercise(ctx context.Context, exercise int, newExerciseID string, permanent bool) error {
	replacement, err := s.catalog.ExerciseByID(ctx, newExerciseID)
	if err != nil {
		return err
	}

	var programID, oldID string
	err = s.mutate(ctx, func(w *domain.ActiveWorkout) error {
		old, err := w.ReplaceExercise(exercise, domain.NewExerciseEntry(replacement.ID, replacement.DefaultSets))
		if err != nil {
			return err
		}
		programID, oldID = w.ProgramID, old
		return nil
	})
	if err != nil {
		return err
	}

	if permanent && programID != "" {
		s.catalog.SwapInProgram(ctx, programID, oldID, newExerciseID)
	}
	return nil
}

// ReorderExercise moves an exercise within the active workout only; the
// source program keeps its order.
func (s *SessionService) ReorderExercise(ctx context.Context, from, to int) error {
	return s.mutate(ctx, func(w *domain.ActiveWorkout) error {
		return w.MoveExercise(from, to)
	})
}

// Finish transitions Active -> Idle: the session becomes a history record
// (done sets only, numerics coerced), personal records are raised, and the
// celebration signal goes up for a few seconds.
func (s *SessionService) Finish(ctx context.Context) (*domain.HistorySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, domain.ErrNoActiveWorkout
	}

	now := s.now()
	session := s.active.Complete(
		strconv.FormatInt(now.UnixMilli(), 10),
		now.Format("2006-01-02"),
		now,
	)

	history := append(s.history(ctx), session)
	persist.Save(ctx, s.store, domain.KeyHistory, history)

	records := persist.Load(ctx, s.store, domain.KeyRecords, domain.PersonalRecords{})
	records.Apply(session)
	persist.Save(ctx, s.store, domain.KeyRecords, records)

	s.active = nil
	persist.Delete(ctx, s.store, domain.KeyActive)

	s.celebrating = true
	if s.celebTimer != nil {
		s.celebTimer.Stop()
	}
	s.celebTimer = time.AfterFunc(celebrationDuration, func() {
		s.mu.Lock()
		s.celebrating = false
		s.mu.Unlock()
	})

	logrus.WithFields(logrus.Fields{
		"program": session.ProgramName,
		"date":    session.Date,
	}).Info("workout finished")

	return &session, nil
}

// Cancel discards the active session without persisting anything.
func (s *SessionService) Cancel(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return domain.ErrNoActiveWorkout
	}
	s.active = nil
	persist.Delete(ctx, s.store, domain.KeyActive)
	return nil
}

// History returns the append-only list of finished sessions, oldest first.
func (s *SessionService) History(ctx context.Context) []domain.HistorySession {
	return s.history(ctx)
}

// LastSession returns the most recently finished session, or nil.
func (s *SessionService) LastSession(ctx context.Context) *domain.HistorySession {
	history := s.history(ctx)
	if len(history) == 0 {
		return nil
	}
	last := history[len(history)-1]
	return &last
}

func (s *SessionService) history(ctx context.Context) []domain.HistorySession {
	return persist.Load(ctx, s.store, domain.KeyHistory, []domain.HistorySession{})
}

// mutate runs fn against the active workout under the lock and persists the
// result. Any mutation while idle fails with ErrNoActiveWorkout.
func (s *SessionService) mutate(ctx context.Context, fn func(*domain.ActiveWorkout) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return domain.ErrNoActiveWorkout
	}
	if err := fn(s.active); err != nil {
		return err
	}
	persist.Save(ctx, s.store, domain.KeyActive, s.active)
	return nil
}

func cloneWorkout(w *domain.ActiveWorkout) *domain.ActiveWorkout {
	if w == nil {
		return nil
	}
	clone := *w
	clone.Exercises = make([]domain.ExerciseEntry, len(w.Exercises))
	for i, ex := range w.Exercises {
		sets := make([]domain.SetEntry, len(ex.Sets))
		copy(sets, ex.Sets)
		clone.Exercises[i] = domain.ExerciseEntry{ExerciseID: ex.ExerciseID, Sets: sets}
	}
	return &clone
}
