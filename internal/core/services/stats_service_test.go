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
	"github.com/dkolev/gymtrack/internal/persist"
)

func newStats(t *testing.T, sessions []domain.HistorySession, records domain.PersonalRecords) *services.StatsService {
	t.Helper()
	ctx := context.Background()
	store := kvstore.NewMemory()
	if sessions != nil {
		persist.Save(ctx, store, domain.KeyHistory, sessions)
	}
	if records != nil {
		persist.Save(ctx, store, domain.KeyRecords, records)
	}
	return services.NewStatsService(store)
}

func sessionsOn(dates ...string) []domain.HistorySession {
	out := make([]domain.HistorySession, 0, len(dates))
	for i, d := range dates {
		out = append(out, domain.HistorySession{ID: string(rune('a' + i)), Date: d})
	}
	return out
}

func TestStatsService_Heatmap(t *testing.T) {
	svc := newStats(t, sessionsOn("2024-01-10", "2024-01-10", "2024-01-11"), nil)

	heatmap := svc.Heatmap(context.Background())

	assert.Equal(t, 2, heatmap["2024-01-10"])
	assert.Equal(t, 1, heatmap["2024-01-11"])
	assert.Equal(t, 0, heatmap["2024-01-12"])
}

func TestStatsService_Streak(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: consecutive days ending today", func(t *testing.T) {
		svc := newStats(t, sessionsOn("2024-01-10", "2024-01-11"), nil)
		svc.SetNow(pinned(time.Date(2024, 1, 11, 20, 0, 0, 0, time.UTC)))

		assert.Equal(t, 2, svc.Streak(ctx))
	})

	t.Run("Success: a missing today does not break the streak", func(t *testing.T) {
		svc := newStats(t, sessionsOn("2024-01-09", "2024-01-10"), nil)
		svc.SetNow(pinned(time.Date(2024, 1, 11, 8, 0, 0, 0, time.UTC)))

		assert.Equal(t, 2, svc.Streak(ctx))
	})

	t.Run("Edge Case: a gap before yesterday ends the streak", func(t *testing.T) {
		svc := newStats(t, sessionsOn("2024-01-07", "2024-01-10"), nil)
		svc.SetNow(pinned(time.Date(2024, 1, 11, 8, 0, 0, 0, time.UTC)))

		assert.Equal(t, 1, svc.Streak(ctx))
	})

	t.Run("Edge Case: empty history", func(t *testing.T) {
		svc := newStats(t, nil, nil)
		assert.Equal(t, 0, svc.Streak(ctx))
	})
}

func TestStatsService_WeeklyTrend(t *testing.T) {
	// 2024-01-11 is a Thursday; its week starts Monday 2024-01-08.
	svc := newStats(t, sessionsOn("2024-01-08", "2024-01-10", "2024-01-03", "2023-12-26"), nil)
	svc.SetNow(pinned(time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)))

	trend := svc.WeeklyTrend(context.Background())

	require.Len(t, trend, 8)
	assert.Equal(t, "7w", trend[0].Label)
	assert.Equal(t, "Last", trend[6].Label)
	assert.Equal(t, "This", trend[7].Label)

	assert.Equal(t, 2, trend[7].Count) // Jan 8 and Jan 10
	assert.Equal(t, 1, trend[6].Count) // Jan 3
	assert.Equal(t, 1, trend[5].Count) // Dec 26
	assert.Equal(t, 0, trend[0].Count)
}

func TestStatsService_Summary(t *testing.T) {
	svc := newStats(t, sessionsOn("2024-01-08", "2024-01-10", "2024-01-03"), nil)
	svc.SetNow(pinned(time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)))

	summary := svc.Summary(context.Background())

	assert.Equal(t, 3, summary.TotalSessions)
	assert.Equal(t, 2, summary.ThisWeek)
	assert.Equal(t, 1, summary.Streak) // Jan 10 counts, Jan 9 breaks it
}

func TestStatsService_Achievements(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: thresholds judged independently", func(t *testing.T) {
		sessions := sessionsOn(
			"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05",
			"2024-01-06", "2024-01-07", "2024-01-08", "2024-01-09", "2024-01-10",
		)
		sessions[0].Exercises = []domain.HistoryExercise{
			{ExerciseID: "leg_press", Sets: []domain.CompletedSet{{Weight: 100, Reps: 10}, {Weight: 100, Reps: 8}}},
		}
		svc := newStats(t, sessions, domain.PersonalRecords{"leg_press": 100})

		achievements := svc.Achievements(ctx)
		require.Len(t, achievements, 9)

		byID := map[string]domain.Achievement{}
		for _, a := range achievements {
			byID[a.ID] = a
		}

		assert.True(t, byID["first_workout"].Earned)
		assert.True(t, byID["ten_workouts"].Earned)
		assert.False(t, byID["25_workouts"].Earned)
		assert.Equal(t, "10/25", byID["25_workouts"].Progress)

		assert.True(t, byID["first_pr"].Earned)
		assert.False(t, byID["ten_prs"].Earned)
		assert.Equal(t, "1/10", byID["ten_prs"].Progress)

		assert.False(t, byID["100_sets"].Earned)
		assert.Equal(t, "2/100", byID["100_sets"].Progress)
	})

	t.Run("Edge Case: empty history earns nothing", func(t *testing.T) {
		svc := newStats(t, nil, nil)
		for _, a := range svc.Achievements(ctx) {
			assert.False(t, a.Earned, a.ID)
		}
	})
}

func TestStatsService_Ghost(t *testing.T) {
	ctx := context.Background()

	sessions := []domain.HistorySession{
		{ID: "1", Date: "2024-01-05", Exercises: []domain.HistoryExercise{
			{ExerciseID: "leg_press", Sets: []domain.CompletedSet{{Weight: 100, Reps: 10}}},
		}},
		{ID: "2", Date: "2024-01-09", Exercises: []domain.HistoryExercise{
			{ExerciseID: "leg_press", Sets: []domain.CompletedSet{{Weight: 110, Reps: 8}}},
		}},
	}
	svc := newStats(t, sessions, nil)

	t.Run("Success: most recent occurrence wins", func(t *testing.T) {
		ghost := svc.Ghost(ctx, "leg_press")
		require.NotNil(t, ghost)
		assert.Equal(t, "2024-01-09", ghost.Date)
		require.Len(t, ghost.Sets, 1)
		assert.Equal(t, 110.0, ghost.Sets[0].Weight)
	})

	t.Run("Edge Case: never-logged exercise", func(t *testing.T) {
		assert.Nil(t, svc.Ghost(ctx, "lat_pulldown"))
	})
}
