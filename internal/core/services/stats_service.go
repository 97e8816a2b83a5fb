package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dkolev/gymtrack/internal/core/domain"
	"github.com/dkolev/gymtrack/internal/persist"
)

// trendWeeks is the number of past weeks shown next to the current one.
const trendWeeks = 7

// StatsService is a pure read-side projection over the workout history and
// personal records. Nothing here writes to storage.
type StatsService struct {
	store domain.KVStore

	now func() time.Time
}

func NewStatsService(store domain.KVStore) *StatsService {
	return &StatsService{
		store: store,
		now:   time.Now,
	}
}

func (s *StatsService) history(ctx context.Context) []domain.HistorySession {
	return persist.Load(ctx, s.store, domain.KeyHistory, []domain.HistorySession{})
}

func (s *StatsService) records(ctx context.Context) domain.PersonalRecords {
	return persist.Load(ctx, s.store, domain.KeyRecords, domain.PersonalRecords{})
}

// PersonalRecords returns the exercise id -> max weight map.
func (s *StatsService) PersonalRecords(ctx context.Context) domain.PersonalRecords {
	return s.records(ctx)
}

// Heatmap groups history by calendar date with a session count per date.
func (s *StatsService) Heatmap(ctx context.Context) domain.Heatmap {
	heatmap := domain.Heatmap{}
	for _, session := range s.history(ctx) {
		heatmap[session.Date]++
	}
	return heatmap
}

// mondayOf truncates t to midnight of its week's Monday.
func mondayOf(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -daysSinceMonday)
}

// WeeklyTrend buckets history into the current week and the seven before it,
// Monday-aligned, oldest bucket first.
func (s *StatsService) WeeklyTrend(ctx context.Context) []domain.TrendPoint {
	history := s.history(ctx)
	thisMonday := mondayOf(s.now())

	trend := make([]domain.TrendPoint, 0, trendWeeks+1)
	for w := trendWeeks; w >= 0; w-- {
		weekStart := thisMonday.AddDate(0, 0, -7*w)
		weekEnd := weekStart.AddDate(0, 0, 7)

		count := 0
		for _, session := range history {
			d, err := time.ParseInLocation("2006-01-02", session.Date, weekStart.Location())
			if err != nil {
				continue
			}
			if !d.Before(weekStart) && d.Before(weekEnd) {
				count++
			}
		}

		label := fmt.Sprintf("%dw", w)
		switch w {
		case 0:
			label = "This"
		case 1:
			label = "Last"
		}
		trend = append(trend, domain.TrendPoint{Label: label, Count: count})
	}
	return trend
}

// Streak walks backward from today counting consecutive days with at least
// one session. Today itself is exempt: a streak does not break just because
// today's workout has not happened yet. Capped at a year.
func (s *StatsService) Streak(ctx context.Context) int {
	heatmap := s.Heatmap(ctx)
	today := s.now()

	streak := 0
	for i := 0; i < 365; i++ {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		if heatmap[date] > 0 {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}

// Summary is the dashboard headline: total sessions, sessions this week and
// the current streak.
func (s *StatsService) Summary(ctx context.Context) domain.Summary {
	history := s.history(ctx)
	thisMonday := mondayOf(s.now())

	thisWeek := 0
	for _, session := range history {
		d, err := time.ParseInLocation("2006-01-02", session.Date, thisMonday.Location())
		if err != nil {
			continue
		}
		if !d.Before(thisMonday) && d.Before(thisMonday.AddDate(0, 0, 7)) {
			thisWeek++
		}
	}

	return domain.Summary{
		TotalSessions: len(history),
		ThisWeek:      thisWeek,
		Streak:        s.Streak(ctx),
	}
}

type badge struct {
	id        string
	label     string
	earned    string
	unearned  string
	icon      string
	threshold int
}

var sessionBadges = []badge{
	{"first_workout", "First Step", "Completed your first workout", "Complete your first workout", "flag", 1},
	{"ten_workouts", "Dedicated", "Completed 10 workouts", "Complete 10 workouts", "dumbbell", 10},
	{"25_workouts", "Consistent", "Completed 25 workouts", "Complete 25 workouts", "flame", 25},
	{"50_workouts", "Iron Will", "Completed 50 workouts", "Complete 50 workouts", "zap", 50},
	{"100_workouts", "Legend", "Completed 100 workouts", "Complete 100 workouts", "crown", 100},
}

var prBadges = []badge{
	{"first_pr", "Record Breaker", "Set your first personal record", "Set your first personal record", "trophy", 1},
	{"ten_prs", "PR Machine", "Set 10 personal records", "Set 10 personal records", "target", 10},
}

var setBadges = []badge{
	{"100_sets", "Volume King", "Completed 100 total sets", "Complete 100 sets", "bar-chart", 100},
	{"500_sets", "Unstoppable", "Completed 500 total sets", "Complete 500 sets", "rocket", 500},
}

func appendBadges(out []domain.Achievement, badges []badge, count int) []domain.Achievement {
	for _, b := range badges {
		a := domain.Achievement{ID: b.id, Label: b.label, Icon: b.icon}
		if count >= b.threshold {
			a.Earned = true
			a.Desc = b.earned
		} else {
			a.Desc = b.unearned
			a.Progress = fmt.Sprintf("%d/%d", count, b.threshold)
		}
		out = append(out, a)
	}
	return out
}

// Achievements evaluates the fixed badge list against three counters: total
// sessions, distinct personal records, and total completed sets. Every
// threshold is judged independently.
func (s *StatsService) Achievements(ctx context.Context) []domain.Achievement {
	history := s.history(ctx)
	records := s.records(ctx)

	totalSets := 0
	for _, session := range history {
		for _, ex := range session.Exercises {
			totalSets += len(ex.Sets)
		}
	}

	out := make([]domain.Achievement, 0, len(sessionBadges)+len(prBadges)+len(setBadges))
	out = appendBadges(out, sessionBadges, len(history))
	out = appendBadges(out, prBadges, len(records))
	out = appendBadges(out, setBadges, totalSets)
	return out
}

// Ghost returns the most recent recorded sets for an exercise, or nil when
// it has never been logged. Used to pre-fill placeholders in a new session.
func (s *StatsService) Ghost(ctx context.Context, exerciseID string) *domain.GhostData {
	history := s.history(ctx)
	for i := len(history) - 1; i >= 0; i-- {
		for _, ex := range history[i].Exercises {
			if ex.ExerciseID == exerciseID {
				return &domain.GhostData{Date: history[i].Date, Sets: ex.Sets}
			}
		}
	}
	return nil
}
