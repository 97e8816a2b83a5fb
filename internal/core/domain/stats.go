package domain

// Heatmap maps a local calendar date (YYYY-MM-DD) to the number of sessions
// finished that day.
type Heatmap map[string]int

// TrendPoint is one bucket of the weekly trend: the current week plus the
// seven before it, Monday-aligned.
type TrendPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Achievement is one threshold badge. Progress carries a "current/target"
// string while the badge is unearned.
type Achievement struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Desc     string `json:"desc"`
	Icon     string `json:"icon"`
	Earned   bool   `json:"earned"`
	Progress string `json:"progress,omitempty"`
}

// GhostData is the most recent historical performance for one exercise, shown
// as a reference while logging a new session.
type GhostData struct {
	Date string         `json:"date"`
	Sets []CompletedSet `json:"sets"`
}

// Summary is the dashboard headline: totals plus the current streak.
type Summary struct {
	TotalSessions int `json:"totalSessions"`
	ThisWeek      int `json:"thisWeek"`
	Streak        int `json:"streak"`
}
