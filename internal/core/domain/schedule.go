package domain

import (
	"errors"
	"time"
)

var ErrInvalidDayIndex = errors.New("invalid day index (must be 0-6)")

// RestDay is the literal stored in a schedule slot for a planned rest day.
// A nil slot means nothing is scheduled at all.
const RestDay = "rest"

// WeekSchedule maps each day to a program id, RestDay, or nil.
// Slots are indexed Monday=0 … Sunday=6.
type WeekSchedule [7]*string

// scheduleIndex translates time.Weekday numbering (Sunday=0 … Saturday=6)
// into schedule slot numbering (Monday=0 … Sunday=6). The table is fixed;
// changing it shifts every schedule by a day.
var scheduleIndex = [7]int{6, 0, 1, 2, 3, 4, 5}

// SlotFor returns the schedule slot index for a calendar weekday.
func SlotFor(w time.Weekday) int {
	return scheduleIndex[int(w)]
}

// NextWorkout is the result of scanning the schedule forward from today.
// Exactly one of IsRest or Program is meaningful.
type NextWorkout struct {
	IsRest    bool     `json:"isRest,omitempty"`
	Program   *Program `json:"program,omitempty"`
	DaysUntil int      `json:"daysUntil"`
	DayIndex  int      `json:"dayIndex"`
}
