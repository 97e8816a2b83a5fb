package services

import "time"

// Test hooks to pin the clock.

func (s *ScheduleService) SetNow(now func() time.Time)  { s.now = now }
func (s *SessionService) SetNow(now func() time.Time)   { s.now = now }
func (s *StatsService) SetNow(now func() time.Time)     { s.now = now }
func (s *NutritionService) SetNow(now func() time.Time) { s.now = now }
func (s *BackupService) SetNow(now func() time.Time)    { s.now = now }
