package architect

import (
	"github.com/2beens/lifearchitect/internal/activitylog"
	"github.com/2beens/lifearchitect/internal/okr"
	"github.com/2beens/lifearchitect/internal/schedule"
)

const DefaultAnalyticsDays = 7

type StudyAnalytics struct {
	TotalStudyHours  float64                       `json:"totalStudyHours"`
	TargetStudyHours int                           `json:"targetStudyHours"`
	MinutesPerDay    []activitylog.DayTotal        `json:"minutesPerDay"`
	Logs             []activitylog.StudySessionLog `json:"logs"`
}

type NutritionAnalytics struct {
	Today          activitylog.NutritionTotals `json:"today"`
	Meals          []activitylog.MealAnalysis  `json:"meals"`
	CaloriesPerDay []activitylog.DayTotal      `json:"caloriesPerDay"`
}

type GymAnalytics struct {
	NextDay      schedule.GymDayType        `json:"nextDay"`
	NextPlan     schedule.WorkoutPlan       `json:"nextPlan"`
	WeeklyVolume []activitylog.WeeklyVolume `json:"weeklyVolume"`
	WeeklyCardio []activitylog.WeeklyCardio `json:"weeklyCardio"`
	WorkoutLogs  []activitylog.WorkoutLog   `json:"workoutLogs"`
	CardioLogs   []activitylog.CardioLog    `json:"cardioLogs"`
}

// DashboardContext is the compact summary handed to assistants.
type DashboardContext struct {
	Date             string              `json:"date"`
	Points           int                 `json:"points"`
	QuickHitStreak   int                 `json:"quickHitStreak"`
	LastQuickHitDate string              `json:"lastQuickHitDate"`
	NextGymDay       schedule.GymDayType `json:"nextGymDay"`
	TotalStudyHours  float64             `json:"totalStudyHours"`
	TargetStudyHours int                 `json:"targetStudyHours"`
	Quarter          string              `json:"quarter"`
	Objectives       []okr.Objective     `json:"objectives"`
}

func clampDays(days int) int {
	if days <= 0 {
		return DefaultAnalyticsDays
	}
	return min(days, 90)
}

func (s *Service) StudyAnalytics(days int) StudyAnalytics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StudyAnalytics{
		TotalStudyHours:  s.totalStudyHours,
		TargetStudyHours: schedule.TargetStudyHours,
		MinutesPerDay:    s.logs.StudyMinutesPerDay(clampDays(days)),
		Logs:             s.logs.StudyLogs(),
	}
}

// NutritionAnalytics summarises date, today when empty.
func (s *Service) NutritionAnalytics(date string, days int) NutritionAnalytics {
	s.mu.Lock()
	defer s.mu.Unlock()
	if date == "" {
		date = s.today()
	}
	return NutritionAnalytics{
		Today:          s.logs.DailyNutritionTotals(date),
		Meals:          s.logs.MealsOn(date),
		CaloriesPerDay: s.logs.CaloriesPerDay(clampDays(days)),
	}
}

func (s *Service) GymAnalytics() GymAnalytics {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.habits.CurrentDayType()
	plan, _ := schedule.PlanFor(next)
	return GymAnalytics{
		NextDay:      next,
		NextPlan:     plan,
		WeeklyVolume: s.logs.WeeklyVolumeByCategory(),
		WeeklyCardio: s.logs.WeeklyCardio(),
		WorkoutLogs:  s.logs.WorkoutLogs(),
		CardioLogs:   s.logs.CardioLogs(),
	}
}

func (s *Service) DashboardContext() DashboardContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	quarter := okr.CurrentQuarter(now)
	return DashboardContext{
		Date:             s.today(),
		Points:           s.ledger.Points(),
		QuickHitStreak:   s.habits.QuickHitStreak(),
		LastQuickHitDate: s.habits.LastQuickHitDate(),
		NextGymDay:       s.habits.CurrentDayType(),
		TotalStudyHours:  s.totalStudyHours,
		TargetStudyHours: schedule.TargetStudyHours,
		Quarter:          quarter,
		Objectives:       s.tracker.ObjectivesForQuarter(quarter),
	}
}

// StudyLogsBetween returns study logs dated within [from, to] (YYYY-MM-DD).
func (s *Service) StudyLogsBetween(from, to string) []activitylog.StudySessionLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logs.StudyLogsBetween(from, to)
}

func (s *Service) NutritionForDay(date string) (activitylog.NutritionTotals, []activitylog.MealAnalysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if date == "" {
		date = s.today()
	}
	return s.logs.DailyNutritionTotals(date), s.logs.MealsOn(date)
}
