package activitylog

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/2beens/lifearchitect/internal/schedule"
	"github.com/2beens/lifearchitect/pkg"
)

// GroupByDay buckets items by their YYYY-MM-DD date.
func GroupByDay[T any](items []T, date func(T) string) map[string][]T {
	out := map[string][]T{}
	for _, it := range items {
		d := date(it)
		out[d] = append(out[d], it)
	}
	return out
}

// GroupByISOWeek buckets items by ISO week label. Items with an unparseable
// date are skipped.
func GroupByISOWeek[T any](items []T, date func(T) string) map[string][]T {
	out := map[string][]T{}
	for _, it := range items {
		w, ok := ISOWeekLabel(date(it))
		if !ok {
			continue
		}
		out[w] = append(out[w], it)
	}
	return out
}

// ISOWeekLabel turns "2025-07-03" into "2025-W27".
func ISOWeekLabel(date string) (string, bool) {
	t, err := time.Parse(pkg.DateLayout, date)
	if err != nil {
		return "", false
	}
	y, w := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", y, w), true
}

type DayTotal struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type NutritionTotals struct {
	Date         string  `json:"date"`
	Meals        int     `json:"meals"`
	Calories     float64 `json:"calories"`
	ProteinGrams float64 `json:"proteinGrams"`
	CarbGrams    float64 `json:"carbGrams"`
	FatGrams     float64 `json:"fatGrams"`
}

type WeeklyVolume struct {
	Week  string  `json:"week"`
	Push  float64 `json:"push"`
	Pull  float64 `json:"pull"`
	Legs  float64 `json:"legs"`
	Other float64 `json:"other"`
}

type WeeklyCardio struct {
	Week            string  `json:"week"`
	DurationMinutes float64 `json:"durationMinutes"`
	CaloriesBurned  float64 `json:"caloriesBurned"`
	DistanceKm      float64 `json:"distanceKm"`
}

// lastDays lists the n dates ending today, oldest first.
func (a *Aggregator) lastDays(n int) []string {
	now := a.now()
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, pkg.DaysAgo(now, i))
	}
	return days
}

func (a *Aggregator) StudyMinutesPerDay(lastNDays int) []DayTotal {
	byDay := GroupByDay(a.study, func(l StudySessionLog) string { return l.Date })
	var out []DayTotal
	for _, d := range a.lastDays(lastNDays) {
		var total float64
		for _, l := range byDay[d] {
			total += l.DurationMinutes
		}
		out = append(out, DayTotal{Date: d, Value: total})
	}
	return out
}

func (a *Aggregator) CaloriesPerDay(lastNDays int) []DayTotal {
	byDay := GroupByDay(a.meals, func(m MealAnalysis) string { return m.Date })
	var out []DayTotal
	for _, d := range a.lastDays(lastNDays) {
		var total float64
		for _, m := range byDay[d] {
			total += m.Calories
		}
		out = append(out, DayTotal{Date: d, Value: total})
	}
	return out
}

func (a *Aggregator) DailyNutritionTotals(date string) NutritionTotals {
	totals := NutritionTotals{Date: date}
	for _, m := range a.MealsOn(date) {
		totals.Meals++
		totals.Calories += m.Calories
		totals.ProteinGrams += m.ProteinGrams
		totals.CarbGrams += m.CarbGrams
		totals.FatGrams += m.FatGrams
	}
	return totals
}

// WeeklyVolumeByCategory sums workout volume per ISO week, split by the day
// type of the log or, failing that, by muscle group keywords. Weeks without
// volume are left out.
func (a *Aggregator) WeeklyVolumeByCategory() []WeeklyVolume {
	var out []WeeklyVolume
	for week, logs := range GroupByISOWeek(a.workouts, func(l WorkoutLog) string { return l.Date }) {
		wv := WeeklyVolume{Week: week}
		for _, l := range logs {
			v := l.Volume()
			switch category(l) {
			case schedule.GymDayPush:
				wv.Push += v
			case schedule.GymDayPull:
				wv.Pull += v
			case schedule.GymDayLegs:
				wv.Legs += v
			default:
				wv.Other += v
			}
		}
		if wv.Push+wv.Pull+wv.Legs+wv.Other > 0 {
			out = append(out, wv)
		}
	}
	slices.SortFunc(out, func(x, y WeeklyVolume) int { return strings.Compare(x.Week, y.Week) })
	return out
}

func category(l WorkoutLog) schedule.GymDayType {
	mg := strings.ToLower(l.MuscleGroup)
	containsAny := func(keys ...string) bool {
		for _, k := range keys {
			if strings.Contains(mg, k) {
				return true
			}
		}
		return false
	}
	switch {
	case l.DayType == schedule.GymDayPush || containsAny("chest", "shoulder", "tricep"):
		return schedule.GymDayPush
	case l.DayType == schedule.GymDayPull || containsAny("back", "bicep"):
		return schedule.GymDayPull
	case l.DayType == schedule.GymDayLegs || containsAny("quad", "hamstring", "glute"):
		return schedule.GymDayLegs
	}
	return ""
}

func (a *Aggregator) WeeklyCardio() []WeeklyCardio {
	var out []WeeklyCardio
	for week, logs := range GroupByISOWeek(a.cardio, func(l CardioLog) string { return l.Date }) {
		wc := WeeklyCardio{Week: week}
		for _, l := range logs {
			wc.DurationMinutes += l.DurationMinutes
			wc.CaloriesBurned += l.CaloriesBurned
			wc.DistanceKm += l.DistanceKm
		}
		out = append(out, wc)
	}
	slices.SortFunc(out, func(x, y WeeklyCardio) int { return strings.Compare(x.Week, y.Week) })
	return out
}
