package okr

import "strings"

// Activity is a logged quantity that can be credited to a key result.
// Each source decides its contribution from the key result's unit.
type Activity interface {
	contribution(unit, description string) float64
}

// Dispatch returns the amount a logged activity adds to kr. The unit is
// matched by case-insensitive substring; the first matching rule wins and
// an unmatched unit counts as one occurrence.
func Dispatch(kr KeyResult, a Activity) float64 {
	return a.contribution(strings.ToLower(kr.Unit), strings.ToLower(kr.Description))
}

type StudyActivity struct {
	Minutes float64
}

func (s StudyActivity) contribution(unit, _ string) float64 {
	switch {
	case strings.Contains(unit, "hour"):
		return s.Minutes / 60
	case strings.Contains(unit, "min"):
		return s.Minutes
	default:
		return 1
	}
}

type WorkoutActivity struct {
	Reps   float64
	Weight float64
	Sets   float64
}

func (w WorkoutActivity) contribution(unit, _ string) float64 {
	switch {
	case strings.Contains(unit, "volume") || strings.Contains(unit, "kg"):
		return w.Reps * w.Weight * w.Sets
	case strings.Contains(unit, "set"):
		return w.Sets
	default:
		return 1
	}
}

type CardioActivity struct {
	DurationMinutes float64
	DistanceKm      float64
	CaloriesBurned  float64
}

func (c CardioActivity) contribution(unit, _ string) float64 {
	switch {
	case strings.Contains(unit, "min"):
		return c.DurationMinutes
	case strings.Contains(unit, "km") || strings.Contains(unit, "distance"):
		return c.DistanceKm
	case strings.Contains(unit, "cal"):
		return c.CaloriesBurned
	default:
		return 1
	}
}

type MealActivity struct {
	Calories     float64
	ProteinGrams float64
}

// protein needs both a gram unit and a protein description; carb and fat
// grams share the unit and would otherwise be credited as protein
func (m MealActivity) contribution(unit, description string) float64 {
	switch {
	case strings.Contains(unit, "cal"):
		return m.Calories
	case strings.Contains(unit, "gram") && strings.Contains(description, "protein"):
		return m.ProteinGrams
	default:
		return 1
	}
}
