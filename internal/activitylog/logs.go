package activitylog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/lifearchitect/internal/schedule"
)

var ErrInvalidLog = errors.New("invalid activity log")

type WorkoutLog struct {
	ExerciseID     string                `json:"exerciseId"`
	ExerciseName   string                `json:"exerciseName,omitempty"`
	Sets           int                   `json:"sets"`
	Reps           int                   `json:"reps"`
	Weight         float64               `json:"weight"`
	Date           string                `json:"date"`
	MuscleGroup    string                `json:"muscleGroup,omitempty"`
	DayType        schedule.GymDayType   `json:"dayType,omitempty"`
	LinkedKRID     string                `json:"linkedKRId,omitempty"`
	ExerciseType   schedule.ExerciseType `json:"exerciseType,omitempty"`
	TargetSetsReps string                `json:"targetSetsReps,omitempty"`
}

// Volume is reps x weight x sets.
func (l WorkoutLog) Volume() float64 {
	return float64(l.Reps) * l.Weight * float64(l.Sets)
}

func (l WorkoutLog) Validate() error {
	switch {
	case strings.TrimSpace(l.ExerciseID) == "":
		return fmt.Errorf("%w: empty exercise id", ErrInvalidLog)
	case l.Sets < 0 || l.Reps < 0 || l.Weight < 0:
		return fmt.Errorf("%w: negative sets, reps or weight", ErrInvalidLog)
	}
	return nil
}

type CardioLog struct {
	Type            string  `json:"type,omitempty"`
	DurationMinutes float64 `json:"durationMinutes"`
	CaloriesBurned  float64 `json:"caloriesBurned,omitempty"`
	DistanceKm      float64 `json:"distanceKm,omitempty"`
	Date            string  `json:"date"`
	LinkedKRID      string  `json:"linkedKRId,omitempty"`
}

func (l CardioLog) Validate() error {
	if l.DurationMinutes <= 0 {
		return fmt.Errorf("%w: cardio duration must be positive", ErrInvalidLog)
	}
	if l.CaloriesBurned < 0 || l.DistanceKm < 0 {
		return fmt.Errorf("%w: negative calories or distance", ErrInvalidLog)
	}
	return nil
}

type StudySessionLog struct {
	Date            string  `json:"date"`
	DurationMinutes float64 `json:"durationMinutes"`
	Topic           string  `json:"topic"`
	LinkedKRID      string  `json:"linkedKRId,omitempty"`
}

type MealAnalysis struct {
	MealName     string  `json:"mealName,omitempty"`
	Calories     float64 `json:"calories"`
	ProteinGrams float64 `json:"proteinGrams,omitempty"`
	CarbGrams    float64 `json:"carbGrams,omitempty"`
	FatGrams     float64 `json:"fatGrams,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	LinkedKRID   string  `json:"linkedKRId,omitempty"`
	Date         string  `json:"date,omitempty"`
}

func (m MealAnalysis) Validate() error {
	if m.Calories < 0 || m.ProteinGrams < 0 || m.CarbGrams < 0 || m.FatGrams < 0 {
		return fmt.Errorf("%w: negative meal macros", ErrInvalidLog)
	}
	return nil
}
