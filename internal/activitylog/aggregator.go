package activitylog

import (
	"context"
	"slices"
	"time"

	"github.com/2beens/lifearchitect/internal/store"
	"github.com/2beens/lifearchitect/pkg"

	log "github.com/sirupsen/logrus"
)

const (
	MealRetentionDays  = 30
	StudyRetentionDays = 90
)

// Aggregator keeps the append-only activity logs. Workout and cardio logs
// are kept forever, meals for 30 days and study sessions for 90 days.
// It is not safe for concurrent use.
type Aggregator struct {
	store store.Store
	now   func() time.Time

	workouts []WorkoutLog
	cardio   []CardioLog
	study    []StudySessionLog
	meals    []MealAnalysis
}

func NewAggregator(ctx context.Context, s store.Store, now func() time.Time) (*Aggregator, error) {
	a := &Aggregator{
		store: s,
		now:   now,
	}

	var err error
	if a.workouts, err = store.Load[[]WorkoutLog](ctx, s, store.KeyWorkoutLogs, nil); err != nil {
		return nil, err
	}
	if a.cardio, err = store.Load[[]CardioLog](ctx, s, store.KeyCardioLogs, nil); err != nil {
		return nil, err
	}
	if a.study, err = store.Load[[]StudySessionLog](ctx, s, store.KeyStudySessionLogs, nil); err != nil {
		return nil, err
	}
	if a.meals, err = store.Load[[]MealAnalysis](ctx, s, store.KeyDailyNutrition, nil); err != nil {
		return nil, err
	}

	if pruned := a.pruneMeals(a.today()); pruned > 0 {
		log.Debugf("activity log: dropped %d meals older than %d days", pruned, MealRetentionDays)
		if err := store.Save(ctx, s, store.KeyDailyNutrition, a.meals); err != nil {
			log.Errorf("activity log: persist pruned meals: %s", err)
		}
	}

	return a, nil
}

func (a *Aggregator) today() string {
	return pkg.DateString(a.now())
}

// AppendWorkoutLog stamps l with today's date and one set when those are missing.
func (a *Aggregator) AppendWorkoutLog(ctx context.Context, l WorkoutLog) (WorkoutLog, error) {
	if l.Date == "" {
		l.Date = a.today()
	}
	if l.Sets == 0 {
		l.Sets = 1
	}
	a.workouts = append(a.workouts, l)
	return l, store.Save(ctx, a.store, store.KeyWorkoutLogs, a.workouts)
}

func (a *Aggregator) AppendCardioLog(ctx context.Context, l CardioLog) (CardioLog, error) {
	if l.Date == "" {
		l.Date = a.today()
	}
	a.cardio = append(a.cardio, l)
	return l, store.Save(ctx, a.store, store.KeyCardioLogs, a.cardio)
}

// AppendStudyLog appends l and drops study entries older than 90 days.
func (a *Aggregator) AppendStudyLog(ctx context.Context, l StudySessionLog) (StudySessionLog, error) {
	if l.Date == "" {
		l.Date = a.today()
	}
	cutoff := pkg.DaysAgo(a.now(), StudyRetentionDays)
	a.study = slices.DeleteFunc(append(a.study, l), func(s StudySessionLog) bool {
		return s.Date < cutoff
	})
	return l, store.Save(ctx, a.store, store.KeyStudySessionLogs, a.study)
}

func (a *Aggregator) AppendMealLog(ctx context.Context, m MealAnalysis) (MealAnalysis, error) {
	if m.Date == "" {
		m.Date = a.today()
	}
	a.meals = append(a.meals, m)
	return m, store.Save(ctx, a.store, store.KeyDailyNutrition, a.meals)
}

// PruneMeals drops meals outside the 30-day window ending at today and
// returns how many were removed.
func (a *Aggregator) PruneMeals(ctx context.Context) (int, error) {
	pruned := a.pruneMeals(a.today())
	if pruned == 0 {
		return 0, nil
	}
	return pruned, store.Save(ctx, a.store, store.KeyDailyNutrition, a.meals)
}

func (a *Aggregator) pruneMeals(today string) int {
	t, err := time.Parse(pkg.DateLayout, today)
	if err != nil {
		return 0
	}
	cutoff := pkg.DaysAgo(t, MealRetentionDays)
	before := len(a.meals)
	a.meals = slices.DeleteFunc(a.meals, func(m MealAnalysis) bool {
		return m.Date < cutoff
	})
	return before - len(a.meals)
}

func (a *Aggregator) WorkoutLogs() []WorkoutLog {
	return slices.Clone(a.workouts)
}

func (a *Aggregator) CardioLogs() []CardioLog {
	return slices.Clone(a.cardio)
}

func (a *Aggregator) StudyLogs() []StudySessionLog {
	return slices.Clone(a.study)
}

func (a *Aggregator) Meals() []MealAnalysis {
	return slices.Clone(a.meals)
}

// StudyLogsBetween returns study logs dated within [from, to], both
// YYYY-MM-DD. An empty bound is open.
func (a *Aggregator) StudyLogsBetween(from, to string) []StudySessionLog {
	var out []StudySessionLog
	for _, l := range a.study {
		if from != "" && l.Date < from {
			continue
		}
		if to != "" && l.Date > to {
			continue
		}
		out = append(out, l)
	}
	return out
}

// MealsOn returns the meals logged on date.
func (a *Aggregator) MealsOn(date string) []MealAnalysis {
	var out []MealAnalysis
	for _, m := range a.meals {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return out
}
